package covering

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/covlath/perm"
)

// determineClass resolves a class reference to the unique matching
// conjugacy class of subgroups of this node's group. The three reference
// shapes are handled by one exhaustive switch:
//
//   - ByIndex: position in the canonical class ordering;
//   - BySubgroup: class lookup for an explicit subgroup;
//   - ByClass: taken as-is when its ambient is this node's group, otherwise
//     re-resolved through its representative.
//
// Fails with ErrNotASubgroup when the reference cannot be realized as a
// subgroup of the current group.
func (c *Covering) determineClass(ref ClassRef) (*perm.SubgroupClass, error) {
	switch ref.kind {
	case refIndex:
		if ref.index < 0 || ref.index >= len(c.lattice) {
			return nil, fmt.Errorf("%w: class index %d out of range 0..%d",
				ErrNotASubgroup, ref.index, len(c.lattice)-1)
		}

		return c.lattice[ref.index].class, nil

	case refSubgroup:
		cls, err := c.group.ClassOf(ref.sub)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNotASubgroup, err)
		}

		return cls, nil

	case refClass:
		if ref.class == nil {
			return nil, fmt.Errorf("%w: nil class", ErrNotASubgroup)
		}
		if ref.class.Ambient() == c.group {
			return ref.class, nil
		}
		// A class of some other node's group: match its representative.
		cls, err := c.group.ClassOf(ref.class.Representative())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNotASubgroup, err)
		}

		return cls, nil
	}

	return nil, fmt.Errorf("%w: empty class reference", ErrNotASubgroup)
}

// determineClassOfClass re-expresses class reference K, given relative to
// this node's group, as a class of the intermediate node referenced by H:
// it finds a conjugate of K's representative literally contained in H's
// representative and classifies it there.
//
// Fails with ErrNoContainment when no conjugate of K lies in H's
// representative — impossible when K is below H in the same lattice, so an
// occurrence is a consistency fault and is surfaced unrecovered.
func (c *Covering) determineClassOfClass(k, h ClassRef) (*perm.SubgroupClass, error) {
	kcls, err := c.determineClass(k)
	if err != nil {
		return nil, err
	}
	hnode, err := c.Intermediate(h)
	if err != nil {
		return nil, err
	}
	for _, member := range kcls.Members() {
		if !hnode.group.HasSubgroup(member) {
			continue
		}
		cls, err := hnode.group.ClassOf(member)
		if err != nil {
			return nil, fmt.Errorf("covering: reclassifying contained conjugate: %w", err)
		}

		return cls, nil
	}

	return nil, fmt.Errorf("%w: %s in %s", ErrNoContainment, kcls, hnode.group)
}

// resolve walks 0, 1 or 2 class references down from this node:
// () is the node itself, (K) its intermediate node, (K, H) the node of K
// re-expressed inside the intermediate node of H.
func (c *Covering) resolve(refs ...ClassRef) (*Covering, error) {
	switch len(refs) {
	case 0:
		return c, nil
	case 1:
		return c.Intermediate(refs[0])
	case 2:
		hnode, err := c.Intermediate(refs[1])
		if err != nil {
			return nil, err
		}
		kcls, err := c.determineClassOfClass(refs[0], refs[1])
		if err != nil {
			return nil, err
		}

		return hnode.Intermediate(ByClass(kcls))
	}

	return nil, ErrTooManyRefs
}

// refAmbient resolves (K) or (K, H) to the pair (ambient node, class of K
// in it) without forcing construction of K's node. Shared by the Galois and
// deck-group queries, which only need the class, not the node.
func (c *Covering) refAmbient(refs ...ClassRef) (*Covering, *perm.SubgroupClass, error) {
	switch len(refs) {
	case 1:
		cls, err := c.determineClass(refs[0])
		if err != nil {
			return nil, nil, err
		}

		return c, cls, nil
	case 2:
		hnode, err := c.Intermediate(refs[1])
		if err != nil {
			return nil, nil, err
		}
		cls, err := c.determineClassOfClass(refs[0], refs[1])
		if err != nil {
			return nil, nil, err
		}

		return hnode, cls, nil
	case 0:
		return nil, nil, errors.New("covering: a class reference is required")
	}

	return nil, nil, ErrTooManyRefs
}
