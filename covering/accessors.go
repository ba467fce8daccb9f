package covering

import (
	"fmt"

	"github.com/katalvlaran/covlath/perm"
	"github.com/katalvlaran/covlath/symbolic"
)

// Accessors are pure lookups: their only side effect is triggering the
// lazy, memoized construction of the target node. Each takes 0, 1 or 2
// class references — () for the node itself, (K) for an intermediate node,
// (K, H) for K re-expressed relative to the intermediate node of H.

// Genus returns the genus of the referenced quotient surface.
func (c *Covering) Genus(refs ...ClassRef) (symbolic.Value, error) {
	node, err := c.resolve(refs...)
	if err != nil {
		return symbolic.Unknown(), err
	}

	return node.quotientGenus, nil
}

// GeometricSignature returns the branch points of the referenced quotient,
// classified by stabilizer class, in canonical type order.
func (c *Covering) GeometricSignature(refs ...ClassRef) ([]SignatureTerm, error) {
	node, err := c.resolve(refs...)
	if err != nil {
		return nil, err
	}
	out := make([]SignatureTerm, len(node.geomSig))
	copy(out, node.geomSig)

	return out, nil
}

// Signature returns the order-summed signature: stabilizer order → total
// multiplicity of branch points with that stabilizer order.
func (c *Covering) Signature(refs ...ClassRef) (Signature, error) {
	node, err := c.resolve(refs...)
	if err != nil {
		return nil, err
	}

	return Signature(copyRam(node.signature)), nil
}

// QuotientRamification returns the ramification of X over the referenced
// quotient: index → number of ramification points.
func (c *Covering) QuotientRamification(refs ...ClassRef) (Ramification, error) {
	node, err := c.resolve(refs...)
	if err != nil {
		return nil, err
	}

	return copyRam(node.quotientRam), nil
}

// QuotientTotalRamification returns the Riemann–Hurwitz total Σ (m−1)·r_m
// of X over the referenced quotient.
func (c *Covering) QuotientTotalRamification(refs ...ClassRef) (symbolic.Value, error) {
	node, err := c.resolve(refs...)
	if err != nil {
		return symbolic.Unknown(), err
	}

	return node.quotientTotalRam, nil
}

// InducedDegree returns the degree of the induced covering of the
// referenced node over its parent quotient (1 for a root).
func (c *Covering) InducedDegree(refs ...ClassRef) (int, error) {
	node, err := c.resolve(refs...)
	if err != nil {
		return 0, err
	}

	return node.inducedDegree, nil
}

// InducedRamification returns the ramification of the induced covering:
// index → number of ramification points (empty for a root).
func (c *Covering) InducedRamification(refs ...ClassRef) (Ramification, error) {
	node, err := c.resolve(refs...)
	if err != nil {
		return nil, err
	}

	return copyRam(node.inducedRam), nil
}

// InducedRamificationData returns, per fiber shape (the descending tuple of
// ramification indices over one branch point), the number of branch points
// on the base exhibiting that shape.
func (c *Covering) InducedRamificationData(refs ...ClassRef) (RamificationData, error) {
	node, err := c.resolve(refs...)
	if err != nil {
		return nil, err
	}
	out := make(RamificationData, len(node.inducedRamData))
	for k, v := range node.inducedRamData {
		out[k] = v
	}

	return out, nil
}

// InducedTotalRamification returns the Riemann–Hurwitz total of the induced
// covering (0 for a root).
func (c *Covering) InducedTotalRamification(refs ...ClassRef) (symbolic.Value, error) {
	node, err := c.resolve(refs...)
	if err != nil {
		return symbolic.Unknown(), err
	}

	return node.inducedTotalRam, nil
}

// Ramifications bundles the ramification maps of one intermediate step:
// with (K) it returns [quotient of K, induced of K]; with (K, H) it returns
// [quotient of K, induced of K over H, induced of H].
func (c *Covering) Ramifications(refs ...ClassRef) ([]Ramification, error) {
	switch len(refs) {
	case 0, 1:
		quotient, err := c.QuotientRamification(refs...)
		if err != nil {
			return nil, err
		}
		induced, err := c.InducedRamification(refs...)
		if err != nil {
			return nil, err
		}

		return []Ramification{quotient, induced}, nil
	case 2:
		quotient, err := c.QuotientRamification(refs[0])
		if err != nil {
			return nil, err
		}
		step, err := c.InducedRamification(refs[0], refs[1])
		if err != nil {
			return nil, err
		}
		base, err := c.InducedRamification(refs[1])
		if err != nil {
			return nil, err
		}

		return []Ramification{quotient, step, base}, nil
	}

	return nil, ErrTooManyRefs
}

// TotalRamifications bundles the total ramification numbers the same way
// Ramifications bundles the maps.
func (c *Covering) TotalRamifications(refs ...ClassRef) ([]symbolic.Value, error) {
	switch len(refs) {
	case 0, 1:
		quotient, err := c.QuotientTotalRamification(refs...)
		if err != nil {
			return nil, err
		}
		induced, err := c.InducedTotalRamification(refs...)
		if err != nil {
			return nil, err
		}

		return []symbolic.Value{quotient, induced}, nil
	case 2:
		quotient, err := c.QuotientTotalRamification(refs[0])
		if err != nil {
			return nil, err
		}
		step, err := c.InducedTotalRamification(refs[0], refs[1])
		if err != nil {
			return nil, err
		}
		base, err := c.InducedTotalRamification(refs[1])
		if err != nil {
			return nil, err
		}

		return []symbolic.Value{quotient, step, base}, nil
	}

	return nil, ErrTooManyRefs
}

// InducedIsGalois reports whether the intermediate step for K (relative to
// H, or to this node) is itself Galois: a class of size 1 is a normal
// subgroup, and the quotient by a normal subgroup is again Galois.
func (c *Covering) InducedIsGalois(refs ...ClassRef) (bool, error) {
	_, cls, err := c.refAmbient(refs...)
	if err != nil {
		return false, err
	}

	return cls.Size() == 1, nil
}

// InducedIsCyclic reports whether the intermediate step for K is Galois
// with a cyclic deck group. Non-Galois steps report false.
func (c *Covering) InducedIsCyclic(refs ...ClassRef) (bool, error) {
	ambient, cls, err := c.refAmbient(refs...)
	if err != nil {
		return false, err
	}
	if cls.Size() != 1 {
		return false, nil
	}
	factor, err := ambient.group.FactorGroup(cls.Representative())
	if err != nil {
		return false, fmt.Errorf("covering: factor group of normal class: %w", err)
	}

	return factor.IsCyclic(), nil
}

// InducedAutomorphisms returns the deck-transformation group of the
// intermediate step for K: N(H)/H in the ambient group. It is defined for
// every step, Galois or not; its order is [N(H):H].
func (c *Covering) InducedAutomorphisms(refs ...ClassRef) (*perm.Group, error) {
	ambient, cls, err := c.refAmbient(refs...)
	if err != nil {
		return nil, err
	}
	rep := cls.Representative()
	normalizer, err := ambient.group.Normalizer(rep)
	if err != nil {
		return nil, fmt.Errorf("covering: normalizer of stabilizer: %w", err)
	}
	factor, err := normalizer.FactorGroup(rep)
	if err != nil {
		return nil, fmt.Errorf("covering: deck group of intermediate step: %w", err)
	}

	return factor, nil
}

// copyRam clones a ramification map.
func copyRam(m map[int]symbolic.Value) Ramification {
	out := make(Ramification, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}
