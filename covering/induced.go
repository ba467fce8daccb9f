package covering

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/covlath/perm"
	"github.com/katalvlaran/covlath/symbolic"
)

// deriveNode builds the covering node for a subgroup class below c. This is
// the induced-ramification engine: it orbit-counts the parent's geometric
// signature down to the subgroup, derives the ramification of the induced
// covering X_H → (parent quotient), and transfers the genus through the
// Riemann–Hurwitz formula.
//
// The construction is pure with respect to c: on failure nothing is cached
// and the parent is left untouched.
func (c *Covering) deriveNode(cls *perm.SubgroupClass) (*Covering, error) {
	sub := cls.Representative()
	degree := c.group.Order() / sub.Order()

	// Stabilizer classes of the subgroup, trivial class included: unramified
	// intersections do not enter the signature but do shape the fibers.
	subTypes, err := RamificationTypes(sub, true)
	if err != nil {
		return nil, err
	}

	sigAcc := make(map[int]symbolic.Value)       // sub-class pos → branch count
	inducedRam := make(Ramification)             // index → point count
	inducedData := make(RamificationData)        // fiber shape → branch count
	e := engine{parent: c, sub: sub, types: subTypes}

	for _, term := range c.geomSig {
		images, shape, err := e.transfer(term)
		if err != nil {
			return nil, err
		}

		// Accumulate orbit counts per stabilizer class and per induced
		// ramification index.
		allOne := true
		for _, hit := range images {
			if hit.class.Order() > 1 {
				pos := hit.class.Pos()
				sigAcc[pos] = valueAt(sigAcc, pos).Add(hit.count)
			}
			if hit.mult != 1 {
				allOne = false
				inducedRam[hit.mult] = valueAt(inducedRam, hit.mult).Add(hit.count)
			}
		}

		// Fiber shape over one branch point of this type: one ramification
		// index per stabilizer class occurring in the fiber. Counted with
		// the parent's multiplicity, not the orbit count.
		if len(shape) > 0 && !allOne {
			key := NewFiberShape(shape)
			prev, ok := inducedData[key]
			if !ok {
				prev = symbolic.Zero()
			}
			inducedData[key] = prev.Add(term.Count)
		}
	}

	total := totalRamification(inducedRam)

	// Riemann–Hurwitz: g_H = d·(g_Y − 1) + 1 + r/2.
	genus := c.quotientGenus.Sub(symbolic.One()).
		ScaleInt(int64(degree)).
		Add(symbolic.One()).
		Add(total.MulRat(big.NewRat(1, 2)))

	// The derived node is a self-consistent root for the subgroup: its
	// geometric signature lists every non-trivial stabilizer class.
	terms := make([]SignatureTerm, 0, len(subTypes))
	for _, tp := range subTypes {
		if tp.Order() == 1 {
			continue
		}
		terms = append(terms, SignatureTerm{Type: tp, Count: valueAt(sigAcc, tp.Pos())})
	}
	node := newNode(sub, genus, terms)
	node.inducedDegree = degree
	node.inducedRam = inducedRam
	node.inducedRamData = inducedData
	node.inducedTotalRam = total

	return node, nil
}

// engine carries the immutable context of one deriveNode run.
type engine struct {
	parent *Covering
	sub    *perm.Group
	types  []RamificationType // stabilizer classes of sub, trivial first
}

// orbitHit is the contribution of one stabilizer class T to the fiber over
// a branch point of parent type S: `count` orbits of stabilizer class T,
// each a point of X_sub where the induced covering ramifies with index
// mult = [S:T].
type orbitHit struct {
	class RamificationType
	count symbolic.Value
	mult  int
}

// transfer orbit-counts one parent signature term down to the subgroup.
//
// Every conjugate S' of the stabilizer S meets the subgroup K in a cyclic
// group K∩S'; classifying these intersections by their K-conjugacy class T
// and regrouping points of the fiber G/S into K-orbits gives
//
//	images(T) = |{S' : K∩S' ∈ T}| · NumS · [N_G(S):S] / [K:T]
//
// where NumS·[N_G(S):S]·|class(S)| points sit over the NumS branch points
// and each K-orbit of class T has size [K:T]. [N_G(S):S] is computed as
// [G:S]/|class(S)| — the class size already is [G:N_G(S)].
func (e *engine) transfer(term SignatureTerm) ([]orbitHit, []int, error) {
	s := term.Type
	normIdx := e.parent.group.Order() / s.Order() / s.Size() // [N_G(S):S]

	// 1) Intersect every conjugate of S with the subgroup and tally the
	//    K-conjugacy class of each intersection.
	counts := make(map[int]int, len(e.types))
	for _, member := range s.Members() {
		inter, err := e.parent.group.Intersection(e.sub, member)
		if err != nil {
			return nil, nil, fmt.Errorf("covering: intersecting stabilizer conjugate: %w", err)
		}
		tcls, err := e.sub.ClassOf(inter)
		if err != nil {
			return nil, nil, fmt.Errorf("covering: classifying stabilizer intersection: %w", err)
		}
		counts[tcls.Pos()]++
	}

	// 2) Regroup into orbits per class, in canonical class order.
	var hits []orbitHit
	var shape []int
	for _, t := range e.types {
		num := counts[t.Pos()]
		if num == 0 {
			continue
		}
		orbitSize := e.sub.Order() / t.Order() // [K:T]
		factor := big.NewRat(int64(num*normIdx), int64(orbitSize))
		hits = append(hits, orbitHit{
			class: t,
			count: term.Count.MulRat(factor),
			mult:  s.Order() / t.Order(), // [S:T]
		})
		shape = append(shape, s.Order()/t.Order())
	}

	return hits, shape, nil
}
