package perm

import (
	"fmt"
	"strconv"
)

// IsCyclic reports whether the group is generated by a single element.
func (g *Group) IsCyclic() bool {
	order := g.Order()
	for _, e := range g.Elements() {
		if e.Order() == order {
			return true
		}
	}

	return false
}

// IsAbelian reports whether every pair of generators commutes.
func (g *Group) IsAbelian() bool {
	gens := g.gens
	for i := range gens {
		for j := i + 1; j < len(gens); j++ {
			if !gens[i].Mul(gens[j]).Equal(gens[j].Mul(gens[i])) {
				return false
			}
		}
	}

	return true
}

// StructureDescription returns a best-effort GAP-style isomorphism label:
// "1", "C n", invariant-factor products like "C4 x C2", dihedral "D n"
// (n = group order, GAP convention, except "S3" for order 6), "Q8", "A4",
// "S4", "C3 : C4". Unrecognized groups fall back to "G(n)".
func (g *Group) StructureDescription() string {
	n := g.Order()
	switch {
	case n == 1:
		return "1"
	case g.IsCyclic():
		return "C" + strconv.Itoa(n)
	case g.IsAbelian():
		return g.abelianLabel()
	case g.isDihedral():
		if n == 6 {
			return "S3"
		}

		return "D" + strconv.Itoa(n)
	case n == 8 && g.countOfOrder(2) == 1:
		return "Q8"
	case n == 12:
		// Non-abelian, non-dihedral order 12: A4 (three involutions)
		// or the dicyclic group C3 : C4 (one involution).
		if g.countOfOrder(2) == 3 {
			return "A4"
		}

		return "C3 : C4"
	case n == 24 && g.countOfOrder(2) == 9 && g.countOfOrder(4) == 6:
		return "S4"
	}

	return fmt.Sprintf("G(%d)", n)
}

// abelianLabel decomposes a non-cyclic abelian group as C_m x …, peeling
// off a cyclic factor of maximal order and recursing on the quotient.
func (g *Group) abelianLabel() string {
	var maxElem Perm
	maxOrder := 0
	for _, e := range g.Elements() {
		if o := e.Order(); o > maxOrder {
			maxOrder, maxElem = o, e
		}
	}
	head := "C" + strconv.Itoa(maxOrder)
	quot, err := g.FactorGroup(g.generated(maxElem))
	if err != nil || quot.IsTrivial() {
		return head
	}

	return head + " x " + quot.StructureDescription()
}

// isDihedral reports whether g is dihedral of its order: a cyclic subgroup
// of index 2 inverted by an outside involution.
func (g *Group) isDihedral() bool {
	n := g.Order()
	if n < 6 || n%2 != 0 {
		return false
	}
	for _, r := range g.Elements() {
		if r.Order() != n/2 {
			continue
		}
		rot := g.generated(r)
		inv := r.Inverse()
		for _, t := range g.Elements() {
			if t.Order() != 2 || rot.Contains(t) {
				continue
			}
			if t.Mul(r).Mul(t.Inverse()).Equal(inv) {
				return true
			}
		}
	}

	return false
}

// countOfOrder returns the number of elements of the given order.
func (g *Group) countOfOrder(order int) int {
	count := 0
	for _, e := range g.Elements() {
		if e.Order() == order {
			count++
		}
	}

	return count
}
