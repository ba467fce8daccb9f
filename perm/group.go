package perm

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Group is a finite permutation group given by generators. All derived
// views — the element list, the subgroup lattice, the conjugacy classes of
// subgroups — are computed once on first use and cached; after that every
// query is a pure read, safe for concurrent use.
type Group struct {
	degree int
	gens   []Perm

	elemOnce sync.Once
	elems    []Perm              // sorted by Perm.Key
	elemSet  map[string]struct{} // keys of elems

	subOnce   sync.Once
	subgroups []*Group
	classes   []*SubgroupClass
}

// NewGroup constructs the group of degree n generated by gens. With no
// generators it is the trivial group. Every generator must have degree n.
func NewGroup(n int, gens ...Perm) (*Group, error) {
	if n < 1 {
		return nil, ErrBadDegree
	}
	for _, g := range gens {
		if g.Degree() != n {
			return nil, fmt.Errorf("%w: generator %s has degree %d, want %d",
				ErrDegreeMismatch, g, g.Degree(), n)
		}
	}
	cp := make([]Perm, len(gens))
	copy(cp, gens)

	return &Group{degree: n, gens: cp}, nil
}

// fromElements builds a group from an already-closed element set.
// Used internally for subgroups, intersections and normalizers, where the
// closure is known; the element list doubles as the generating set.
func fromElements(n int, elems []Perm) *Group {
	sorted := make([]Perm, len(elems))
	copy(sorted, elems)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key() < sorted[j].Key() })
	set := make(map[string]struct{}, len(sorted))
	for _, e := range sorted {
		set[e.Key()] = struct{}{}
	}

	return &Group{degree: n, gens: sorted, elems: sorted, elemSet: set}
}

// Degree returns the number of points the group acts on.
func (g *Group) Degree() int { return g.degree }

// Generators returns a copy of the generating set.
func (g *Group) Generators() []Perm {
	cp := make([]Perm, len(g.gens))
	copy(cp, g.gens)

	return cp
}

// Elements returns all group elements in canonical (key-sorted) order.
// The returned slice must not be modified.
func (g *Group) Elements() []Perm {
	g.elemOnce.Do(g.computeElements)

	return g.elems
}

// Order returns the number of elements of the group.
func (g *Group) Order() int { return len(g.Elements()) }

// IsTrivial reports whether the group has order 1.
func (g *Group) IsTrivial() bool { return g.Order() == 1 }

// Contains reports whether p is an element of g.
func (g *Group) Contains(p Perm) bool {
	if p.Degree() != g.degree {
		return false
	}
	g.elemOnce.Do(g.computeElements)
	_, ok := g.elemSet[p.Key()]

	return ok
}

// HasSubgroup reports whether every element of h lies in g.
func (g *Group) HasSubgroup(h *Group) bool {
	if h == nil || h.degree != g.degree || h.Order() > g.Order() {
		return false
	}
	for _, e := range h.Elements() {
		if !g.Contains(e) {
			return false
		}
	}

	return true
}

// Equal reports whether g and h have exactly the same element set.
func (g *Group) Equal(h *Group) bool {
	return h != nil && g.degree == h.degree &&
		g.Order() == h.Order() && g.HasSubgroup(h)
}

// Index returns [g : h], the number of cosets of h in g.
func (g *Group) Index(h *Group) (int, error) {
	if h == nil {
		return 0, ErrNilGroup
	}
	if !g.HasSubgroup(h) {
		return 0, ErrNotSubgroup
	}

	return g.Order() / h.Order(), nil
}

// Conjugate returns the subgroup p·h·p⁻¹ for an element p of g.
func (g *Group) Conjugate(h *Group, p Perm) *Group {
	inv := p.Inverse()
	elems := make([]Perm, 0, h.Order())
	for _, e := range h.Elements() {
		elems = append(elems, p.Mul(e).Mul(inv))
	}

	return fromElements(g.degree, elems)
}

// Intersection returns h ∩ k as a group of the same degree.
func (g *Group) Intersection(h, k *Group) (*Group, error) {
	if h == nil || k == nil {
		return nil, ErrNilGroup
	}
	if h.degree != g.degree || k.degree != g.degree {
		return nil, ErrDegreeMismatch
	}
	var elems []Perm
	for _, e := range h.Elements() {
		if k.Contains(e) {
			elems = append(elems, e)
		}
	}

	return fromElements(g.degree, elems), nil
}

// Normalizer returns N_g(h) = { p ∈ g : p·h·p⁻¹ = h }.
func (g *Group) Normalizer(h *Group) (*Group, error) {
	if h == nil {
		return nil, ErrNilGroup
	}
	if !g.HasSubgroup(h) {
		return nil, ErrNotSubgroup
	}
	var elems []Perm
	for _, p := range g.Elements() {
		if g.Conjugate(h, p).Equal(h) {
			elems = append(elems, p)
		}
	}

	return fromElements(g.degree, elems), nil
}

// IsNormal reports whether h is a normal subgroup of g. It suffices to
// check conjugation by the generators of g.
func (g *Group) IsNormal(h *Group) bool {
	if !g.HasSubgroup(h) {
		return false
	}
	for _, p := range g.gens {
		if !g.Conjugate(h, p).Equal(h) {
			return false
		}
	}

	return true
}

// FactorGroup returns g/n as a permutation group: the action of g by left
// multiplication on the left cosets of n. The subgroup n must be normal.
func (g *Group) FactorGroup(n *Group) (*Group, error) {
	if n == nil {
		return nil, ErrNilGroup
	}
	if !g.HasSubgroup(n) {
		return nil, ErrNotSubgroup
	}
	if !g.IsNormal(n) {
		return nil, ErrNotNormal
	}

	// 1) Assign coset ids in order of first appearance over the canonical
	//    element order; cosetOf maps every element key to its coset id.
	cosetOf := make(map[string]int, g.Order())
	var reps []Perm
	for _, e := range g.Elements() {
		if _, ok := cosetOf[e.Key()]; ok {
			continue
		}
		id := len(reps)
		reps = append(reps, e)
		for _, m := range n.Elements() {
			cosetOf[e.Mul(m).Key()] = id
		}
	}

	// 2) Each generator of g induces a permutation of the cosets.
	index := len(reps)
	gens := make([]Perm, 0, len(g.gens))
	for _, p := range g.gens {
		img := make([]int, index)
		for id, rep := range reps {
			img[id] = cosetOf[p.Mul(rep).Key()]
		}
		gens = append(gens, Perm{img: img})
	}
	if index == 1 {
		// Factor by the whole group: degree-1 trivial group.
		return NewGroup(1)
	}

	return NewGroup(index, gens...)
}

// String renders the group by its generators, e.g. "⟨(1 2 3 4)⟩".
func (g *Group) String() string {
	if len(g.gens) == 0 || g.IsTrivial() {
		return "⟨()⟩"
	}
	parts := make([]string, 0, len(g.gens))
	for _, p := range g.gens {
		if p.IsIdentity() {
			continue
		}
		parts = append(parts, p.String())
	}
	if len(parts) == 0 {
		return "⟨()⟩"
	}

	return "⟨" + strings.Join(parts, ", ") + "⟩"
}

// key returns a canonical key for the element set, used to deduplicate
// subgroups and to match classes.
func (g *Group) key() string {
	elems := g.Elements()
	keys := make([]string, len(elems))
	for i, e := range elems {
		keys[i] = e.Key()
	}

	return strings.Join(keys, "|")
}

// computeElements closes the generating set under multiplication.
func (g *Group) computeElements() {
	if g.elems != nil { // pre-closed by fromElements
		return
	}
	id := Identity(g.degree)
	set := map[string]Perm{id.Key(): id}
	frontier := []Perm{id}
	for len(frontier) > 0 {
		var next []Perm
		for _, e := range frontier {
			for _, gen := range g.gens {
				prod := e.Mul(gen)
				if _, ok := set[prod.Key()]; ok {
					continue
				}
				set[prod.Key()] = prod
				next = append(next, prod)
			}
		}
		frontier = next
	}

	elems := make([]Perm, 0, len(set))
	for _, e := range set {
		elems = append(elems, e)
	}
	sort.Slice(elems, func(i, j int) bool { return elems[i].Key() < elems[j].Key() })
	g.elems = elems
	g.elemSet = make(map[string]struct{}, len(elems))
	for _, e := range elems {
		g.elemSet[e.Key()] = struct{}{}
	}
}

// generated returns the subgroup of g generated by the given elements.
func (g *Group) generated(gens ...Perm) *Group {
	sub := &Group{degree: g.degree, gens: gens}
	sub.computeElements()

	return fromElements(g.degree, sub.elems)
}
