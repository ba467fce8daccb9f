package perm

import (
	"fmt"
	"sort"
)

// SubgroupClass is one conjugacy class of subgroups of an ambient group.
// Classes carry a canonical position Pos within the ambient group's class
// list; two classes are equal iff they have the same ambient group and
// position (structural equality: the list is canonical and computed once).
type SubgroupClass struct {
	ambient *Group
	rep     *Group   // canonical representative (smallest key in the orbit)
	members []*Group // the full conjugation orbit, key-sorted
	pos     int      // index in ambient.SubgroupClasses()
}

// Ambient returns the group the class lives in.
func (c *SubgroupClass) Ambient() *Group { return c.ambient }

// Representative returns the canonical representative subgroup.
func (c *SubgroupClass) Representative() *Group { return c.rep }

// Members returns the full conjugation orbit. The slice must not be modified.
func (c *SubgroupClass) Members() []*Group { return c.members }

// Size returns the number of subgroups in the class. A class of size 1 is a
// normal subgroup.
func (c *SubgroupClass) Size() int { return len(c.members) }

// Pos returns the canonical index of the class within the ambient group's
// class list.
func (c *SubgroupClass) Pos() int { return c.pos }

// Order returns the order of the subgroups in the class.
func (c *SubgroupClass) Order() int { return c.rep.Order() }

// Equal reports whether two classes denote the same conjugation orbit.
func (c *SubgroupClass) Equal(d *SubgroupClass) bool {
	return d != nil && c.ambient == d.ambient && c.pos == d.pos
}

// String renders the class by its representative and size.
func (c *SubgroupClass) String() string {
	return fmt.Sprintf("Class(%s, size %d)", c.rep, len(c.members))
}

// Subgroups returns every subgroup of g, deduplicated, in canonical order
// (ascending order, then canonical element-set key). Computed once.
func (g *Group) Subgroups() []*Group {
	g.subOnce.Do(g.computeSubgroups)

	return g.subgroups
}

// SubgroupClasses returns the conjugacy classes of subgroups of g in
// canonical order: ascending subgroup order, then the representative's
// canonical key. The trivial class is always first and the class of g
// itself is always last. Computed once.
func (g *Group) SubgroupClasses() []*SubgroupClass {
	g.subOnce.Do(g.computeSubgroups)

	return g.classes
}

// ClassOf resolves the conjugacy class of an explicit subgroup h of g.
// Returns ErrNotSubgroup if h is not contained in g.
func (g *Group) ClassOf(h *Group) (*SubgroupClass, error) {
	if h == nil {
		return nil, ErrNilGroup
	}
	if !g.HasSubgroup(h) {
		return nil, fmt.Errorf("%w: %s in %s", ErrNotSubgroup, h, g)
	}
	key := h.key()
	for _, cls := range g.SubgroupClasses() {
		if cls.Order() != h.Order() {
			continue
		}
		for _, m := range cls.members {
			if m.key() == key {
				return cls, nil
			}
		}
	}

	// Unreachable for a closed subgroup: the lattice is exhaustive.
	return nil, fmt.Errorf("%w: %s has no class in %s", ErrNotSubgroup, h, g)
}

// computeSubgroups enumerates the full subgroup lattice and groups it into
// conjugacy classes. Every subgroup arises from the trivial group by
// repeatedly adjoining one element and closing, so a breadth-first sweep
// over "adjoin one generator" reaches them all.
func (g *Group) computeSubgroups() {
	trivial := g.generated()
	seen := map[string]*Group{trivial.key(): trivial}
	frontier := []*Group{trivial}
	for len(frontier) > 0 {
		var next []*Group
		for _, h := range frontier {
			for _, e := range g.Elements() {
				if h.Contains(e) {
					continue
				}
				gens := append(append([]Perm{}, h.Elements()...), e)
				k := g.generated(gens...)
				if _, ok := seen[k.key()]; ok {
					continue
				}
				seen[k.key()] = k
				next = append(next, k)
			}
		}
		frontier = next
	}

	subs := make([]*Group, 0, len(seen))
	for _, h := range seen {
		subs = append(subs, h)
	}
	sort.Slice(subs, func(i, j int) bool {
		if subs[i].Order() != subs[j].Order() {
			return subs[i].Order() < subs[j].Order()
		}

		return subs[i].key() < subs[j].key()
	})
	g.subgroups = subs

	// Partition into conjugation orbits. Orbit members are looked up in
	// `seen` so classes share the canonical subgroup instances.
	assigned := make(map[string]bool, len(subs))
	var classes []*SubgroupClass
	for _, h := range subs {
		if assigned[h.key()] {
			continue
		}
		orbit := map[string]*Group{}
		for _, p := range g.Elements() {
			conj := seen[g.Conjugate(h, p).key()]
			orbit[conj.key()] = conj
		}
		members := make([]*Group, 0, len(orbit))
		for _, m := range orbit {
			assigned[m.key()] = true
			members = append(members, m)
		}
		sort.Slice(members, func(i, j int) bool { return members[i].key() < members[j].key() })
		classes = append(classes, &SubgroupClass{
			ambient: g,
			rep:     members[0],
			members: members,
		})
	}
	sort.Slice(classes, func(i, j int) bool {
		if classes[i].Order() != classes[j].Order() {
			return classes[i].Order() < classes[j].Order()
		}

		return classes[i].rep.key() < classes[j].rep.key()
	})
	for pos, cls := range classes {
		cls.pos = pos
	}
	g.classes = classes
}
