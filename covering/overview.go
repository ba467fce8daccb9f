package covering

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/covlath/perm"
	"github.com/katalvlaran/covlath/symbolic"
)

// Row is one line of the lattice overview: the invariants of one conjugacy
// class of subgroups of the node's deck group. The last three fields are
// meaningful only once Materialized is true; until then the corresponding
// intermediate covering has not been built and they hold zero Values.
type Row struct {
	Pos            int                 // canonical class index
	Representative *perm.Group         // representative subgroup H
	Structure      string              // isomorphism-type label of H
	ClassSize      int                 // number of conjugates of H
	SubgroupOrder  int                 // |H| = degree of X → X_H
	Degree         int                 // [G:H] = degree of X_H → Y
	Materialized   bool                // whether the node has been built
	Genus          symbolic.Value      // genus of X_H
	QuotientTotal  symbolic.Value      // total ramification of X → X_H
	InducedTotal   symbolic.Value      // total ramification of X_H → Y
}

// Overview projects the current state of the lattice into one Row per
// conjugacy class, in canonical order. It never triggers construction:
// unmaterialized classes appear with Materialized == false, mirroring the
// placeholder columns of a printed covering table.
func (c *Covering) Overview() []Row {
	order := c.group.Order()
	rows := make([]Row, len(c.lattice))
	for i, ent := range c.lattice {
		rep := ent.class.Representative()
		row := Row{
			Pos:            i,
			Representative: rep,
			Structure:      rep.StructureDescription(),
			ClassSize:      ent.class.Size(),
			SubgroupOrder:  rep.Order(),
			Degree:         order / rep.Order(),
		}
		ent.mu.Lock()
		node := ent.node
		ent.mu.Unlock()
		if node != nil {
			row.Materialized = true
			row.Genus = node.quotientGenus
			row.QuotientTotal = node.quotientTotalRam
			row.InducedTotal = node.inducedTotalRam
		}
		rows[i] = row
	}

	return rows
}

// MaterializeAll forces construction of every intermediate covering in the
// current lattice level. Entries are independent, so they are built in
// parallel; each entry's own lock keeps construction single-writer. After a
// successful return every subsequent lookup is a cache hit.
func (c *Covering) MaterializeAll() error {
	var eg errgroup.Group
	for pos := range c.lattice {
		pos := pos
		eg.Go(func() error {
			_, err := c.Intermediate(ByIndex(pos))

			return err
		})
	}

	return eg.Wait()
}
