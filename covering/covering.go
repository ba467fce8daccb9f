package covering

import (
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/covlath/perm"
	"github.com/katalvlaran/covlath/symbolic"
)

// Covering is one vertex of the intermediate-covering lattice: a finite
// group acting on a surface X with quotient X/group, the genus of the
// quotient, the geometric signature of its branch locus, and — when the
// node was derived from a parent — the ramification data of the induced
// covering (quotient of this node) → (quotient of the parent).
//
// A root node carries the identity derivation record: induced degree 1,
// empty ramification, total 0. Every node, root or derived, can spawn its
// own sub-lattice; nodes are built at most once and never rebuilt.
type Covering struct {
	group         *perm.Group
	quotientGenus symbolic.Value

	geomSig          []SignatureTerm // canonical type order
	signature        Signature
	quotientRam      Ramification
	quotientTotalRam symbolic.Value

	// Derivation record (identity values for roots).
	inducedDegree   int
	inducedRam      Ramification
	inducedRamData  RamificationData
	inducedTotalRam symbolic.Value

	lattice []*latticeEntry // one per conjugacy class of subgroups of group
}

// latticeEntry is one slot of the lattice cache. Construction is serialized
// per entry; a built node is never replaced, and a failed construction
// leaves the slot empty so a later lookup may retry.
type latticeEntry struct {
	class *perm.SubgroupClass
	mu    sync.Mutex
	node  *Covering
}

// NewCovering builds the root node for the Galois covering X → X/g.
//
// Behavior (in order):
//  1. Validate the deck group (ErrInvalidGroup for nil).
//  2. Enumerate ramification types and zip them with the supplied or
//     default multiplicities into the geometric signature
//     (ErrSignatureLength on arity mismatch).
//  3. Derive the order-summed signature, the quotient ramification
//     {order: mult·|G|/order} and the Riemann–Hurwitz total.
//  4. Initialize the lattice cache with one entry per conjugacy class of
//     subgroups, the class of g itself mapping to the node.
func NewCovering(g *perm.Group, opts ...Option) (*Covering, error) {
	// 1) Validate the group.
	if g == nil {
		return nil, fmt.Errorf("%w: nil group", ErrInvalidGroup)
	}

	// 2) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) Enumerate types and zip with multiplicities.
	types, err := RamificationTypes(g, cfg.Unramified)
	if err != nil {
		return nil, err
	}
	counts := cfg.Signature
	if !cfg.hasSignature {
		counts = make([]symbolic.Value, len(types))
		for i := range counts {
			counts[i] = symbolic.Sym(fmt.Sprintf("n%d", i+1))
		}
	}
	if len(counts) != len(types) {
		return nil, fmt.Errorf("%w: got %d values for %d types",
			ErrSignatureLength, len(counts), len(types))
	}
	terms := make([]SignatureTerm, len(types))
	for i, tp := range types {
		terms[i] = SignatureTerm{Type: tp, Count: counts[i]}
	}

	return newNode(g, cfg.QuotientGenus, terms), nil
}

// newNode builds a node from a group, a quotient genus and a geometric
// signature, deriving every dependent quantity. Shared by the root
// constructor and the induced-ramification engine; the derivation record
// starts at its identity values.
func newNode(g *perm.Group, genus symbolic.Value, terms []SignatureTerm) *Covering {
	c := &Covering{
		group:           g,
		quotientGenus:   genus,
		geomSig:         terms,
		signature:       make(Signature),
		quotientRam:     make(Ramification),
		inducedDegree:   1,
		inducedRam:      make(Ramification),
		inducedRamData:  make(RamificationData),
		inducedTotalRam: symbolic.Zero(),
	}

	// Order-summed signature: types sharing a stabilizer order accumulate.
	order := g.Order()
	for _, t := range terms {
		m := t.Type.Order()
		c.signature[m] = valueAt(c.signature, m).Add(t.Count)
	}

	// Quotient ramification: each branch point of stabilizer order m has
	// |G|/m preimages, all with ramification index m.
	for m, count := range c.signature {
		c.quotientRam[m] = count.ScaleInt(int64(order / m))
	}
	c.quotientTotalRam = totalRamification(c.quotientRam)

	// Lattice cache: all keys eagerly, values lazily; the class of the
	// whole group maps to the node itself.
	classes := g.SubgroupClasses()
	c.lattice = make([]*latticeEntry, len(classes))
	for i, cls := range classes {
		c.lattice[i] = &latticeEntry{class: cls}
		if cls.Order() == order {
			c.lattice[i].node = c
		}
	}

	return c
}

// Aut returns the deck group of the covering X → X/Aut.
func (c *Covering) Aut() *perm.Group { return c.group }

// Intermediate returns the covering node for the referenced conjugacy class
// of subgroups, building it on first use. Repeated calls return the same
// node (identity-stable memoization). A failed construction is not cached.
func (c *Covering) Intermediate(ref ClassRef) (*Covering, error) {
	cls, err := c.determineClass(ref)
	if err != nil {
		return nil, err
	}
	ent := c.lattice[cls.Pos()]
	ent.mu.Lock()
	defer ent.mu.Unlock()
	if ent.node != nil {
		return ent.node, nil
	}
	node, err := c.deriveNode(cls)
	if err != nil {
		return nil, err
	}
	ent.node = node

	return node, nil
}

// valueAt reads m[k], defaulting absent keys to the known 0.
func valueAt(m map[int]symbolic.Value, k int) symbolic.Value {
	if v, ok := m[k]; ok {
		return v
	}

	return symbolic.Zero()
}

// totalRamification is the Riemann–Hurwitz sum Σ (m−1)·count over a
// ramification map, accumulated in ascending index order for determinism.
func totalRamification(ram Ramification) symbolic.Value {
	indices := make([]int, 0, len(ram))
	for m := range ram {
		indices = append(indices, m)
	}
	sort.Ints(indices)
	total := symbolic.Zero()
	for _, m := range indices {
		total = total.Add(ram[m].ScaleInt(int64(m - 1)))
	}

	return total
}
