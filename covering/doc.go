// Package covering models Galois coverings of compact Riemann surfaces and
// their lattices of intermediate coverings.
//
// 🚀 The model
//
//	A finite group G acting on a surface X yields the Galois covering
//	X → Y = X/G. Each conjugacy class of subgroups H ≤ G yields an
//	intermediate covering X → X_H → Y, where X_H = X/H. A Covering node
//	holds the invariants of one such quotient:
//	  • the genus of the quotient surface (exact or symbolic),
//	  • the geometric signature: branch points of Y classified by the
//	    conjugacy class of their cyclic stabilizer,
//	  • the ramification of X over the quotient, and — for derived
//	    nodes — the induced ramification of X_H → Y,
//	together with a lazily filled table mapping each subgroup class to
//	the node for that class. Nodes are built at most once and never
//	rebuilt; a derived node is a fully self-consistent root for its own
//	sub-lattice, so towers X → X_K → X_H → Y compose recursively.
//
// The transfer of ramification from a parent node to a subgroup is pure
// orbit counting: conjugates of each stabilizer are intersected with the
// subgroup, the intersections are regrouped into subgroup-conjugacy
// classes, and the resulting orbit counts feed the Riemann–Hurwitz formula
//
//	g_H = [G:H]·(g_Y − 1) + 1 + r/2
//
// where r is the total induced ramification of X_H → Y.
//
// ⚙️ Usage
//
//	a, _ := perm.FromCycles(4, [][]int{{1, 2, 3, 4}})
//	g, _ := perm.NewGroup(4, a)
//	cov, _ := covering.NewCovering(g,
//	    covering.WithQuotientGenus(symbolic.Int(0)),
//	    covering.WithSignature(symbolic.Int(0), symbolic.Int(2)),
//	)
//	node, _ := cov.Intermediate(covering.ByIndex(1)) // the order-2 subgroup
//	genus, _ := node.Genus()
//
// Genus and branch multiplicities may be left unset: they default to the
// named unknowns g and n1…nk, and all derived quantities propagate the
// unknownness exactly (see package symbolic).
//
// Errors (sentinel):
//
//	– ErrInvalidGroup    if the deck group is nil or degenerate.
//	– ErrSignatureLength if WithSignature has the wrong arity.
//	– ErrNotASubgroup    if a class reference does not resolve.
//	– ErrNoContainment   if no conjugate of one class lies in another.
//	– ErrTooManyRefs     if an accessor receives more than two references.
//
// Concurrency: nodes are safe for concurrent use. Lazy construction is
// serialized per lattice entry (single-writer), and MaterializeAll builds
// independent entries in parallel.
package covering
