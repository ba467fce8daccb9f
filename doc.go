// Package covlath computes the combinatorial invariants of Galois coverings
// of compact Riemann surfaces: genus, branch-point classification and
// ramification, plus the full lattice of intermediate coverings indexed by
// conjugacy classes of subgroups of the deck group.
//
// 🚀 What is covlath?
//
//	A small, exact-arithmetic library that brings together:
//		• Permutation groups: elements, subgroups, conjugacy classes,
//		  normalizers, factor groups, isomorphism-type labels
//		• Ramification types: conjugacy classes of cyclic point stabilizers
//		• Covering nodes: genus, geometric signature, quotient and induced
//		  ramification, Riemann–Hurwitz totals
//		• The intermediate-covering lattice: lazy, memoized, recursive
//		• Symbolic scalars: unset genus and multiplicities stay named
//		  unknowns and propagate exactly through every formula
//
// ✨ Why choose covlath?
//
//   - Exact – big.Rat arithmetic throughout, no floating point
//   - Symbolic-friendly – answers degrade to named unknowns, never to NaN
//   - Recursive – every intermediate covering is itself a full covering
//     node, so towers X → X_H → Y compose naturally
//   - Concurrency-safe – lattice construction is single-writer per node
//
// Everything is organized under three subpackages:
//
//	symbolic/ — exact scalar values: known rationals or named unknowns
//	perm/     — finite permutation groups and their subgroup lattice
//	covering/ — covering nodes, the ramification engine and the lattice
//
// Quick example, the map z ↦ z⁴ on the Riemann sphere:
//
//	r, _ := perm.FromCycles(4, [][]int{{1, 2, 3, 4}})
//	g, _ := perm.NewGroup(4, r)
//	cov, _ := covering.NewCovering(g,
//		covering.WithQuotientGenus(symbolic.Int(0)),
//		covering.WithSignature(symbolic.Int(0), symbolic.Int(2)))
//	total, _ := cov.QuotientTotalRamification() // 6
//	genus, _ := cov.Genus(covering.ByIndex(0))  // 0, the sphere upstairs
//
// Dive into the subpackage docs for the data model and the transfer
// algorithm behind induced ramification.
//
//	go get github.com/katalvlaran/covlath
package covlath
