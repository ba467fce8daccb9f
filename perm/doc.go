// Package perm is the finite-group toolkit behind the covering lattice.
//
// It implements permutations of {1..n} and finite permutation groups given
// by generators, together with the structural queries the covering core
// orchestrates:
//
//   - element enumeration, order, membership and containment tests
//   - the full subgroup lattice and its conjugacy classes of subgroups,
//     in a canonical order (ascending subgroup order, then a canonical
//     key; the trivial class is always first, the whole group last)
//   - class lookup for an explicit subgroup, normalizers, indices,
//     intersections
//   - factor groups, realized as the permutation action on cosets
//   - cyclicity and abelianness tests, and a best-effort GAP-style
//     structure label ("C4", "C2 x C2", "S3", "D8", "Q8", "A4", ...)
//
// All derived views (elements, subgroups, classes) are computed once per
// group, cached, and guarded by sync.Once, so concurrent queries after
// construction are safe and cheap. Groups and classes are immutable once
// published.
//
// The package is sized for the deck groups of coverings — groups whose
// subgroup lattice is small enough to enumerate explicitly. It makes no
// attempt at the algorithmics of large permutation groups (stabilizer
// chains, bases, strong generating sets).
package perm
