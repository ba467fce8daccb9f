package perm

import "errors"

var (
	// ErrBadDegree indicates a non-positive permutation degree.
	ErrBadDegree = errors.New("perm: degree must be positive")
	// ErrBadCycle indicates an out-of-range or repeated point in cycle notation.
	ErrBadCycle = errors.New("perm: malformed cycle")
	// ErrDegreeMismatch indicates permutations or groups of different degrees.
	ErrDegreeMismatch = errors.New("perm: degree mismatch")
	// ErrNilGroup indicates a nil *Group argument.
	ErrNilGroup = errors.New("perm: group is nil")
	// ErrNotSubgroup indicates the argument is not a subgroup of the receiver.
	ErrNotSubgroup = errors.New("perm: not a subgroup")
	// ErrNotNormal indicates a factor group was requested by a non-normal subgroup.
	ErrNotNormal = errors.New("perm: subgroup is not normal")
)
