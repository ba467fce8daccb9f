package perm

import (
	"fmt"
	"strconv"
	"strings"
)

// Perm is a permutation of the points {0..n−1}. The zero Perm is invalid;
// construct permutations with Identity or FromCycles. Perms are immutable.
type Perm struct {
	img []int // img[x] is the image of point x
}

// Identity returns the identity permutation of degree n.
func Identity(n int) Perm {
	img := make([]int, n)
	for i := range img {
		img[i] = i
	}

	return Perm{img: img}
}

// FromCycles builds a permutation of degree n from 1-based cycle notation:
// FromCycles(4, [][]int{{1,2,3,4}}) maps 1→2→3→4→1. Points absent from every
// cycle are fixed. Cycles must be disjoint with entries in 1..n.
func FromCycles(n int, cycles [][]int) (Perm, error) {
	if n < 1 {
		return Perm{}, ErrBadDegree
	}
	p := Identity(n)
	seen := make(map[int]bool, n)
	for _, cyc := range cycles {
		for i, pt := range cyc {
			if pt < 1 || pt > n {
				return Perm{}, fmt.Errorf("%w: point %d out of range 1..%d", ErrBadCycle, pt, n)
			}
			if seen[pt] {
				return Perm{}, fmt.Errorf("%w: point %d repeated", ErrBadCycle, pt)
			}
			seen[pt] = true
			next := cyc[(i+1)%len(cyc)]
			p.img[pt-1] = next - 1
		}
	}

	return p, nil
}

// Degree returns the number of points the permutation acts on.
func (p Perm) Degree() int { return len(p.img) }

// Image returns the image of the 0-based point x.
func (p Perm) Image(x int) int { return p.img[x] }

// Mul returns the composition p∘q: q is applied first, then p.
func (p Perm) Mul(q Perm) Perm {
	if len(p.img) != len(q.img) {
		panic(ErrDegreeMismatch.Error())
	}
	img := make([]int, len(p.img))
	for x := range img {
		img[x] = p.img[q.img[x]]
	}

	return Perm{img: img}
}

// Inverse returns p⁻¹.
func (p Perm) Inverse() Perm {
	img := make([]int, len(p.img))
	for x, y := range p.img {
		img[y] = x
	}

	return Perm{img: img}
}

// Pow returns pᵏ for any integer k.
func (p Perm) Pow(k int) Perm {
	base := p
	if k < 0 {
		base, k = p.Inverse(), -k
	}
	res := Identity(len(p.img))
	for ; k > 0; k >>= 1 {
		if k&1 == 1 {
			res = res.Mul(base)
		}
		base = base.Mul(base)
	}

	return res
}

// IsIdentity reports whether p fixes every point.
func (p Perm) IsIdentity() bool {
	for x, y := range p.img {
		if x != y {
			return false
		}
	}

	return true
}

// Order returns the order of p: the lcm of its cycle lengths.
func (p Perm) Order() int {
	order := 1
	for _, length := range p.cycleLengths() {
		order = lcm(order, length)
	}

	return order
}

// Equal reports whether p and q are the same permutation of the same degree.
func (p Perm) Equal(q Perm) bool {
	if len(p.img) != len(q.img) {
		return false
	}
	for x := range p.img {
		if p.img[x] != q.img[x] {
			return false
		}
	}

	return true
}

// Key returns a canonical string key for map storage and sorting.
func (p Perm) Key() string {
	var b strings.Builder
	for x, y := range p.img {
		if x > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(y))
	}

	return b.String()
}

// String renders p in 1-based cycle notation, e.g. "(1 2 3)(4 5)"; the
// identity renders as "()".
func (p Perm) String() string {
	var b strings.Builder
	done := make([]bool, len(p.img))
	for start := range p.img {
		if done[start] || p.img[start] == start {
			done[start] = true
			continue
		}
		b.WriteByte('(')
		for x, first := start, true; !done[x]; x = p.img[x] {
			if !first {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(x + 1))
			done[x] = true
			first = false
		}
		b.WriteByte(')')
	}
	if b.Len() == 0 {
		return "()"
	}

	return b.String()
}

// cycleLengths returns the lengths of the non-trivial cycles of p.
func (p Perm) cycleLengths() []int {
	var lengths []int
	done := make([]bool, len(p.img))
	for start := range p.img {
		if done[start] {
			continue
		}
		length := 0
		for x := start; !done[x]; x = p.img[x] {
			done[x] = true
			length++
		}
		if length > 1 {
			lengths = append(lengths, length)
		}
	}

	return lengths
}

// lcm returns the least common multiple of a and b.
func lcm(a, b int) int {
	return a / gcd(a, b) * b
}

// gcd returns the greatest common divisor of a and b.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
