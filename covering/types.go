package covering

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/covlath/perm"
	"github.com/katalvlaran/covlath/symbolic"
)

// Sentinel errors returned by the covering package. Callers match them with
// errors.Is; contextual wrapping happens at the boundary that detects the
// fault. All failures are deterministic input or consistency errors — there
// is nothing to retry.
var (
	// ErrInvalidGroup indicates a nil or degenerate deck group whose order
	// cannot be determined.
	ErrInvalidGroup = errors.New("covering: invalid deck group")

	// ErrSignatureLength indicates that WithSignature supplied a number of
	// multiplicities different from the number of ramification types.
	ErrSignatureLength = errors.New("covering: signature length does not match ramification types")

	// ErrNotASubgroup indicates a class reference that does not resolve to a
	// conjugacy class of subgroups of the expected ambient group.
	ErrNotASubgroup = errors.New("covering: reference is not a subgroup of the deck group")

	// ErrNoContainment indicates that no conjugate of the first class lies
	// inside the second class's representative. For two classes below the
	// same root this is a consistency fault and is surfaced, not recovered.
	ErrNoContainment = errors.New("covering: no conjugate of the class is contained in the subgroup")

	// ErrTooManyRefs indicates an accessor call with more than two class
	// references; the API admits (), (K) and (K, H).
	ErrTooManyRefs = errors.New("covering: at most two class references allowed")
)

// RamificationType is one conjugacy class of cyclic subgroups, interpreted
// as a point-stabilizer class. The trivial class denotes unramified points.
type RamificationType = *perm.SubgroupClass

// SignatureTerm pairs a ramification type with the number of branch points
// of that type on the quotient surface (possibly a symbolic unknown).
type SignatureTerm struct {
	Type  RamificationType
	Count symbolic.Value
}

// Signature maps a stabilizer order (the ramification index) to the summed
// multiplicity of all ramification types of that order. Derived from the
// geometric signature, never independently mutated.
type Signature map[int]symbolic.Value

// Ramification maps a ramification index (> 1 for actual ramification) to
// the number of ramification points with that index.
type Ramification map[int]symbolic.Value

// FiberShape is the canonical key for the multiset of ramification indices
// occurring in one fiber, sorted descending: "(4,2,1)".
type FiberShape string

// NewFiberShape builds the canonical shape key for the given multiset of
// ramification indices.
func NewFiberShape(mults []int) FiberShape {
	sorted := make([]int, len(mults))
	copy(sorted, mults)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	parts := make([]string, len(sorted))
	for i, m := range sorted {
		parts[i] = strconv.Itoa(m)
	}

	return FiberShape("(" + strings.Join(parts, ",") + ")")
}

// Indices returns the ramification indices of the shape, descending.
func (s FiberShape) Indices() []int {
	trimmed := strings.Trim(string(s), "()")
	if trimmed == "" {
		return nil
	}
	parts := strings.Split(trimmed, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		out[i], _ = strconv.Atoi(p)
	}

	return out
}

// RamificationData maps the fiber shape over a branch point to the number
// of branch points on the base exhibiting that shape.
type RamificationData map[FiberShape]symbolic.Value

// refKind discriminates the ClassRef sum type.
type refKind int

const (
	refInvalid refKind = iota // zero ClassRef: always fails resolution
	refIndex
	refSubgroup
	refClass
)

// ClassRef is a reference to a conjugacy class of subgroups of a node's
// deck group: a canonical index, an explicit subgroup, or a class object.
// It replaces dispatch on argument shape with one typed sum resolved by a
// single exhaustive switch in determineClass.
type ClassRef struct {
	kind  refKind
	index int
	sub   *perm.Group
	class *perm.SubgroupClass
}

// ByIndex references the class at the given position of the canonical class
// ordering of the node's group.
func ByIndex(i int) ClassRef { return ClassRef{kind: refIndex, index: i} }

// BySubgroup references the class of an explicit subgroup.
func BySubgroup(h *perm.Group) ClassRef { return ClassRef{kind: refSubgroup, sub: h} }

// ByClass references an already-resolved class.
func ByClass(c *perm.SubgroupClass) ClassRef { return ClassRef{kind: refClass, class: c} }

// Options configures NewCovering.
//
// QuotientGenus — genus of the quotient surface Y; defaults to the named
// unknown g.
// Signature     — branch-point multiplicities, positionally matched to
// RamificationTypes of the deck group; default one named unknown n1…nk per
// type.
// Unramified    — whether the signature domain includes the trivial
// (unramified) type; off by default.
type Options struct {
	QuotientGenus symbolic.Value
	Signature     []symbolic.Value
	Unramified    bool

	hasGenus     bool
	hasSignature bool
}

// Option is a functional option for NewCovering.
type Option func(*Options)

// WithQuotientGenus fixes the genus of the quotient surface.
func WithQuotientGenus(g symbolic.Value) Option {
	return func(o *Options) {
		o.QuotientGenus = g
		o.hasGenus = true
	}
}

// WithSignature supplies one multiplicity per ramification type, in the
// order returned by RamificationTypes. The arity is validated against the
// deck group inside NewCovering (ErrSignatureLength).
func WithSignature(counts ...symbolic.Value) Option {
	return func(o *Options) {
		o.Signature = counts
		o.hasSignature = true
	}
}

// WithUnramifiedTerm extends the signature domain with the trivial
// stabilizer class, tracking unramified points explicitly.
func WithUnramifiedTerm() Option {
	return func(o *Options) {
		o.Unramified = true
	}
}

// DefaultOptions returns the option set used when no Option overrides it:
// symbolic genus g, symbolic multiplicities, no unramified term.
func DefaultOptions() Options {
	return Options{QuotientGenus: symbolic.Sym("g")}
}
