package symbolic

import (
	"math/big"
)

// Value is an exact scalar: either a known rational number or an unknown.
// Known values carry a big.Rat; unknowns optionally carry a symbol name.
// The zero Value is an anonymous unknown.
type Value struct {
	known bool
	num   *big.Rat // non-nil iff known
	name  string   // symbol name; empty for anonymous unknowns
}

// Int returns the known integer value n.
func Int(n int64) Value {
	return Value{known: true, num: new(big.Rat).SetInt64(n)}
}

// Rat returns the known rational value num/den. It panics if den == 0;
// a zero denominator is a programmer error, not a runtime condition.
func Rat(num, den int64) Value {
	if den == 0 {
		panic("symbolic: zero denominator")
	}

	return Value{known: true, num: big.NewRat(num, den)}
}

// FromRat returns the known value r. The argument is copied.
func FromRat(r *big.Rat) Value {
	return Value{known: true, num: new(big.Rat).Set(r)}
}

// Sym returns the named unknown, e.g. Sym("g") for an unset genus.
func Sym(name string) Value {
	return Value{name: name}
}

// Unknown returns an anonymous unknown.
func Unknown() Value {
	return Value{}
}

// Zero returns the known value 0.
func Zero() Value { return Int(0) }

// One returns the known value 1.
func One() Value { return Int(1) }

// Known reports whether v is a concrete rational.
func (v Value) Known() bool { return v.known }

// Name returns the symbol name of an unknown ("" for known values and
// anonymous unknowns).
func (v Value) Name() string { return v.name }

// IsZero reports whether v is known and equal to 0.
func (v Value) IsZero() bool { return v.known && v.num.Sign() == 0 }

// IsOne reports whether v is known and equal to 1.
func (v Value) IsOne() bool { return v.known && v.num.Cmp(ratOne) == 0 }

// Rat returns a copy of the underlying rational and true, or nil and false
// if v is unknown.
func (v Value) Rat() (*big.Rat, bool) {
	if !v.known {
		return nil, false
	}

	return new(big.Rat).Set(v.num), true
}

// Int64 returns v as an int64 if v is a known integer fitting in 64 bits.
func (v Value) Int64() (int64, bool) {
	if !v.known || !v.num.IsInt() || !v.num.Num().IsInt64() {
		return 0, false
	}

	return v.num.Num().Int64(), true
}

// Equal reports whether v and w are the same scalar: equal rationals, or
// unknowns carrying the same non-empty name. Anonymous unknowns compare
// unequal to everything, themselves included.
func (v Value) Equal(w Value) bool {
	if v.known && w.known {
		return v.num.Cmp(w.num) == 0
	}
	if !v.known && !w.known {
		return v.name != "" && v.name == w.name
	}

	return false
}

// Add returns v + w.
func (v Value) Add(w Value) Value {
	switch {
	case v.known && w.known:
		return Value{known: true, num: new(big.Rat).Add(v.num, w.num)}
	case v.IsZero():
		return w
	case w.IsZero():
		return v
	}

	return Unknown()
}

// Sub returns v − w.
func (v Value) Sub(w Value) Value {
	switch {
	case v.known && w.known:
		return Value{known: true, num: new(big.Rat).Sub(v.num, w.num)}
	case w.IsZero():
		return v
	}

	return Unknown()
}

// Mul returns v × w. A known zero operand annihilates an unknown.
func (v Value) Mul(w Value) Value {
	switch {
	case v.known && w.known:
		return Value{known: true, num: new(big.Rat).Mul(v.num, w.num)}
	case v.IsZero() || w.IsZero():
		return Zero()
	case v.IsOne():
		return w
	case w.IsOne():
		return v
	}

	return Unknown()
}

// Div returns v / w. It panics if w is a known zero; dividing by an unknown
// yields an unknown.
func (v Value) Div(w Value) Value {
	if w.IsZero() {
		panic("symbolic: division by zero")
	}
	switch {
	case v.known && w.known:
		return Value{known: true, num: new(big.Rat).Quo(v.num, w.num)}
	case v.IsZero():
		// 0 / w is 0 for every admissible w (w == 0 already rejected).
		return Zero()
	case w.IsOne():
		return v
	}

	return Unknown()
}

// ScaleInt returns v × n.
func (v Value) ScaleInt(n int64) Value {
	return v.Mul(Int(n))
}

// MulRat returns v × r. The argument is not retained.
func (v Value) MulRat(r *big.Rat) Value {
	return v.Mul(FromRat(r))
}

// String renders known values as exact rationals ("6", "1/2"), named
// unknowns as their name, and anonymous unknowns as "?".
func (v Value) String() string {
	if v.known {
		return v.num.RatString()
	}
	if v.name != "" {
		return v.name
	}

	return "?"
}

var ratOne = big.NewRat(1, 1)
