// Package symbolic provides exact scalars that may be unknown.
//
// A Value is either a concrete rational number (backed by math/big.Rat) or a
// named unknown — a placeholder such as the quotient genus g or a branch
// multiplicity n3 that has not been fixed yet. Arithmetic on Values is exact
// and propagates unknownness: any operation with an unknown operand yields an
// unknown result rather than a stringified expression or a silent zero.
//
// Two conveniences keep symbolic bookkeeping readable:
//
//   - identity operands preserve names: Sym("g").Add(Int(0)) is still g,
//     Sym("n1").Mul(Int(1)) is still n1;
//   - annihilators stay concrete: Sym("n1").Mul(Int(0)) is the known 0,
//     exactly as a computer-algebra system would simplify it.
//
// Values are immutable; every operation returns a fresh Value and never
// mutates the operands or any shared big.Rat.
package symbolic
