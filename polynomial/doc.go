// Package polynomial implements exact sparse bivariate polynomials over the
// integers, the value type produced by the Tutte engine.
//
// What:
//
//   - Polynomial: immutable map Monomial{X, Y} → *big.Int. No stored
//     coefficient is ever zero, so two polynomials are equal iff their term
//     maps are equal (Equal).
//   - Arithmetic: Add, Sub, Mul, Scale; all return new values.
//   - Accumulator: mutable sum used by the engine to collect leaf monomials.
//   - Rendering: String() lists terms by x exponent descending, then y
//     exponent descending, formatted "[coeff]x^i[y^j]" (e.g. "2xy", "x^2y")
//     with exponent 1 and coefficient 1 elided. The zero polynomial renders
//     as "0".
//   - JSON: [{"x":i,"y":j,"c":"coeff"}, ...] in rendering order; coefficients
//     are decimal strings so arbitrarily large values survive a round trip.
//   - Evaluation (eval.go): generic Evaluate over a Domain[T]; Integers,
//     Rationals and Floats domains; SubstituteY for x-only specialisations.
//
// Determinism:
//
//   - Terms(), String() and MarshalJSON() are fully ordered; map iteration
//     order never leaks.
//
// Concurrency:
//
//   - Polynomial values are read-only after construction and safe for
//     concurrent use. Accumulator is not.
//
// Errors:
//
//   - ErrNegativeExponent  a term with a negative exponent was supplied.
//   - ErrBadCoefficient    JSON coefficient is not a base-10 integer.
package polynomial
