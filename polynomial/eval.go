// File: eval.go
// Role: Numeric evaluation of polynomials over a caller-chosen domain.
// Determinism:
//   - Terms are visited in Terms() order, so floating-point sums are
//     reproducible run to run.

package polynomial

import (
	"math"
	"math/big"
)

// Domain is the arithmetic a polynomial is evaluated in. Implementations
// must not mutate their arguments.
type Domain[T any] interface {
	Zero() T
	FromInt(c *big.Int) T
	Add(a, b T) T
	Mul(a, b T) T
	// Pow returns a^n for n >= 0, with a^0 = 1 (including 0^0).
	Pow(a T, n int) T
}

// Evaluate computes p(x, y) in domain d.
//
// Powers of x and y are computed once per distinct exponent.
// Complexity: O(n) domain operations plus one Pow per distinct exponent.
func Evaluate[T any](p *Polynomial, d Domain[T], x, y T) T {
	sum := d.Zero()
	xp := make(map[int]T)
	yp := make(map[int]T)
	pow := func(cache map[int]T, base T, n int) T {
		if v, ok := cache[n]; ok {
			return v
		}
		v := d.Pow(base, n)
		cache[n] = v
		return v
	}
	for _, t := range p.Terms() {
		v := d.Mul(d.FromInt(t.Coeff), d.Mul(pow(xp, x, t.X), pow(yp, y, t.Y)))
		sum = d.Add(sum, v)
	}

	return sum
}

// Integers is the exact integer domain.
type Integers struct{}

func (Integers) Zero() *big.Int              { return new(big.Int) }
func (Integers) FromInt(c *big.Int) *big.Int { return new(big.Int).Set(c) }
func (Integers) Add(a, b *big.Int) *big.Int  { return new(big.Int).Add(a, b) }
func (Integers) Mul(a, b *big.Int) *big.Int  { return new(big.Int).Mul(a, b) }

func (Integers) Pow(a *big.Int, n int) *big.Int {
	return new(big.Int).Exp(a, big.NewInt(int64(n)), nil)
}

// Rationals is the exact rational domain.
type Rationals struct{}

func (Rationals) Zero() *big.Rat              { return new(big.Rat) }
func (Rationals) FromInt(c *big.Int) *big.Rat { return new(big.Rat).SetInt(c) }
func (Rationals) Add(a, b *big.Rat) *big.Rat  { return new(big.Rat).Add(a, b) }
func (Rationals) Mul(a, b *big.Rat) *big.Rat  { return new(big.Rat).Mul(a, b) }

// Pow uses square-and-multiply.
func (Rationals) Pow(a *big.Rat, n int) *big.Rat {
	out := big.NewRat(1, 1)
	base := new(big.Rat).Set(a)
	for n > 0 {
		if n&1 == 1 {
			out.Mul(out, base)
		}
		base.Mul(base, base)
		n >>= 1
	}

	return out
}

// Floats evaluates in float64. Large coefficients lose precision and may
// overflow to ±Inf.
type Floats struct{}

func (Floats) Zero() float64 { return 0 }

func (Floats) FromInt(c *big.Int) float64 {
	f, _ := new(big.Float).SetInt(c).Float64()
	return f
}

func (Floats) Add(a, b float64) float64 { return a + b }
func (Floats) Mul(a, b float64) float64 { return a * b }

func (Floats) Pow(a float64, n int) float64 { return math.Pow(a, float64(n)) }

// EvalInt evaluates p at integer (x, y) exactly.
func EvalInt(p *Polynomial, x, y int64) *big.Int {
	return Evaluate[*big.Int](p, Integers{}, big.NewInt(x), big.NewInt(y))
}

// EvalRat evaluates p at rational (x, y) exactly.
func EvalRat(p *Polynomial, x, y *big.Rat) *big.Rat {
	return Evaluate[*big.Rat](p, Rationals{}, x, y)
}

// EvalFloat evaluates p at real (x, y) in float64.
func EvalFloat(p *Polynomial, x, y float64) float64 {
	return Evaluate[float64](p, Floats{}, x, y)
}

// SubstituteY fixes y to an integer value and returns the resulting
// polynomial in x alone (every term has Y == 0).
func SubstituteY(p *Polynomial, y int64) *Polynomial {
	acc := NewAccumulator()
	by := big.NewInt(y)
	for m, c := range p.termsOrNil() {
		v := new(big.Int).Exp(by, big.NewInt(int64(m.Y)), nil)
		acc.AddTerm(Monomial{X: m.X}, v.Mul(v, c))
	}

	return acc.Polynomial()
}
