package polynomial_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/tutte/polynomial"
)

// cycle5 is T(C5) = x^4 + x^3 + x^2 + x + y.
func cycle5() *polynomial.Polynomial {
	return polynomial.MustFromTerms(
		polynomial.T(1, 4, 0), polynomial.T(1, 3, 0), polynomial.T(1, 2, 0),
		polynomial.T(1, 1, 0), polynomial.T(1, 0, 1),
	)
}

func TestEvalInt(t *testing.T) {
	tests := []struct {
		name string
		x, y int64
		want int64
	}{
		{"acyclic orientations", 2, 0, 30},
		{"spanning trees", 1, 1, 5},
		{"spanning subgraphs", 2, 2, 32},
		{"origin", 0, 0, 0},
		{"negative x", -1, 0, 0},
	}
	p := cycle5()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, polynomial.EvalInt(p, tc.x, tc.y).Int64())
		})
	}
}

func TestEvalInt_ZeroPolynomial(t *testing.T) {
	assert.Equal(t, int64(0), polynomial.EvalInt(polynomial.Zero(), 3, 4).Int64())
	assert.Equal(t, int64(1), polynomial.EvalInt(polynomial.One(), 0, 0).Int64())
}

func TestEvalRat(t *testing.T) {
	// x^4 + x^3 + x^2 + x + y at x = 1/2, y = 1/3:
	// 1/16 + 1/8 + 1/4 + 1/2 + 1/3 = 61/48
	got := polynomial.EvalRat(cycle5(), big.NewRat(1, 2), big.NewRat(1, 3))
	assert.Equal(t, "61/48", got.RatString())
}

func TestEvalFloat(t *testing.T) {
	assert.InDelta(t, 30.0, polynomial.EvalFloat(cycle5(), 2, 0), 1e-12)
	assert.InDelta(t, 61.0/48.0, polynomial.EvalFloat(cycle5(), 0.5, 1.0/3.0), 1e-12)
}

func TestEvaluate_CustomDomain(t *testing.T) {
	// Counting domain modulo 7 built on Integers.
	got := polynomial.Evaluate[*big.Int](cycle5(), mod7{}, big.NewInt(3), big.NewInt(3))
	// 81 + 27 + 9 + 3 + 3 = 123 ≡ 4 (mod 7)
	assert.Equal(t, int64(4), got.Int64())
}

type mod7 struct{ polynomial.Integers }

var seven = big.NewInt(7)

func (mod7) Add(a, b *big.Int) *big.Int { return new(big.Int).Mod(new(big.Int).Add(a, b), seven) }
func (mod7) Mul(a, b *big.Int) *big.Int { return new(big.Int).Mod(new(big.Int).Mul(a, b), seven) }

func TestSubstituteY(t *testing.T) {
	// diamond at y = 0 is x^3 + 2x^2 + x.
	d := polynomial.MustFromTerms(
		polynomial.T(1, 3, 0), polynomial.T(2, 2, 0), polynomial.T(2, 1, 1),
		polynomial.T(1, 1, 0), polynomial.T(1, 0, 2), polynomial.T(1, 0, 1),
	)
	assert.Equal(t, "x^3 + 2x^2 + x", polynomial.SubstituteY(d, 0).String())
	assert.Equal(t, "x^3 + 2x^2 + 5x + 6", polynomial.SubstituteY(d, 2).String())

	for _, x := range []int64{-2, 0, 3} {
		assert.Equal(t,
			polynomial.EvalInt(d, x, 2).String(),
			polynomial.EvalInt(polynomial.SubstituteY(d, 2), x, 0).String())
	}
}
