// File: polynomial.go
// Role: Exact sparse polynomial value type and arithmetic.
// Determinism:
//   - Every constructor normalizes: zero coefficients are dropped.
// Concurrency:
//   - Immutable after construction; *big.Int values are never handed out.

package polynomial

import (
	"errors"
	"math/big"

	"github.com/emirpasic/gods/trees/redblacktree"
)

var (
	// ErrNegativeExponent indicates a term with X < 0 or Y < 0.
	ErrNegativeExponent = errors.New("polynomial: negative exponent")

	// ErrBadCoefficient indicates a coefficient that is not a base-10 integer.
	ErrBadCoefficient = errors.New("polynomial: invalid coefficient")
)

// Monomial is the exponent pair of x^X · y^Y.
type Monomial struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Term is one monomial together with its (non-zero) coefficient.
type Term struct {
	Monomial
	Coeff *big.Int
}

// Polynomial is an exact bivariate polynomial with integer coefficients.
// The zero value is the zero polynomial and is ready to use.
type Polynomial struct {
	terms map[Monomial]*big.Int
}

// Zero returns the zero polynomial.
func Zero() *Polynomial { return &Polynomial{} }

// One returns the constant polynomial 1 (the Tutte polynomial of a graph
// without edges).
func One() *Polynomial { return Monomial1(0, 0) }

// Monomial1 returns x^i · y^j with coefficient 1.
// Negative exponents are clamped to 0.
func Monomial1(i, j int) *Polynomial {
	if i < 0 {
		i = 0
	}
	if j < 0 {
		j = 0
	}

	return &Polynomial{terms: map[Monomial]*big.Int{{X: i, Y: j}: big.NewInt(1)}}
}

// FromTerms builds a polynomial from terms, summing coefficients of equal
// monomials. Returns ErrNegativeExponent if any exponent is negative.
func FromTerms(terms ...Term) (*Polynomial, error) {
	acc := NewAccumulator()
	for _, t := range terms {
		if t.X < 0 || t.Y < 0 {
			return nil, ErrNegativeExponent
		}
		if t.Coeff == nil {
			continue
		}
		acc.AddTerm(t.Monomial, t.Coeff)
	}

	return acc.Polynomial(), nil
}

// MustFromTerms is FromTerms that panics on error; intended for fixtures.
func MustFromTerms(terms ...Term) *Polynomial {
	p, err := FromTerms(terms...)
	if err != nil {
		panic(err)
	}

	return p
}

// T is a small constructor helper for a Term with an int64 coefficient.
func T(coeff int64, x, y int) Term {
	return Term{Monomial: Monomial{X: x, Y: y}, Coeff: big.NewInt(coeff)}
}

// IsZero reports whether p is the zero polynomial.
func (p *Polynomial) IsZero() bool { return p == nil || len(p.terms) == 0 }

// Len returns the number of non-zero terms.
func (p *Polynomial) Len() int {
	if p == nil {
		return 0
	}

	return len(p.terms)
}

// Coefficient returns a copy of the coefficient of x^i y^j (0 when absent).
func (p *Polynomial) Coefficient(i, j int) *big.Int {
	if p != nil {
		if c, ok := p.terms[Monomial{X: i, Y: j}]; ok {
			return new(big.Int).Set(c)
		}
	}

	return new(big.Int)
}

// Degree returns the largest X and the largest Y exponent present
// (both 0 for the zero polynomial).
func (p *Polynomial) Degree() (dx, dy int) {
	if p == nil {
		return 0, 0
	}
	for m := range p.terms {
		if m.X > dx {
			dx = m.X
		}
		if m.Y > dy {
			dy = m.Y
		}
	}

	return dx, dy
}

// Terms returns all terms ordered by X descending, then Y descending.
// Coefficients are copies.
//
// Complexity: O(n log n).
func (p *Polynomial) Terms() []Term {
	if p.IsZero() {
		return nil
	}
	tree := redblacktree.NewWith(termOrder)
	for m, c := range p.terms {
		tree.Put(m, c)
	}
	out := make([]Term, 0, tree.Size())
	it := tree.Iterator()
	for it.Next() {
		out = append(out, Term{
			Monomial: it.Key().(Monomial),
			Coeff:    new(big.Int).Set(it.Value().(*big.Int)),
		})
	}

	return out
}

// termOrder sorts monomials by X descending, then Y descending.
func termOrder(a, b interface{}) int {
	ma, mb := a.(Monomial), b.(Monomial)
	switch {
	case ma.X != mb.X:
		return mb.X - ma.X
	default:
		return mb.Y - ma.Y
	}
}

// Equal reports whether p and q have identical terms.
func (p *Polynomial) Equal(q *Polynomial) bool {
	if p.Len() != q.Len() {
		return false
	}
	for m, c := range p.termsOrNil() {
		d, ok := q.terms[m]
		if !ok || c.Cmp(d) != 0 {
			return false
		}
	}

	return true
}

// Add returns p + q.
func (p *Polynomial) Add(q *Polynomial) *Polynomial {
	acc := NewAccumulator()
	acc.Merge(p)
	acc.Merge(q)

	return acc.Polynomial()
}

// Sub returns p − q.
func (p *Polynomial) Sub(q *Polynomial) *Polynomial {
	acc := NewAccumulator()
	acc.Merge(p)
	for m, c := range q.termsOrNil() {
		acc.AddTerm(m, new(big.Int).Neg(c))
	}

	return acc.Polynomial()
}

// Scale returns k · p.
func (p *Polynomial) Scale(k *big.Int) *Polynomial {
	acc := NewAccumulator()
	for m, c := range p.termsOrNil() {
		acc.AddTerm(m, new(big.Int).Mul(c, k))
	}

	return acc.Polynomial()
}

// Mul returns p · q.
// Complexity: O(|p|·|q|) big-int multiplications.
func (p *Polynomial) Mul(q *Polynomial) *Polynomial {
	acc := NewAccumulator()
	tmp := new(big.Int)
	for ma, ca := range p.termsOrNil() {
		for mb, cb := range q.termsOrNil() {
			acc.AddTerm(Monomial{X: ma.X + mb.X, Y: ma.Y + mb.Y}, tmp.Mul(ca, cb))
		}
	}

	return acc.Polynomial()
}

// termsOrNil tolerates a nil receiver.
func (p *Polynomial) termsOrNil() map[Monomial]*big.Int {
	if p == nil {
		return nil
	}

	return p.terms
}

// Accumulator is a mutable polynomial sum. It is not safe for concurrent use;
// parallel callers keep one Accumulator per goroutine and Merge the results.
type Accumulator struct {
	terms map[Monomial]*big.Int
}

// NewAccumulator returns an empty Accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{terms: make(map[Monomial]*big.Int)}
}

// AddMonomial adds x^i · y^j with coefficient 1.
func (a *Accumulator) AddMonomial(i, j int) {
	m := Monomial{X: i, Y: j}
	if c, ok := a.terms[m]; ok {
		c.Add(c, bigOne)
		if c.Sign() == 0 {
			delete(a.terms, m)
		}
		return
	}
	a.terms[m] = big.NewInt(1)
}

// AddTerm adds c · m. c is not retained.
func (a *Accumulator) AddTerm(m Monomial, c *big.Int) {
	if c.Sign() == 0 {
		return
	}
	if cur, ok := a.terms[m]; ok {
		cur.Add(cur, c)
		if cur.Sign() == 0 {
			delete(a.terms, m)
		}
		return
	}
	a.terms[m] = new(big.Int).Set(c)
}

// Merge adds every term of p.
func (a *Accumulator) Merge(p *Polynomial) {
	for m, c := range p.termsOrNil() {
		a.AddTerm(m, c)
	}
}

// Polynomial snapshots the current sum as an immutable Polynomial.
func (a *Accumulator) Polynomial() *Polynomial {
	out := &Polynomial{terms: make(map[Monomial]*big.Int, len(a.terms))}
	for m, c := range a.terms {
		if c.Sign() != 0 {
			out.terms[m] = new(big.Int).Set(c)
		}
	}

	return out
}

var bigOne = big.NewInt(1)
