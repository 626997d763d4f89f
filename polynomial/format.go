// File: format.go
// Role: Text rendering and JSON encoding of Polynomial.
// Determinism:
//   - Rendering and encoding follow Terms() order.

package polynomial

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// String renders p as e.g. "x^3 + 2x^2 + 2xy + x + y^2 + y".
//
// Each term is "[coeff]x^i[y^j]": exponent 1 and coefficient 1 are elided,
// zero-exponent factors are omitted, a constant term prints its coefficient.
// Negative coefficients print with a leading minus ("-3x"). The zero
// polynomial renders as "0".
func (p *Polynomial) String() string {
	terms := p.Terms()
	if len(terms) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, t := range terms {
		if i > 0 {
			sb.WriteString(" + ")
		}
		writeTerm(&sb, t)
	}

	return sb.String()
}

// writeTerm appends one rendered term to sb.
func writeTerm(sb *strings.Builder, t Term) {
	if t.X == 0 && t.Y == 0 {
		sb.WriteString(t.Coeff.String())
		return
	}
	switch {
	case t.Coeff.Cmp(bigOne) == 0:
	case t.Coeff.CmpAbs(bigOne) == 0:
		sb.WriteByte('-')
	default:
		sb.WriteString(t.Coeff.String())
	}
	writeFactor(sb, 'x', t.X)
	writeFactor(sb, 'y', t.Y)
}

// writeFactor appends "v" or "v^e"; nothing for e == 0.
func writeFactor(sb *strings.Builder, v byte, e int) {
	if e == 0 {
		return
	}
	sb.WriteByte(v)
	if e > 1 {
		sb.WriteByte('^')
		sb.WriteString(strconv.Itoa(e))
	}
}

// jsonTerm is the wire form of one term.
type jsonTerm struct {
	X int    `json:"x"`
	Y int    `json:"y"`
	C string `json:"c"`
}

// MarshalJSON encodes p as an ordered array of {"x","y","c"} objects.
// The zero polynomial encodes as [].
func (p *Polynomial) MarshalJSON() ([]byte, error) {
	terms := p.Terms()
	out := make([]jsonTerm, 0, len(terms))
	for _, t := range terms {
		out = append(out, jsonTerm{X: t.X, Y: t.Y, C: t.Coeff.String()})
	}

	return json.Marshal(out)
}

// UnmarshalJSON decodes the MarshalJSON form. Repeated monomials are summed
// and zero coefficients dropped, so the result is always normalized.
func (p *Polynomial) UnmarshalJSON(data []byte) error {
	var raw []jsonTerm
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("polynomial: UnmarshalJSON: %w", err)
	}
	acc := NewAccumulator()
	for _, r := range raw {
		if r.X < 0 || r.Y < 0 {
			return fmt.Errorf("polynomial: UnmarshalJSON: x^%d y^%d: %w", r.X, r.Y, ErrNegativeExponent)
		}
		c, ok := new(big.Int).SetString(r.C, 10)
		if !ok {
			return fmt.Errorf("polynomial: UnmarshalJSON: %q: %w", r.C, ErrBadCoefficient)
		}
		acc.AddTerm(Monomial{X: r.X, Y: r.Y}, c)
	}
	*p = *acc.Polynomial()

	return nil
}
