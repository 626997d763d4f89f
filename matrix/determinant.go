// SPDX-License-Identifier: MIT

// Package matrix - fraction-free determinant (Bareiss) and Kirchhoff's
// matrix-tree count.
//
// Bareiss keeps every intermediate entry an exact integer: after step k each
// entry equals a k×k minor of the input, so the division by the previous
// pivot is always exact. Zero pivots are handled by swapping in a lower row
// with a non-zero entry in the pivot column (flipping the sign); if none
// exists the determinant is 0.

package matrix

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/tutte/core"
)

const (
	opDeterminant   = "Determinant"
	opSpanningTrees = "SpanningTrees"
)

// Determinant returns det(m) exactly. The input is not modified.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n³) big-int multiplications.
func Determinant(m *Dense) (*big.Int, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", opDeterminant, ErrNilMatrix)
	}
	if m.r != m.c {
		return nil, fmt.Errorf("%s: %dx%d: %w", opDeterminant, m.r, m.c, ErrNonSquare)
	}
	n := m.r
	if n == 0 {
		return big.NewInt(1), nil
	}

	a := m.Clone()
	at := func(i, j int) *big.Int { return a.data[i*n+j] }
	swapRows := func(i, j int) {
		for k := 0; k < n; k++ {
			a.data[i*n+k], a.data[j*n+k] = a.data[j*n+k], a.data[i*n+k]
		}
	}

	sign := 1
	prev := big.NewInt(1)
	t1, t2 := new(big.Int), new(big.Int)
	for k := 0; k < n-1; k++ {
		if at(k, k).Sign() == 0 {
			p := -1
			for i := k + 1; i < n; i++ {
				if at(i, k).Sign() != 0 {
					p = i
					break
				}
			}
			if p < 0 {
				return new(big.Int), nil
			}
			swapRows(k, p)
			sign = -sign
		}
		pivot := at(k, k)
		for i := k + 1; i < n; i++ {
			for j := k + 1; j < n; j++ {
				// a[i][j] = (a[i][j]*a[k][k] - a[i][k]*a[k][j]) / prev
				t1.Mul(at(i, j), pivot)
				t2.Mul(at(i, k), at(k, j))
				t1.Sub(t1, t2)
				at(i, j).Quo(t1, prev)
			}
			at(i, k).SetInt64(0)
		}
		prev = new(big.Int).Set(pivot)
	}

	det := new(big.Int).Set(at(n-1, n-1))
	if sign < 0 {
		det.Neg(det)
	}

	return det, nil
}

// SpanningTrees counts the spanning trees of g by Kirchhoff's theorem:
// any cofactor of the Laplacian. A graph with at most one vertex has exactly
// one spanning tree; a disconnected graph has none. Loops are ignored and
// parallel edges counted with multiplicity.
func SpanningTrees(g *core.Graph) (*big.Int, error) {
	l, err := NewLaplacian(g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSpanningTrees, err)
	}
	if len(l.Vertices) <= 1 {
		return big.NewInt(1), nil
	}
	minor, err := l.Minor(0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSpanningTrees, err)
	}

	return Determinant(minor)
}
