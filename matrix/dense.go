// SPDX-License-Identifier: MIT

// Package matrix - exact integer Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Row-major buffer of *big.Int with the explicit index formula i*cols + j.
//   - At/Set return errors instead of panicking.
//   - Deterministic loop orders (no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1); Clone: O(r*c); Induced: O(r'*c').

package matrix

import (
	"fmt"
	"math/big"
	"strings"
)

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxInduce = "Induced"
)

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps err with "Dense.<method>(row,col)" context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of exact integers.
// Every cell holds its own *big.Int; callers never alias internal storage.
type Dense struct {
	r, c int
	data []*big.Int
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix. A 0×0 matrix is valid (its determinant is 1).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	data := make([]*big.Int, rows*cols)
	for i := range data {
		data[i] = new(big.Int)
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns a copy of the element at (row, col).
func (m *Dense) At(row, col int) (*big.Int, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return nil, denseErrorf(ctxAt, row, col, err)
	}

	return new(big.Int).Set(m.data[idx]), nil
}

// Set stores a copy of v at (row, col).
func (m *Dense) Set(row, col int, v *big.Int) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[idx].Set(v)

	return nil
}

// add increments (row, col) by delta; indices are trusted.
func (m *Dense) add(row, col int, delta int64) {
	cell := m.data[row*m.c+col]
	cell.Add(cell, big.NewInt(delta))
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]*big.Int, len(m.data))}
	for i, v := range m.data {
		out.data[i] = new(big.Int).Set(v)
	}

	return out
}

// Induced copies the submatrix with the given row and column indices, in order.
func (m *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	out, err := NewDense(len(rowsIdx), len(colsIdx))
	if err != nil {
		return nil, err
	}
	for i, r := range rowsIdx {
		for j, c := range colsIdx {
			idx, err := m.indexOf(r, c)
			if err != nil {
				return nil, denseErrorf(ctxInduce, r, c, err)
			}
			out.data[i*out.c+j].Set(m.data[idx])
		}
	}

	return out, nil
}

// String renders one bracketed row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(m.data[i*m.c+j].String())
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
