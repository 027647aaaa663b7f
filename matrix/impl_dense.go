// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Separate mutating operations (Negate, RightDiagonal, Clear*, Set, SetRow)
//     from value-returning ones (Add, Sub, Mul, Scale, Transpose, Copy).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Copy: O(r*c); Clear*: O(r) or O(c).

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"     // method tag used in panic payloads
	ctxSet    = "Set"    // method tag used in panic payloads
	ctxSetRow = "SetRow" // method tag used in error wrappers
	ctxClear  = "Clear"  // method tag used in panic payloads
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both >= 1.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface conformance.
var (
	_ Matrix     = (*Dense)(nil)
	_ mat.Matrix = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewSquare creates an n×n zero matrix.
// Errors: ErrInvalidDimensions when n < 1.
func NewSquare(n int) (*Dense, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewSquare(%d): %w", n, ErrInvalidDimensions)
	}

	return NewDense(n, n)
}

// NewDenseFromRows builds a matrix from a rectangular grid.
// The grid is copied; later changes to rows do not affect the matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or the first row is empty.
//   - ErrDimensionMismatch when rows are ragged.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("NewDenseFromRows: %w", ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("NewDenseFromRows: row %d has %d values, want %d: %w",
				i, len(rows[i]), c, ErrDimensionMismatch)
		}
		copy(m.data[i*c:(i+1)*c], rows[i]) // one row per copy
	}

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Dims returns (rows, cols); part of gonum's mat.Matrix.
func (m *Dense) Dims() (rows, cols int) { return m.r, m.c }

// T returns the implicit (no-copy) transpose for gonum interop.
// Use Transpose for a materialized *Dense.
func (m *Dense) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// indexOf computes the flat index for (row, col), panicking on invalid indices.
func (m *Dense) indexOf(method string, row, col int) int {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		panic(denseErrorf(method, row, col, ErrOutOfRange))
	}

	return row*m.c + col
}

// At returns the value at (row, col).
// Panics with ErrOutOfRange on invalid indices.
func (m *Dense) At(row, col int) float64 {
	return m.data[m.indexOf(ctxAt, row, col)]
}

// Set assigns value v at (row, col).
// Panics with ErrOutOfRange on invalid indices.
func (m *Dense) Set(row, col int, v float64) {
	m.data[m.indexOf(ctxSet, row, col)] = v
}

// SetRow replaces row i with values.
//
// Errors:
//   - ErrDimensionMismatch when len(values) != Cols().
//
// Panics with ErrOutOfRange when i is not a valid row.
func (m *Dense) SetRow(i int, values []float64) error {
	if err := ValidateVecLen(values, m.c); err != nil {
		return denseErrorf(ctxSetRow, i, 0, err)
	}
	base := m.indexOf(ctxSetRow, i, 0)
	copy(m.data[base:base+m.c], values)

	return nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) []float64 {
	base := m.indexOf(ctxAt, i, 0)
	out := make([]float64, m.c)
	copy(out, m.data[base:base+m.c])

	return out
}

// ForEachRowColumn visits each element (i,j) in row-major order and calls fn(i,j,v).
// Every cell is visited exactly once; the order is fixed (i→j), which LU relies on.
// fn may write to m through Set; v is the value read before the call.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) ForEachRowColumn(fn func(i, j int, v float64)) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fn(i, j, m.data[base+j])
		}
	}
}

// Negate flips the sign of every entry in place and returns m.
func (m *Dense) Negate() *Dense {
	for idx := range m.data {
		m.data[idx] = -m.data[idx]
	}

	return m
}

// ClearRow sets every cell of row i to 0.0 in place. The cells stay present.
// Panics with ErrOutOfRange when i is not a valid row.
func (m *Dense) ClearRow(i int) {
	base := m.indexOf(ctxClear, i, 0)
	for j := 0; j < m.c; j++ {
		m.data[base+j] = 0
	}
}

// ClearColumn sets every cell of column j to 0.0 in place.
// Panics with ErrOutOfRange when j is not a valid column.
func (m *Dense) ClearColumn(j int) {
	m.indexOf(ctxClear, 0, j)
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+j] = 0
	}
}

// ClearRowColumn clears row k and column k.
func (m *Dense) ClearRowColumn(k int) {
	m.ClearRow(k)
	m.ClearColumn(k)
}

// RightDiagonal sets every diagonal cell that holds exactly 0.0 to 1.0 and
// returns m. Non-zero diagonal cells are left untouched.
// Squareness is not checked: a rectangular matrix gets its min(r,c) diagonal filled.
func (m *Dense) RightDiagonal() *Dense {
	n := min(m.r, m.c)
	for i := 0; i < n; i++ {
		if m.data[i*m.c+i] == 0 {
			m.data[i*m.c+i] = 1
		}
	}

	return m
}

// Copy returns a deep copy (new buffer).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Copy() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &Dense{r: m.r, c: m.c, data: data}
}
