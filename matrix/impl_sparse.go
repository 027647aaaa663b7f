// SPDX-License-Identifier: MIT

// Package matrix - Sparse storage (coordinate map) & accessors.
//
// Purpose:
//   - Store only the cells that were written; every absent cell reads as 0.0.
//   - Distinguish "stored with value 0.0" from "absent": an explicit zero is
//     visited by ForEachValue and counted by NumStored, an absent cell is not.
//   - Offer two iteration primitives:
//   - ForEachValue: stored entries only, in storage (insertion) order.
//   - ForEachRowColumn: the full rows×cols grid in row-major order.
//
// Complexity quicksheet:
//   - NewSparse: O(1); At/Set: O(1) amortized; Copy: O(nnz); ClearRow: O(c).

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// sparseErrorf wraps an error with a uniform Sparse context and callsite indices.
func sparseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Sparse.%s(%d,%d): %w", method, row, col, err)
}

// Sparse is a rows×cols matrix backed by a (row, col) → value map.
type Sparse struct {
	r, c   int          // row and column counts
	values sparseValues // stored entries, insertion ordered
}

// Compile-time assertions for interface conformance.
var (
	_ Matrix     = (*Sparse)(nil)
	_ mat.Matrix = (*Sparse)(nil)
)

// NewSparse creates an empty rows×cols sparse matrix (every cell reads 0.0).
//
// Errors:
//   - ErrInvalidDimensions when rows < 1 or cols < 1.
func NewSparse(rows, cols int) (*Sparse, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("NewSparse(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Sparse{r: rows, c: cols, values: newSparseValues()}, nil
}

// NewSparseSquare creates an empty n×n sparse matrix.
func NewSparseSquare(n int) (*Sparse, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewSparseSquare(%d): %w", n, ErrInvalidDimensions)
	}

	return NewSparse(n, n)
}

// Rows returns the row count.
func (m *Sparse) Rows() int { return m.r }

// Cols returns the column count.
func (m *Sparse) Cols() int { return m.c }

// Dims returns (rows, cols); part of gonum's mat.Matrix.
func (m *Sparse) Dims() (rows, cols int) { return m.r, m.c }

// T returns the implicit (no-copy) transpose for gonum interop.
func (m *Sparse) T() mat.Matrix { return mat.Transpose{Matrix: m} }

func (m *Sparse) checkIndex(method string, row, col int) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		panic(sparseErrorf(method, row, col, ErrOutOfRange))
	}
}

// At returns the value at (row, col); an absent cell reads 0.0 and is NOT inserted.
// Panics with ErrOutOfRange on invalid indices.
func (m *Sparse) At(row, col int) float64 {
	m.checkIndex(ctxAt, row, col)
	v, _ := m.values.get(row, col)

	return v
}

// Set stores v at (row, col), overwriting any previous value.
// Writing 0.0 stores an explicit zero; use ClearRow/ClearColumn to remove cells.
// Panics with ErrOutOfRange on invalid indices.
func (m *Sparse) Set(row, col int, v float64) {
	m.checkIndex(ctxSet, row, col)
	m.values.set(row, col, v)
}

// IsStored reports whether (row, col) is explicitly stored (possibly as 0.0).
func (m *Sparse) IsStored(row, col int) bool {
	m.checkIndex(ctxAt, row, col)
	_, ok := m.values.get(row, col)

	return ok
}

// NumStored returns the number of explicitly stored entries.
func (m *Sparse) NumStored() int { return m.values.len() }

// StoredIndices returns the row and column indices of the stored entries,
// pairwise aligned, in storage order.
func (m *Sparse) StoredIndices() (rows, cols []int) {
	cells := m.values.cells()
	rows = make([]int, len(cells))
	cols = make([]int, len(cells))
	for k, c := range cells {
		rows[k], cols[k] = c.row, c.col
	}

	return rows, cols
}

// ForEachValue visits the stored entries only, in storage (insertion) order.
// fn may overwrite existing cells of m but must not add or clear cells.
func (m *Sparse) ForEachValue(fn func(i, j int, v float64)) {
	m.values.each(func(c cell, v float64) {
		fn(c.row, c.col, v)
	})
}

// ForEachRowColumn visits every cell of the full grid in row-major order;
// absent cells are reported with v == 0.0. Nothing is inserted.
func (m *Sparse) ForEachRowColumn(fn func(i, j int, v float64)) {
	var i, j int
	var v float64
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			v, _ = m.values.get(i, j)
			fn(i, j, v)
		}
	}
}

// Negate flips the sign of every stored entry in place and returns m.
func (m *Sparse) Negate() *Sparse {
	m.values.each(func(c cell, v float64) {
		m.values.set(c.row, c.col, -v)
	})

	return m
}

// ClearRow removes every stored cell of row i. Unlike Dense.ClearRow the
// cells disappear from storage; At still reports 0.0 for them.
// Panics with ErrOutOfRange when i is not a valid row.
func (m *Sparse) ClearRow(i int) {
	m.checkIndex(ctxClear, i, 0)
	for j := 0; j < m.c; j++ {
		m.values.remove(i, j)
	}
}

// ClearColumn removes every stored cell of column j.
// Panics with ErrOutOfRange when j is not a valid column.
func (m *Sparse) ClearColumn(j int) {
	m.checkIndex(ctxClear, 0, j)
	for i := 0; i < m.r; i++ {
		m.values.remove(i, j)
	}
}

// ClearRowColumn removes row k and column k from storage.
func (m *Sparse) ClearRowColumn(k int) {
	m.ClearRow(k)
	m.ClearColumn(k)
}

// RightDiagonal stores 1.0 on every diagonal cell whose value is 0.0,
// whether that zero is stored or implicit, and returns m.
//
// Errors:
//   - ErrNonSquare when Rows() != Cols().
func (m *Sparse) RightDiagonal() (*Sparse, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opDiagonal, err)
	}
	for i := 0; i < m.r; i++ {
		if v, _ := m.values.get(i, i); v == 0 {
			m.values.set(i, i, 1)
		}
	}

	return m, nil
}

// Copy returns an independent matrix with the same stored set (explicit
// zeros included) in the same storage order.
func (m *Sparse) Copy() *Sparse {
	out := &Sparse{r: m.r, c: m.c, values: newSparseValues()}
	m.values.each(func(c cell, v float64) {
		out.values.set(c.row, c.col, v)
	})

	return out
}
