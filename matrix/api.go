// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common constructions.
//   - Accept integer as well as floating-point input where callers naturally
//     hold integer data (load vectors, incidence counts): the generic builders
//     convert once at the boundary; the kernels stay float64-only.
//
// Determinism & Policy:
//   - Facades never change the loop orders of the underlying kernels.

package matrix

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any built-in integer or floating-point type accepted by the builders.
type Number interface {
	constraints.Integer | constraints.Float
}

// NewIdentity returns I_n as a *Dense: a zero n×n matrix passed through RightDiagonal.
//
// Errors:
//   - ErrInvalidDimensions when n < 1.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewSquare(n)
	if err != nil {
		return nil, err
	}

	return m.RightDiagonal(), nil
}

// NewSparseIdentity returns I_n as a *Sparse with exactly n stored entries.
//
// Errors:
//   - ErrInvalidDimensions when n < 1.
func NewSparseIdentity(n int) (*Sparse, error) {
	m, err := NewSparseSquare(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.values.set(i, i, 1)
	}

	return m, nil
}

// FromValues builds a rows×cols *Dense from row-major values of any numeric type.
//
// Errors:
//   - ErrInvalidDimensions (rows < 1 || cols < 1).
//   - ErrDimensionMismatch (len(values) != rows*cols).
func FromValues[T Number](rows, cols int, values []T) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("FromValues: %d values for %dx%d: %w", len(values), rows, cols, ErrDimensionMismatch)
	}
	for idx, v := range values {
		m.data[idx] = float64(v)
	}

	return m, nil
}

// SparseFromValues builds a rows×cols *Sparse from row-major values, storing
// only the nonzero ones (row-major insertion order).
//
// Errors:
//   - ErrInvalidDimensions (rows < 1 || cols < 1).
//   - ErrDimensionMismatch (len(values) != rows*cols).
func SparseFromValues[T Number](rows, cols int, values []T) (*Sparse, error) {
	m, err := NewSparse(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("SparseFromValues: %d values for %dx%d: %w", len(values), rows, cols, ErrDimensionMismatch)
	}
	for idx, v := range values {
		if v != 0 {
			m.values.set(idx/cols, idx%cols, float64(v))
		}
	}

	return m, nil
}

// SetNumber writes v (any numeric type) at (i, j) of m.
// Panics with ErrOutOfRange on invalid indices.
func SetNumber[T Number](m Matrix, i, j int, v T) {
	m.Set(i, j, float64(v))
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes,
// across storage kinds. NaN never compares close; equal infinities do.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances panic.
//
// Complexity:
//   - Time O(r*c), Space O(1). Deterministic row-major scan.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		panic("matrix: AllClose: tolerances must be finite")
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, bv = a.At(i, j), b.At(i, j)
			if av == bv { // covers equal infinities
				continue
			}
			if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) { // NaN fails here
				return false, nil
			}
		}
	}

	return true, nil
}
