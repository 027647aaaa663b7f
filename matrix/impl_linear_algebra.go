// SPDX-License-Identifier: MIT
// Package matrix: algebraic operators on *Dense.
//
// Purpose:
//   - Element-wise addition/subtraction, matrix product, scalar scaling and
//     transpose. Every operator allocates a fresh result; operands are never
//     mutated.
//
// Notes:
//   - All kernels use the central validators and wrap sentinels via matrixErrorf.
//   - Loop orders are fixed (row-major), so results are reproducible bit for bit.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opInverse     = "Inverse"
	opDeterminant = "Determinant"
	opLU          = "LU"
	opSolve       = "Solve"
	opDiagonal    = "RightDiagonal"
	opAllClose    = "AllClose"
	opConvert     = "Convert"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func (m *Dense) addSub(b *Dense, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for idx := range m.data { // deterministic 0..n-1
		res.data[idx] = m.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = m + b and returns a fresh Dense.
//
// Errors:
//   - ErrNilMatrix (nil b), ErrDimensionMismatch (shape mismatch).
func (m *Dense) Add(b *Dense) (*Dense, error) { return m.addSub(b, +1, opAdd) }

// Sub computes the element-wise difference C = m - b and returns a fresh Dense.
//
// Errors:
//   - ErrNilMatrix (nil b), ErrDimensionMismatch (shape mismatch).
func (m *Dense) Sub(b *Dense) (*Dense, error) { return m.addSub(b, -1, opSub) }

// Mul performs standard matrix multiplication C = m × b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (m.Cols == b.Rows).
//   - Stage 2: for every result cell (r,c) accumulate Σ_n m[r,n]*b[n,c], n ascending.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c).
func (m *Dense) Mul(b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(m, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res := &Dense{r: m.r, c: b.c, data: make([]float64, m.r*b.c)}
	var r, c, n, baseA int
	var sum float64
	for r = 0; r < m.r; r++ {
		baseA = r * m.c
		for c = 0; c < b.c; c++ {
			sum = 0
			for n = 0; n < m.c; n++ {
				sum += m.data[baseA+n] * b.data[n*b.c+c]
			}
			res.data[r*b.c+c] = sum
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
func (m *Dense) Scale(alpha float64) *Dense {
	res := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for idx, v := range m.data {
		res.data[idx] = alpha * v
	}

	return res
}

// Transpose returns a new c×r matrix with res[j,i] = m[i,j].
func (m *Dense) Transpose() *Dense {
	res := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	m.ForEachRowColumn(func(i, j int, v float64) {
		res.data[j*res.c+i] = v
	})

	return res
}
