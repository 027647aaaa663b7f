// SPDX-License-Identifier: MIT
// Package matrix: linear system solver A·x = b on top of the LU factors.
//
// Implementation:
//   - Stage 1: factor A (Decompose / DecomposeSparse).
//   - Stage 2: forward substitution L·d = b, top-down:
//     d[i] = b[i] − Σ_{n<i} L[i][n]·d[n]   (L[i][i] = 1 folds into the assignment)
//   - Stage 3: backward substitution U·x = d, bottom-up:
//     x[i] = d[i]/U[i][i] − Σ_{n>i} (U[i][n]·x[n])/U[i][i]
//
// Determinism:
//   - One substitution kernel serves both storage kinds.

package matrix

import "fmt"

// Solve solves a·x = b for a square dense a and an n×1 column b.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
//   - ErrSingular only with the pivot guard; otherwise zero pivots yield ±Inf/NaN.
//
// Complexity:
//   - Time O(n^3) factorization + O(n^2) substitution.
func Solve(a, b *Dense, opts ...Option) (*Dense, error) {
	if err := ValidateSystem(a, b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	f, err := Decompose(a, opts...)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return f.Solve(b)
}

// SolveVector solves a·x = b with b given as a plain slice of length n.
// The solution is returned as an n×1 Dense.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (len(b) != n).
func SolveVector(a *Dense, b []float64, opts ...Option) (*Dense, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, a.r); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	col := &Dense{r: len(b), c: 1, data: make([]float64, len(b))}
	copy(col.data, b)

	return Solve(a, col, opts...)
}

// SolveSparse solves a·x = b for a square sparse a and an n×1 sparse column b.
// The factorization only evaluates a's stored cells (see DecomposeSparse).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch; ErrSingular with the guard.
func SolveSparse(a, b *Sparse, opts ...Option) (*Sparse, error) {
	if err := ValidateSystem(a, b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	f, err := DecomposeSparse(a, opts...)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return f.Solve(b)
}

// substitute runs the forward pass into d and the backward pass into x.
// d and x are fresh n×1 columns of the caller's storage kind.
func substitute(l, u, b, d, x Matrix, o Options) error {
	n := d.Rows()
	var i, k int
	var sum, pivot float64

	// Forward: L·d = b.
	for i = 0; i < n; i++ {
		sum = 0
		for k = 0; k < i; k++ {
			sum += l.At(i, k) * d.At(k, 0)
		}
		d.Set(i, 0, b.At(i, 0)-sum)
	}

	// Backward: U·x = d.
	for i = n - 1; i >= 0; i-- {
		pivot = u.At(i, i)
		if o.singular(pivot) {
			return fmt.Errorf("pivot U(%d,%d)=%g: %w", i, i, pivot, ErrSingular)
		}
		sum = 0
		for k = i + 1; k < n; k++ {
			sum += (u.At(i, k) * x.At(k, 0)) / pivot
		}
		x.Set(i, 0, d.At(i, 0)/pivot-sum)
	}

	return nil
}
