// SPDX-License-Identifier: MIT
// Package matrix: Doolittle LU factorization without pivoting.
//
// Purpose:
//   - Factor a square A into unit lower-triangular L and upper-triangular U.
//   - Express the elimination as closed-form summations evaluated per cell of A:
//     i <= j: U[i][j] = A[i][j] − Σ_{n<i} L[i][n]·U[n][j]
//     i >  j: L[i][j] = A[i][j]/U[j][j] − Σ_{n<j} (L[i][n]·U[n][j])/U[j][j]
//   - Serve dense and sparse storage from ONE per-cell kernel (doolittleCell), so
//     identical inputs produce identical factors regardless of storage kind.
//
// Determinism:
//   - Cells are visited row-major. Each formula reads only L/U entries at
//     strictly smaller indices along the relevant axis, which row-major order
//     has already finalized.
//
// Notes:
//   - No pivoting. A zero U[j][j] is divided through and yields ±Inf/NaN unless
//     the pivot guard option is enabled (then ErrSingular).

package matrix

import "fmt"

// LU holds the factors of a dense matrix: A ≈ L·U.
type LU struct {
	L    *Dense  // unit lower triangular
	U    *Dense  // upper triangular
	opts Options // policy used for factorization, reused by Solve
}

// Decompose factors the square matrix a into L and U (Doolittle, no pivoting).
//
// Implementation:
//   - Stage 1: validate a (non-nil, square).
//   - Stage 2: L = zero n×n with RightDiagonal (unit diagonal), U = zero n×n.
//   - Stage 3: visit every cell of a row-major and apply doolittleCell.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//   - ErrSingular only with WithPivotGuard / WithPivotEpsilon.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Decompose(a *Dense, opts ...Option) (*LU, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)

	n := a.r
	l := &Dense{r: n, c: n, data: make([]float64, n*n)}
	u := &Dense{r: n, c: n, data: make([]float64, n*n)}
	l.RightDiagonal()

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if err := doolittleCell(l, u, i, j, a.data[i*n+j], o); err != nil {
				return nil, matrixErrorf(opLU, err)
			}
		}
	}

	return &LU{L: l, U: u, opts: o}, nil
}

// Determinant returns the product of U's diagonal.
func (f *LU) Determinant() float64 {
	return diagonalProduct(f.U)
}

// Solve solves A·x = b against the stored factors; b must be n×1.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch; ErrSingular with the pivot guard.
func (f *LU) Solve(b *Dense) (*Dense, error) {
	if err := ValidateSystem(f.U, b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := f.U.r
	d := &Dense{r: n, c: 1, data: make([]float64, n)}
	x := &Dense{r: n, c: 1, data: make([]float64, n)}
	if err := substitute(f.L, f.U, b, d, x, f.opts); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return x, nil
}

// Determinant factors m and returns the product of U's diagonal.
// A zero pivot met mid-factorization yields NaN/±Inf, not an error.
//
// Errors:
//   - ErrNonSquare.
func (m *Dense) Determinant() (float64, error) {
	f, err := Decompose(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return f.Determinant(), nil
}

// Inverse returns m⁻¹ assembled column by column: column i is the solution
// of m·x = e_i. The factorization is computed once and reused for every column.
//
// Errors:
//   - ErrNonSquare; ErrSingular with the pivot guard.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func (m *Dense) Inverse(opts ...Option) (*Dense, error) {
	f, err := Decompose(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := m.r
	inv := &Dense{r: n, c: n, data: make([]float64, n*n)}
	var x *Dense
	for i := 0; i < n; i++ {
		e := &Dense{r: n, c: 1, data: make([]float64, n)}
		e.data[i] = 1
		if x, err = f.Solve(e); err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		for k := 0; k < n; k++ {
			inv.data[k*n+i] = x.data[k]
		}
	}

	return inv, nil
}

// doolittleCell computes the single factor entry owned by cell (i,j) of A.
// The sums run n ascending and divide each L-branch term by U[j][j]
// individually; both backends call this to stay bit-for-bit consistent.
func doolittleCell(l, u Matrix, i, j int, a float64, o Options) error {
	var n int
	var sum float64
	if i <= j {
		for n = 0; n < i; n++ {
			sum += l.At(i, n) * u.At(n, j)
		}
		u.Set(i, j, a-sum)

		return nil
	}

	pivot := u.At(j, j)
	if o.singular(pivot) {
		return fmt.Errorf("pivot U(%d,%d)=%g: %w", j, j, pivot, ErrSingular)
	}
	for n = 0; n < j; n++ {
		sum += (l.At(i, n) * u.At(n, j)) / pivot
	}
	l.Set(i, j, a/pivot-sum)

	return nil
}

// diagonalProduct multiplies u[i][i] for i ascending.
func diagonalProduct(u Matrix) float64 {
	res := 1.0
	for i := 0; i < u.Rows(); i++ {
		res *= u.At(i, i)
	}

	return res
}
