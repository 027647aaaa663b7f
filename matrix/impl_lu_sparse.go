// SPDX-License-Identifier: MIT

package matrix

// SparseLU holds the factors of a sparse matrix: A ≈ L·U.
type SparseLU struct {
	L    *Sparse // unit lower triangular
	U    *Sparse // upper triangular
	opts Options
}

// DecomposeSparse factors the square sparse matrix a without pivoting.
//
// Only the cells stored in a are evaluated, in row-major order. Fill-in is not
// computed: a position that is implicit in a stays implicit (0.0) in L and U,
// so the factors are exact only for patterns that produce no fill-in.
// Stored explicit zeros ARE evaluated.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare; ErrSingular with the pivot guard.
//
// Complexity:
//   - Time O(nnz·n) map lookups + O(nnz log nnz) ordering.
func DecomposeSparse(a *Sparse, opts ...Option) (*SparseLU, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)

	n := a.r
	l := &Sparse{r: n, c: n, values: newSparseValues()}
	u := &Sparse{r: n, c: n, values: newSparseValues()}
	if _, err := l.RightDiagonal(); err != nil {
		return nil, matrixErrorf(opLU, err)
	}

	var v float64
	for _, c := range a.values.sortedCells() {
		v, _ = a.values.get(c.row, c.col)
		if err := doolittleCell(l, u, c.row, c.col, v, o); err != nil {
			return nil, matrixErrorf(opLU, err)
		}
	}

	return &SparseLU{L: l, U: u, opts: o}, nil
}

// Determinant returns the product of U's diagonal; an unstored diagonal cell
// contributes 0.0.
func (f *SparseLU) Determinant() float64 {
	return diagonalProduct(f.U)
}

// Solve solves A·x = b against the stored factors; b must be n×1.
// The result stores every one of its n cells.
func (f *SparseLU) Solve(b *Sparse) (*Sparse, error) {
	if err := ValidateSystem(f.U, b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := f.U.r
	d := &Sparse{r: n, c: 1, values: newSparseValues()}
	x := &Sparse{r: n, c: 1, values: newSparseValues()}
	if err := substitute(f.L, f.U, b, d, x, f.opts); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return x, nil
}

// Determinant factors m and returns the product of U's diagonal.
//
// Errors:
//   - ErrNonSquare.
func (m *Sparse) Determinant() (float64, error) {
	f, err := DecomposeSparse(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return f.Determinant(), nil
}
