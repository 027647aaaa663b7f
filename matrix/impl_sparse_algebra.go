// SPDX-License-Identifier: MIT
// Package matrix: algebraic operators on *Sparse.
//
// Add, Sub and Mul have to see implicit zeros, so they walk the full grid and
// store every result cell. Scale and Transpose only touch stored entries, so
// their results keep the operand's sparsity (explicit zeros included).

package matrix

// addSub computes out = m + sign*b over the full grid.
func (m *Sparse) addSub(b *Sparse, sign float64, opTag string) (*Sparse, error) {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := &Sparse{r: m.r, c: m.c, values: newSparseValues()}
	m.ForEachRowColumn(func(i, j int, v float64) {
		bv, _ := b.values.get(i, j)
		res.values.set(i, j, v+sign*bv)
	})

	return res, nil
}

// Add computes the element-wise sum m + b into a fresh Sparse.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func (m *Sparse) Add(b *Sparse) (*Sparse, error) { return m.addSub(b, +1, opAdd) }

// Sub computes the element-wise difference m - b into a fresh Sparse.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
func (m *Sparse) Sub(b *Sparse) (*Sparse, error) { return m.addSub(b, -1, opSub) }

// Mul performs C = m × b. Each result cell accumulates Σ_n m[r,n]*b[n,c]
// with n ascending, the same order as Dense.Mul.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*k*c) map lookups.
func (m *Sparse) Mul(b *Sparse) (*Sparse, error) {
	if err := ValidateMulCompatible(m, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res := &Sparse{r: m.r, c: b.c, values: newSparseValues()}
	var r, c, n int
	var sum, av, bv float64
	for r = 0; r < m.r; r++ {
		for c = 0; c < b.c; c++ {
			sum = 0
			for n = 0; n < m.c; n++ {
				av, _ = m.values.get(r, n)
				bv, _ = b.values.get(n, c)
				sum += av * bv
			}
			res.values.set(r, c, sum)
		}
	}

	return res, nil
}

// Scale returns a new matrix holding alpha*v for every stored entry.
func (m *Sparse) Scale(alpha float64) *Sparse {
	res := &Sparse{r: m.r, c: m.c, values: newSparseValues()}
	m.values.each(func(c cell, v float64) {
		res.values.set(c.row, c.col, alpha*v)
	})

	return res
}

// Transpose returns a new c×r matrix with the stored entries mirrored.
func (m *Sparse) Transpose() *Sparse {
	res := &Sparse{r: m.c, c: m.r, values: newSparseValues()}
	m.values.each(func(c cell, v float64) {
		res.values.set(c.col, c.row, v)
	})

	return res
}
