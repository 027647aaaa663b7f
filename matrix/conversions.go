// SPDX-License-Identifier: MIT
// Package matrix: converters between the two storage kinds and gonum.
//
// Dense and Sparse already satisfy mat.Matrix, so any gonum routine can read
// them directly. These helpers materialize copies in the other direction.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToSparse returns a *Sparse holding the nonzero cells of m (row-major order).
func (m *Dense) ToSparse() *Sparse {
	out := &Sparse{r: m.r, c: m.c, values: newSparseValues()}
	m.ForEachRowColumn(func(i, j int, v float64) {
		if v != 0 {
			out.values.set(i, j, v)
		}
	})

	return out
}

// ToDense returns a *Dense with every cell of m materialized.
func (m *Sparse) ToDense() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]float64, m.r*m.c)}
	m.values.each(func(c cell, v float64) {
		out.data[c.row*m.c+c.col] = v
	})

	return out
}

// ToGonum copies m into a fresh *mat.Dense.
func (m *Dense) ToGonum() *mat.Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return mat.NewDense(m.r, m.c, data)
}

// FromGonum copies any gonum matrix into a *Dense.
//
// Errors:
//   - ErrInvalidDimensions for a 0×0 (or degenerate) source.
func FromGonum(src mat.Matrix) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf(opConvert, ErrNilMatrix)
	}
	r, c := src.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opConvert, fmt.Errorf("FromGonum: %w", err))
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = src.At(i, j)
		}
	}

	return out, nil
}

// SparseFromGonum copies the nonzero cells of any gonum matrix into a *Sparse.
//
// Errors:
//   - ErrInvalidDimensions for a degenerate source.
func SparseFromGonum(src mat.Matrix) (*Sparse, error) {
	if src == nil {
		return nil, matrixErrorf(opConvert, ErrNilMatrix)
	}
	r, c := src.Dims()
	out, err := NewSparse(r, c)
	if err != nil {
		return nil, matrixErrorf(opConvert, fmt.Errorf("SparseFromGonum: %w", err))
	}
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v = src.At(i, j); v != 0 {
				out.values.set(i, j, v)
			}
		}
	}

	return out, nil
}
