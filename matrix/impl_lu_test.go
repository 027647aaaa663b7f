// SPDX-License-Identifier: MIT
// Package matrix_test: Doolittle LU (dense & sparse), determinant, inverse.

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/doublematrix/matrix"
)

// A = [[4,3],[6,3]] → L=[[1,0],[1.5,1]], U=[[4,3],[0,-1.5]], det = -6.
func TestLU_Known2x2(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []float64{4, 3, 6, 3})
	f, err := matrix.Decompose(a)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0}, {1.5, 1}}, f.L)
	CompareExact(t, [][]float64{{4, 3}, {0, -1.5}}, f.U)
	require.Equal(t, -6.0, f.Determinant())

	det, err := a.Determinant()
	require.NoError(t, err)
	require.Equal(t, -6.0, det)

	sf, err := matrix.DecomposeSparse(a.ToSparse())
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0}, {1.5, 1}}, sf.L)
	CompareExact(t, [][]float64{{4, 3}, {0, -1.5}}, sf.U)

	sdet, err := a.ToSparse().Determinant()
	require.NoError(t, err)
	require.Equal(t, -6.0, sdet)
}

// Same 3×3 SPD case as the classic Cholesky example.
func TestLU_Known3x3(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 3, 3, []float64{
		4, 12, -16,
		12, 37, -43,
		-16, -43, 98,
	})
	f, err := matrix.Decompose(a)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0, 0}, {3, 1, 0}, {-4, 5, 1}}, f.L)
	CompareExact(t, [][]float64{{4, 12, -16}, {0, 1, 5}, {0, 0, 9}}, f.U)
	require.Equal(t, 36.0, f.Determinant())
}

// L·U reconstructs A; L is unit lower, U is upper. Checked against gonum for det.
func TestLU_ReconstructsRandomDominant(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 5, 12} {
		a := RandDominant(t, n, int64(100+n))
		f, err := matrix.Decompose(a)
		require.NoError(t, err)

		require.True(t, IsUnitLower(f.L), "L not unit lower:\n% v", mat.Formatted(f.L))
		require.True(t, IsUpper(f.U), "U not upper:\n% v", mat.Formatted(f.U))

		lu, err := f.L.Mul(f.U)
		require.NoError(t, err)
		CompareClose(t, lu, a, 1e-12, 1e-12)

		det, err := a.Determinant()
		require.NoError(t, err)
		assert.InEpsilon(t, mat.Det(a), det, 1e-9)
	}
}

// With a full stored pattern the sparse kernel reproduces the dense factors bit for bit.
func TestLU_SparseFullPatternMatchesDenseExactly(t *testing.T) {
	t.Parallel()

	a := RandDominant(t, 6, 7)
	f, err := matrix.Decompose(a)
	require.NoError(t, err)

	sf, err := matrix.DecomposeSparse(a.ToSparse())
	require.NoError(t, err)

	CompareExact(t, rowsOf(f.L), sf.L)
	CompareExact(t, rowsOf(f.U), sf.U)
}

// Insertion order of the sparse input does not change the factors.
func TestLU_SparseInsertionOrderIrrelevant(t *testing.T) {
	t.Parallel()

	a := RandDominant(t, 4, 9)
	rev := MustSparse(t, 4, 4)
	for i := 3; i >= 0; i-- {
		for j := 3; j >= 0; j-- {
			rev.Set(i, j, a.At(i, j))
		}
	}
	sf, err := matrix.DecomposeSparse(rev)
	require.NoError(t, err)
	f, err := matrix.Decompose(a)
	require.NoError(t, err)
	CompareExact(t, rowsOf(f.U), sf.U)
	CompareExact(t, rowsOf(f.L), sf.L)
}

// Tridiagonal patterns produce no fill-in: sparse == dense.
func TestLU_SparseTridiagonalNoFillIn(t *testing.T) {
	t.Parallel()

	const n = 6
	s := MustSparse(t, n, n)
	for i := 0; i < n; i++ {
		s.Set(i, i, 4)
		if i > 0 {
			s.Set(i, i-1, -1)
		}
		if i < n-1 {
			s.Set(i, i+1, -1)
		}
	}
	sf, err := matrix.DecomposeSparse(s)
	require.NoError(t, err)
	f, err := matrix.Decompose(s.ToDense())
	require.NoError(t, err)
	CompareExact(t, rowsOf(f.L), sf.L)
	CompareExact(t, rowsOf(f.U), sf.U)
}

// Fill-in positions are never computed on the sparse path.
func TestLU_SparseSkipsFillIn(t *testing.T) {
	t.Parallel()

	s := NewFilledDense(t, 3, 3, []float64{
		4, 1, 1,
		1, 4, 0,
		1, 0, 4,
	}).ToSparse()
	require.Equal(t, 7, s.NumStored())

	sf, err := matrix.DecomposeSparse(s)
	require.NoError(t, err)
	assert.False(t, sf.L.IsStored(2, 1))
	assert.False(t, sf.U.IsStored(1, 2))
	assert.Equal(t, 3.75, sf.U.At(2, 2)) // 4 - 0.25*1, fill-in term missing

	f, err := matrix.Decompose(s.ToDense())
	require.NoError(t, err)
	assert.NotZero(t, f.L.At(2, 1))
	assert.Equal(t, -0.25, f.U.At(1, 2))
}

func TestLU_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.Decompose(MustDense(t, 2, 3))
	AssertErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Decompose(nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.DecomposeSparse(MustSparse(t, 3, 2))
	AssertErrorIs(t, err, matrix.ErrNonSquare)

	_, err = MustDense(t, 2, 3).Determinant()
	AssertErrorIs(t, err, matrix.ErrNonSquare)
	_, err = MustSparse(t, 2, 3).Determinant()
	AssertErrorIs(t, err, matrix.ErrNonSquare)
}

// A zero pivot propagates as ±Inf/NaN by default and becomes ErrSingular with the guard.
func TestLU_ZeroPivot(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []float64{0, 1, 1, 0})

	f, err := matrix.Decompose(a)
	require.NoError(t, err)
	assert.True(t, math.IsInf(f.L.At(1, 0), 1))
	assert.True(t, math.IsInf(f.U.At(1, 1), -1))

	det, err := a.Determinant()
	require.NoError(t, err)
	assert.True(t, math.IsNaN(det))

	_, err = matrix.Decompose(a, matrix.WithPivotGuard())
	AssertErrorIs(t, err, matrix.ErrSingular)

	s := MustSparse(t, 2, 2)
	s.Set(0, 1, 1)
	s.Set(1, 0, 1)
	_, err = matrix.DecomposeSparse(s, matrix.WithPivotGuard())
	AssertErrorIs(t, err, matrix.ErrSingular)

	sf, err := matrix.DecomposeSparse(s)
	require.NoError(t, err)
	assert.True(t, math.IsInf(sf.L.At(1, 0), 1))
}

// Near-zero pivots are caught only when an epsilon is configured.
func TestLU_PivotEpsilon(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []float64{1e-14, 1, 1, 1})
	_, err := matrix.Decompose(a, matrix.WithPivotGuard())
	require.NoError(t, err)
	_, err = matrix.Decompose(a, matrix.WithPivotEpsilon(1e-12))
	AssertErrorIs(t, err, matrix.ErrSingular)
}

// Known 3×3 matrix with det=9; check values of the inverse (adj(A)/det)
// and that A·A⁻¹ ≈ I.
func TestInverse_Known3x3_Adjugate(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 3, 3, []float64{4, 7, 2, 3, 6, 1, 2, 5, 3})
	inv, err := a.Inverse()
	require.NoError(t, err)

	want := NewFilledDense(t, 3, 3, []float64{
		13.0 / 9.0, -11.0 / 9.0, -5.0 / 9.0,
		-7.0 / 9.0, 8.0 / 9.0, 2.0 / 9.0,
		3.0 / 9.0, -6.0 / 9.0, 3.0 / 9.0,
	})
	CompareClose(t, inv, want, 1e-12, 1e-12)

	eye, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	left, err := a.Mul(inv)
	require.NoError(t, err)
	CompareClose(t, left, eye, 1e-12, 1e-12)
	right, err := inv.Mul(a)
	require.NoError(t, err)
	CompareClose(t, right, eye, 1e-12, 1e-12)
}

func TestInverse_MatchesGonum(t *testing.T) {
	t.Parallel()

	a := RandDominant(t, 8, 31)
	inv, err := a.Inverse()
	require.NoError(t, err)

	var want mat.Dense
	require.NoError(t, want.Inverse(a))
	require.True(t, mat.EqualApprox(inv, &want, 1e-10), "got\n% .4v\nwant\n% .4v", mat.Formatted(inv), mat.Formatted(&want))
}

func TestInverse_Errors(t *testing.T) {
	t.Parallel()

	_, err := MustDense(t, 3, 4).Inverse()
	AssertErrorIs(t, err, matrix.ErrNonSquare)

	// rank-1: LU completes, back substitution meets U[1][1] == 0
	sing := NewFilledDense(t, 2, 2, []float64{1, 2, 2, 4})
	_, err = sing.Inverse(matrix.WithPivotGuard())
	AssertErrorIs(t, err, matrix.ErrSingular)

	inv, err := sing.Inverse()
	require.NoError(t, err)
	finite := true
	inv.ForEachRowColumn(func(_, _ int, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			finite = false
		}
	})
	assert.False(t, finite)
}
