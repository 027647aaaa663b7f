// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for the kernels.
//   • Keep random data well-conditioned so no-pivot elimination never meets a zero pivot.

package matrix_test

import (
	"errors"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/doublematrix/matrix"
)

// Tolerances shared by numeric assertions.
const (
	RtolTiny  = 1e-12
	AtolTiny  = 1e-12
	AtolLoose = 1e-9
)

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustSparse ALLOCATES an empty r×c *Sparse or fails the test.
func MustSparse(t testing.TB, r, c int) *matrix.Sparse {
	t.Helper()
	m, err := matrix.NewSparse(r, c)
	if err != nil {
		t.Fatalf("NewSparse(%d,%d): %v", r, c, err)
	}

	return m
}

// NewFilledDense BUILDS an r×c *Dense from row-major vals.
func NewFilledDense(t testing.TB, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("NewFilledDense: want %d values, got %d", r*c, len(vals))
	}
	d, err := matrix.FromValues(r, c, vals)
	if err != nil {
		t.Fatalf("FromValues(%d,%d): %v", r, c, err)
	}

	return d
}

// NewFilledSparse BUILDS an r×c *Sparse storing EVERY cell of vals (zeros included),
// in row-major order.
func NewFilledSparse(t testing.TB, r, c int, vals []float64) *matrix.Sparse {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("NewFilledSparse: want %d values, got %d", r*c, len(vals))
	}
	s := MustSparse(t, r, c)
	for idx, v := range vals {
		s.Set(idx/c, idx%c, v)
	}

	return s
}

// RandDominant BUILDS an n×n strictly diagonally dominant *Dense from seed.
// Diagonal dominance keeps every no-pivot elimination pivot nonzero.
func RandDominant(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, n, n)
	var i, j int
	var rowSum, v float64
	for i = 0; i < n; i++ {
		rowSum = 0
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			v = rng.Float64()*2 - 1
			m.Set(i, j, v)
			if v < 0 {
				v = -v
			}
			rowSum += v
		}
		m.Set(i, i, rowSum+1+rng.Float64())
	}

	return m
}

// RandColumn BUILDS an n×1 *Dense with U(-10,10) entries.
func RandColumn(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	b := MustDense(t, n, 1)
	for i := 0; i < n; i++ {
		b.Set(i, 0, rng.Float64()*20-10)
	}

	return b
}

// CompareExact ASSERTS m equals want cell by cell (bitwise float equality).
func CompareExact(t testing.TB, want [][]float64, m matrix.Matrix) {
	t.Helper()
	r, c := m.Dims()
	if len(want) != r {
		t.Fatalf("CompareExact: Rows = %d; want %d", r, len(want))
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		if len(want[i]) != c {
			t.Fatalf("CompareExact: Cols[%d] = %d; want %d", i, c, len(want[i]))
		}
		for j = 0; j < c; j++ {
			if v = m.At(i, j); v != want[i][j] {
				t.Fatalf("m[%d,%d]=%v; want %v\n% v", i, j, v, want[i][j], mat.Formatted(m))
			}
		}
	}
}

// CompareClose ASSERTS AllClose(a,b) under (rtol, atol).
func CompareClose(t testing.TB, a, b matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, rtol, atol)
	if err != nil {
		t.Fatalf("AllClose err: %v", err)
	}
	if !ok {
		t.Fatalf("AllClose=false (rtol=%g, atol=%g)\ngot\n% .6v\nwant\n% .6v",
			rtol, atol, mat.Formatted(a), mat.Formatted(b))
	}
}

// AssertErrorIs ASSERTS errors.Is(err, target).
func AssertErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// ExpectPanic ASSERTS that fn() panics (any value).
func ExpectPanic(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got nil")
		}
	}()
	fn()
}

// ExpectPanicIs ASSERTS that fn() panics with an error matching target.
func ExpectPanicIs(t testing.TB, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic, got nil")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("panic %v; want errors.Is(_, %v)", r, target)
		}
	}()
	fn()
}

// IsUnitLower REPORTS whether m has ones on the diagonal and zeros above it.
func IsUnitLower(m matrix.Matrix) bool {
	ok := true
	m.ForEachRowColumn(func(i, j int, v float64) {
		if (i == j && v != 1) || (j > i && v != 0) {
			ok = false
		}
	})

	return ok
}

// IsUpper REPORTS whether m has zeros below the diagonal.
func IsUpper(m matrix.Matrix) bool {
	ok := true
	m.ForEachRowColumn(func(i, j int, v float64) {
		if i > j && v != 0 {
			ok = false
		}
	})

	return ok
}
