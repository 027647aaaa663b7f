// Package matrix offers dense and sparse float64 matrices with a Doolittle
// LU kernel, linear system solving, determinant and inverse.
//
// The matrix package provides:
//
//   - Dense: flat row-major storage, every cell present.
//   - Sparse: insertion-ordered map of explicitly stored cells; unstored
//     cells read as 0.0 and reads never insert.
//   - Decompose / DecomposeSparse: A = L·U without pivoting. Both storage
//     kinds share one per-cell kernel, so a fully stored Sparse yields the
//     same factors as its Dense twin, bit for bit. The sparse path visits
//     only stored cells and never computes fill-in.
//   - Solve, SolveVector, SolveSparse: forward then backward substitution
//     on the factors, for an n×1 right-hand side.
//   - Determinant (product of U's diagonal) and Inverse (one factorization,
//     n unit-vector solves).
//   - Add, Sub, Mul, Scale, Transpose, Negate, ClearRow/Column, RightDiagonal.
//
// Both types satisfy gonum's mat.Matrix, so any gonum routine can read them;
// ToGonum / FromGonum / SparseFromGonum copy across.
//
// Zero pivots are divided through by default and show up as ±Inf/NaN.
// Pass WithPivotGuard or WithPivotEpsilon to get ErrSingular instead.
//
// Out-of-range indices panic with an error wrapping ErrOutOfRange; every
// other failure is returned as an error wrapping one of the package sentinels.
//
// See the examples in this package for usage patterns.
package matrix
