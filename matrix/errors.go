// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Operations return these sentinels (wrapped with an operation tag)
// and tests check them via errors.Is. Panics are reserved for programmer
// errors: out-of-range indices and nonsensical option values.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Operations
// wrap with matrixErrorf(op, ErrX) so the message reads "Add: matrix: ...";
// callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape (non-square / mismatch) -> numeric (singular, guard only).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, Mul where a.Cols != b.Rows, a ragged row
	// set, or a right-hand side whose length differs from the system order.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// It is the payload of the panic raised by At/Set.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrSingular is returned when a zero pivot is met while the pivot guard
	// is enabled. Without the guard zero pivots propagate as ±Inf/NaN.
	ErrSingular = errors.New("matrix: singular matrix")
)
