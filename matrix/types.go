// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense and sparse storages.
// This file intentionally contains ONLY the public Matrix interface and the
// coordinate key used by sparse storage. Errors and options live in dedicated
// files (errors.go, options.go).
package matrix

import "gonum.org/v1/gonum/mat"

// Matrix is a two-dimensional mutable array of float64 values.
// Both *Dense and *Sparse implement it, so callers can treat them
// interchangeably wherever dimensions allow.
//
// The embedded mat.Matrix (Dims, At, T) makes every implementation usable
// with gonum directly (mat.Formatted, mat.EqualApprox, mat.DenseCopyOf, ...).
//
// Complexity notes: Rows/Cols/Dims are O(1); At/Set are O(1) (amortized for
// sparse storage); ForEachRowColumn is O(rows*cols).
type Matrix interface {
	mat.Matrix

	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// Set assigns the value v at position (i, j).
	// Panics with ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64)

	// ForEachRowColumn visits every (row, col, value) cell of the full
	// rows×cols grid in row-major order, implicit zeros included.
	ForEachRowColumn(fn func(i, j int, v float64))
}

// cell is a (row, col) coordinate used as the sparse storage key.
// Plain ints keep the key comparable and hash-friendly.
type cell struct {
	row int // row index
	col int // column index
}

// compareCells orders cells row-major: by row, then by column.
func compareCells(a, b cell) int {
	if a.row != b.row {
		if a.row < b.row {
			return -1
		}
		return 1
	}
	if a.col < b.col {
		return -1
	}
	if a.col > b.col {
		return 1
	}

	return 0
}
