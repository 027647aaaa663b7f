// Package doublematrix is a small numeric kernel for finite-element style
// workloads: dense and sparse float64 matrices, Doolittle LU, linear
// system solving, determinant and inverse.
//
// What is inside?
//
//	A pure-Go library that brings together:
//		• Dense & Sparse storage behind one Matrix interface (gonum mat.Matrix compatible)
//		• Element-wise and algebraic operators (Add, Sub, Mul, Scale, Transpose)
//		• LU factorization without pivoting, shared by both storage kinds
//		• Solve / SolveSparse, Determinant, Inverse
//		• Generic builders for integer and float input
//
// Everything lives in one subpackage:
//
//	matrix/  storage types, operators, LU, solver, conversions
//
// Quick example (FEM stiffness system K·u = F):
//
//	k, _ := matrix.NewDenseFromRows(rows)
//	u, err := matrix.SolveVector(k, []float64{50, -80, 20})
//
//	go get github.com/katalvlaran/doublematrix
package doublematrix
