// SPDX-License-Identifier: MIT

// Package csr: domain types.
// This file contains ONLY the Matrix and Vector types. Errors, options and
// validators live in dedicated files (errors.go, options.go, validators.go).
package csr

// Matrix is a compressed-sparse-row matrix of float64 values.
//
// Invariants (established by Build/FromTriplets, preserved by Transpose):
//   - len(rowPtr) == rows+1, rowPtr[0] == 0, rowPtr non-decreasing
//   - nnz == rowPtr[rows] == len(colIdx) == len(values)
//   - within each row, colIdx is strictly increasing and in [0, cols)
//
// Stored zeros are allowed and behave as dead weight.
//
// Valid matrices come from Build, FromTriplets, FromRows, NewEmpty or
// NewIdentity. The zero Matrix{} behaves as an empty 0×0 matrix for the
// read accessors (Rows, Cols, NNZ, String, Clone, Equal).
// Complexity notes: Rows/Cols/NNZ/Row are O(1); At is O(log rowNnz).
type Matrix struct {
	rows, cols int
	rowPtr     []int     // len rows+1
	colIdx     []int     // len nnz
	values     []float64 // len nnz
}

// Vector is a read-only view of one sparse row: Indices are strictly
// ascending column indices and Values[k] is the entry at Indices[k].
//
// Vectors returned by Matrix.Row alias the matrix storage. Do not modify them.
type Vector struct {
	Indices []int
	Values  []float64
}

// Len returns the number of stored entries in v.
func (v Vector) Len() int { return len(v.Indices) }
