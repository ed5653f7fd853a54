// SPDX-License-Identifier: MIT
// Package csr: thin constructors for common shapes.
//
// Each facade delegates to Build so that all invariants are enforced in
// exactly one place.

package csr

// NewEmpty returns a rows×cols matrix with no stored entries.
// Returns ErrInvalidShape for negative dimensions.
// Complexity: O(rows).
func NewEmpty(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, csrErrorf("NewEmpty", ErrInvalidShape)
	}

	return Build(rows, cols, make([]int, rows+1), nil, nil)
}

// NewIdentity returns the n×n sparse identity (n stored ones).
// Complexity: O(n).
func NewIdentity(n int) (*Matrix, error) {
	if n < 0 {
		return nil, csrErrorf("NewIdentity", ErrInvalidShape)
	}
	rowPtr := make([]int, n+1)
	colIdx := make([]int, n)
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		rowPtr[i+1] = i + 1
		colIdx[i] = i
		values[i] = 1
	}

	return Build(n, n, rowPtr, colIdx, values)
}

// FromRows builds a matrix from dense row slices, storing only non-zero
// entries. All rows must have length cols.
// Intended for tests and small fixtures; Build is the primary constructor.
// Complexity: O(rows*cols).
func FromRows(cols int, data [][]float64, opts ...Option) (*Matrix, error) {
	rows := len(data)
	rowPtr := make([]int, rows+1)
	var colIdx []int
	var values []float64
	for i, r := range data {
		if len(r) != cols {
			return nil, rowErrorf("FromRows", i, ErrInvalidShape)
		}
		for j, v := range r {
			if v != 0 {
				colIdx = append(colIdx, j)
				values = append(values, v)
			}
		}
		rowPtr[i+1] = len(colIdx)
	}

	return Build(rows, cols, rowPtr, colIdx, values, opts...)
}
