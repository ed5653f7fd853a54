// SPDX-License-Identifier: MIT
// Package csr: Transpose engine.
//
// Algorithm (classic CSR→CSC counting sort):
//   - Stage 1: count stored entries per original column → new row lengths.
//   - Stage 2: prefix-sum the counts into the new rowPtr (len cols+1).
//   - Stage 3: walk the original rows in ascending order and scatter every
//     (row, value) pair to its column's write cursor.
//
// Because Stage 3 visits original rows in ascending order, every new row
// receives its column indices (= original row numbers) already sorted, so no
// per-row sort pass is needed. Values are permuted, never recomputed.

package csr

// transposeArrays returns the CSR arrays of mᵀ without touching m.
// Complexity: O(nnz + rows + cols) time, O(nnz + cols) space.
func transposeArrays(m *Matrix) (rowPtr, colIdx []int, values []float64) {
	nnz := m.NNZ()
	rowPtr = make([]int, m.cols+1)
	colIdx = make([]int, nnz)
	values = make([]float64, nnz)

	// Stage 1: per-column counts, shifted by one for the prefix sum.
	for _, c := range m.colIdx[:nnz] {
		rowPtr[c+1]++
	}
	// Stage 2: prefix sum.
	for j := 0; j < m.cols; j++ {
		rowPtr[j+1] += rowPtr[j]
	}

	// Stage 3: scatter in original row order.
	cursor := make([]int, m.cols)
	copy(cursor, rowPtr[:m.cols])
	var i, k, c, dst int
	for i = 0; i < m.rows; i++ {
		for k = m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			c = m.colIdx[k]
			dst = cursor[c]
			colIdx[dst] = i
			values[dst] = m.values[k]
			cursor[c]++
		}
	}

	return rowPtr, colIdx, values
}

// Transpose replaces m by its transpose in place and returns m for chaining.
// Rows and Cols are swapped; Transpose(Transpose(m)) is structurally equal
// to the original m. A nil m is returned unchanged.
//
// Callers must ensure no other goroutine reads m during the call.
// Complexity: O(nnz + rows + cols).
func Transpose(m *Matrix) *Matrix {
	if m == nil {
		return nil
	}
	m.rowPtr, m.colIdx, m.values = transposeArrays(m)
	m.rows, m.cols = m.cols, m.rows

	return m
}

// Transpose is the method form of the package-level Transpose (mutating).
func (m *Matrix) Transpose() *Matrix { return Transpose(m) }

// T returns mᵀ as a new Matrix, leaving m untouched.
// Complexity: O(nnz + rows + cols).
func (m *Matrix) T() *Matrix {
	rowPtr, colIdx, values := transposeArrays(m)

	return &Matrix{rows: m.cols, cols: m.rows, rowPtr: rowPtr, colIdx: colIdx, values: values}
}
