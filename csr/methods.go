// SPDX-License-Identifier: MIT
// Package csr: read accessors and structural helpers.
//
// Determinism:
//   - All accessors are pure reads; none of them allocates except the
//     defensive-copy getters (RowPtr/ColIdx/Values), Clone and String.

package csr

import (
	"fmt"
	"slices"
	"strings"
)

// Rows returns the number of rows.
// Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
// Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// Dims returns (rows, cols).
func (m *Matrix) Dims() (rows, cols int) { return m.rows, m.cols }

// NNZ returns the number of stored entries (explicit zeros included).
// The zero Matrix reports 0.
func (m *Matrix) NNZ() int {
	if len(m.rowPtr) == 0 {
		return 0
	}

	return m.rowPtr[m.rows]
}

// RowNNZ returns the number of stored entries in row i.
// Panics if i is out of range, like slice indexing.
func (m *Matrix) RowNNZ(i int) int { return m.rowPtr[i+1] - m.rowPtr[i] }

// RowView returns row i as a Vector aliasing the matrix storage.
// It is the hot-path accessor for kernels and panics if i is out of range,
// like slice indexing. Use Row for a checked variant.
// Complexity: O(1).
func (m *Matrix) RowView(i int) Vector {
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]
	return Vector{
		Indices: m.colIdx[lo:hi:hi],
		Values:  m.values[lo:hi:hi],
	}
}

// Row returns row i as a read-only Vector, or ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) Row(i int) (Vector, error) {
	if i < 0 || i >= m.rows {
		return Vector{}, fmt.Errorf("Row(%d): %w", i, ErrOutOfRange)
	}

	return m.RowView(i), nil
}

// At returns the entry at (i, j); absent entries read as 0.
// Returns ErrOutOfRange for invalid indices.
// Complexity: O(log rowNnz) via binary search on the sorted row.
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, csrErrorf(opAt, fmt.Errorf("(%d,%d): %w", i, j, ErrOutOfRange))
	}
	row := m.RowView(i)
	if k, ok := slices.BinarySearch(row.Indices, j); ok {
		return row.Values[k], nil
	}

	return 0, nil
}

// RowPtr returns a copy of the row pointer array (len Rows()+1).
func (m *Matrix) RowPtr() []int { return slices.Clone(m.rowPtr) }

// ColIdx returns a copy of the column index array (len NNZ()).
func (m *Matrix) ColIdx() []int { return slices.Clone(m.colIdx) }

// Values returns a copy of the value array (len NNZ()).
func (m *Matrix) Values() []float64 { return slices.Clone(m.values) }

// Clone returns a deep copy of m. The copy shares no storage with m.
// Complexity: O(rows + nnz).
func (m *Matrix) Clone() *Matrix {
	return &Matrix{
		rows:   m.rows,
		cols:   m.cols,
		rowPtr: slices.Clone(m.rowPtr),
		colIdx: slices.Clone(m.colIdx),
		values: slices.Clone(m.values),
	}
}

// Equal reports whether m and o are structurally identical: same shape,
// same row pointers, column indices and values (bitwise float equality).
// Two nil matrices are equal.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}

	return m.rows == o.rows &&
		m.cols == o.cols &&
		slices.Equal(m.rowPtr, o.rowPtr) &&
		slices.Equal(m.colIdx, o.colIdx) &&
		slices.Equal(m.values, o.values)
}

// String implements fmt.Stringer: one line per row listing "col:value" pairs.
// Complexity: O(rows + nnz).
func (m *Matrix) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "CSR %dx%d nnz=%d\n", m.rows, m.cols, m.NNZ())
	for i := 0; i < m.rows; i++ {
		row := m.RowView(i)
		sb.WriteString("[")
		for k, c := range row.Indices {
			if k > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d:%g", c, row.Values[k])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
