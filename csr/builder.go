// SPDX-License-Identifier: MIT
// Package csr: constructors.
//
// Purpose:
//   - Build: validate raw CSR arrays and deep-copy them into a Matrix.
//   - FromTriplets: ingest COO (row, col, value) triples, sort, sum
//     duplicates and emit a valid Matrix.
//
// Policy:
//   - Constructors never mutate or alias caller slices.
//   - No partial matrix is ever returned: on error the result is nil.
//   - Unsorted column indices are rejected by Build, never re-sorted,
//     so that caller bugs surface at construction time.

package csr

import (
	"cmp"
	"fmt"
	"slices"
)

// Build validates rowPtr/colIdx/values and returns a new rows×cols Matrix.
//
// Implementation:
//   - Stage 1: ValidateShape (dims and slice lengths).
//   - Stage 2: ValidateIndices (range and strict ascending order per row).
//   - Stage 3: ValidateFinite when the NaN/Inf policy is enabled.
//   - Stage 4: deep-copy the three slices.
//
// Errors:
//   - ErrInvalidShape, ErrInvalidIndex, ErrNaNInf (wrapped with "Build").
//
// Complexity:
//   - Time O(rows + nnz), Space O(rows + nnz).
func Build(rows, cols int, rowPtr, colIdx []int, values []float64, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)

	// Stage 1-3 (Validate): shape → indices → finite values.
	if err := ValidateShape(rows, cols, rowPtr, colIdx, values); err != nil {
		return nil, csrErrorf(opBuild, err)
	}
	if err := ValidateIndices(cols, rowPtr, colIdx); err != nil {
		return nil, csrErrorf(opBuild, err)
	}
	if o.validateNaNInf {
		if err := ValidateFinite(values); err != nil {
			return nil, csrErrorf(opBuild, err)
		}
	}

	// Stage 4 (Copy): the matrix owns its storage from here on.
	return &Matrix{
		rows:   rows,
		cols:   cols,
		rowPtr: slices.Clone(rowPtr),
		colIdx: slices.Clone(colIdx),
		values: slices.Clone(values),
	}, nil
}

// triplet is one COO entry used by FromTriplets.
type triplet struct {
	r, c int
	v    float64
}

// FromTriplets builds a rows×cols Matrix from coordinate triples
// (ri[k], ci[k], v[k]). Triples may arrive in any order; duplicates of the
// same (row, col) are summed. With WithDropZeros, entries whose final value
// is exactly zero are removed.
//
// Errors:
//   - ErrInvalidShape when dims are negative or the three slices differ in length.
//   - ErrInvalidIndex when a row or column index is out of range.
//   - ErrNaNInf when the NaN/Inf policy is enabled and a value is not finite.
//
// Complexity:
//   - Time O(nnz log nnz + rows), Space O(nnz + rows).
func FromTriplets(rows, cols int, ri, ci []int, v []float64, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts...)

	if rows < 0 || cols < 0 {
		return nil, csrErrorf(opFromTriplets, ErrInvalidShape)
	}
	if len(ri) != len(ci) || len(ci) != len(v) {
		return nil, csrErrorf(opFromTriplets, fmt.Errorf("len(ri)=%d len(ci)=%d len(v)=%d: %w", len(ri), len(ci), len(v), ErrInvalidShape))
	}
	if o.validateNaNInf {
		if err := ValidateFinite(v); err != nil {
			return nil, csrErrorf(opFromTriplets, err)
		}
	}

	entries := make([]triplet, len(v))
	for k := range v {
		if ri[k] < 0 || ri[k] >= rows {
			return nil, csrErrorf(opFromTriplets, fmt.Errorf("triplet %d: row %d outside [0,%d): %w", k, ri[k], rows, ErrInvalidIndex))
		}
		if ci[k] < 0 || ci[k] >= cols {
			return nil, csrErrorf(opFromTriplets, fmt.Errorf("triplet %d: column %d outside [0,%d): %w", k, ci[k], cols, ErrInvalidIndex))
		}
		entries[k] = triplet{r: ri[k], c: ci[k], v: v[k]}
	}

	// Stable sort keeps the summation order of duplicates deterministic.
	slices.SortStableFunc(entries, func(a, b triplet) int {
		if c := cmp.Compare(a.r, b.r); c != 0 {
			return c
		}
		return cmp.Compare(a.c, b.c)
	})

	m := &Matrix{
		rows:   rows,
		cols:   cols,
		rowPtr: make([]int, rows+1),
		colIdx: make([]int, 0, len(entries)),
		values: make([]float64, 0, len(entries)),
	}
	for k := 0; k < len(entries); {
		e := entries[k]
		sum := e.v
		k++
		for k < len(entries) && entries[k].r == e.r && entries[k].c == e.c {
			sum += entries[k].v
			k++
		}
		if o.dropZeros && sum == 0 {
			continue
		}
		m.colIdx = append(m.colIdx, e.c)
		m.values = append(m.values, sum)
		m.rowPtr[e.r+1]++
	}
	// Prefix sum turns per-row counts into offsets.
	for i := 0; i < rows; i++ {
		m.rowPtr[i+1] += m.rowPtr[i]
	}

	return m, nil
}
