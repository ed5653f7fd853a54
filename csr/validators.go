// SPDX-License-Identifier: MIT
// Package: csr
//
// Purpose:
//  - Provide a single, canonical source of truth for CSR structural checks.
//  - Keep constructors minimal by delegating shape/index/finite checks here.
//  - Return sentinel errors tagged with the validator name so call sites
//    can wrap uniformly and callers can match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//  - Index validation is a single O(nnz) pass over colIdx.
//
// Note:
//  - Build runs the validators in a fixed sequence: Shape → Indices → Finite.

package csr

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateShape checks that the raw CSR arrays describe a consistent
// rows×cols matrix:
//
//	rows >= 0, cols >= 0, len(rowPtr) == rows+1, rowPtr[0] == 0,
//	rowPtr non-decreasing, len(colIdx) == len(values) == rowPtr[rows].
//
// Column index ranges are NOT checked here (see ValidateIndices).
// Returns ErrInvalidShape on any violation.
// Complexity: O(rows).
func ValidateShape(rows, cols int, rowPtr, colIdx []int, values []float64) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf("ValidateShape: dims", ErrInvalidShape)
	}
	if len(rowPtr) != rows+1 {
		return validatorErrorf(fmt.Sprintf("ValidateShape: len(rowPtr)=%d want %d", len(rowPtr), rows+1), ErrInvalidShape)
	}
	if rowPtr[0] != 0 {
		return validatorErrorf("ValidateShape: rowPtr[0]", ErrInvalidShape)
	}
	for i := 0; i < rows; i++ {
		if rowPtr[i+1] < rowPtr[i] {
			return validatorErrorf(fmt.Sprintf("ValidateShape: rowPtr decreases at row %d", i), ErrInvalidShape)
		}
	}
	nnz := rowPtr[rows]
	if len(colIdx) != nnz {
		return validatorErrorf(fmt.Sprintf("ValidateShape: len(colIdx)=%d want %d", len(colIdx), nnz), ErrInvalidShape)
	}
	if len(values) != nnz {
		return validatorErrorf(fmt.Sprintf("ValidateShape: len(values)=%d want %d", len(values), nnz), ErrInvalidShape)
	}

	return nil
}

// ValidateIndices checks that every column index lies in [0, cols) and that
// indices are strictly increasing inside each row.
// Assumes ValidateShape already passed.
// Returns ErrInvalidIndex tagged with the offending row.
// Complexity: O(nnz).
func ValidateIndices(cols int, rowPtr, colIdx []int) error {
	rows := len(rowPtr) - 1
	var k, c, prev int
	for i := 0; i < rows; i++ {
		prev = -1
		for k = rowPtr[i]; k < rowPtr[i+1]; k++ {
			c = colIdx[k]
			if c < 0 || c >= cols {
				return validatorErrorf(fmt.Sprintf("ValidateIndices: row %d: column %d outside [0,%d)", i, c, cols), ErrInvalidIndex)
			}
			// Unsorted input is rejected rather than re-sorted.
			if c <= prev {
				return validatorErrorf(fmt.Sprintf("ValidateIndices: row %d: column %d after %d", i, c, prev), ErrInvalidIndex)
			}
			prev = c
		}
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf values.
// Returns ErrNaNInf tagged with the offending position.
// Complexity: O(len(values)).
func ValidateFinite(values []float64) error {
	for k, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(fmt.Sprintf("ValidateFinite: values[%d]", k), ErrNaNInf)
		}
	}

	return nil
}

// ValidateSameCols checks that two non-nil matrices have the same number of
// columns, i.e. their rows live in the same vector space.
// Returns ErrNilMatrix or ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameCols(a, b *Matrix) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameCols", ErrNilMatrix)
	}
	if a.cols != b.cols {
		return validatorErrorf(fmt.Sprintf("ValidateSameCols: %d != %d", a.cols, b.cols), ErrDimensionMismatch)
	}

	return nil
}
