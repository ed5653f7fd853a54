// SPDX-License-Identifier: MIT
// Package csr: sentinel error set.
// All constructors and kernels return these sentinels (possibly wrapped with
// an operation tag) and tests check them via errors.Is. No exported function
// panics on user-triggered error conditions; panics are reserved for
// nonsensical option values (programmer error).

package csr

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "csr: ..." for easy grepping across logs.
// Call sites wrap with csrErrorf(tag, err); callers match with errors.Is.
//
// ERROR PRIORITY (enforced in Build and covered by tests):
// shape -> index -> NaN/Inf.

var (
	// ErrInvalidShape is returned when dimensions are negative or the
	// rowPtr/colIdx/values lengths do not describe a consistent matrix.
	ErrInvalidShape = errors.New("csr: invalid shape")

	// ErrInvalidIndex indicates a column index outside [0, cols) or column
	// indices that are not strictly increasing within a row.
	ErrInvalidIndex = errors.New("csr: invalid column index")

	// ErrOutOfRange indicates that a row or column accessor index is outside
	// the matrix bounds.
	ErrOutOfRange = errors.New("csr: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. comparing rows of matrices with different column counts.
	ErrDimensionMismatch = errors.New("csr: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Matrix was passed where a matrix is required.
	ErrNilMatrix = errors.New("csr: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value under the finite-value policy.
	ErrNaNInf = errors.New("csr: NaN or Inf encountered")
)

// Operation tags for uniform error wrapping.
const (
	opBuild        = "Build"
	opFromTriplets = "FromTriplets"
	opAt           = "At"
)

// csrErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func csrErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// rowErrorf wraps err with an operation tag and the offending row.
func rowErrorf(tag string, row int, err error) error {
	return fmt.Errorf("%s: row %d: %w", tag, row, err)
}
