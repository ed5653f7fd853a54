// SPDX-License-Identifier: MIT
// Package similarity: sentinel errors.

package similarity

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sparsesim/csr"
)

var (
	// ErrCancelled is returned, together with the partial Result Set, when
	// the context is cancelled before every source row was computed.
	ErrCancelled = errors.New("similarity: cancelled")

	// ErrInvalidArgument reports a NaN minScore or a negative maxResultsPerRow.
	ErrInvalidArgument = errors.New("similarity: invalid argument")

	// ErrDimensionMismatch is returned when a.Cols() != b.Cols() in cross mode.
	// It aliases csr.ErrDimensionMismatch so either sentinel matches.
	ErrDimensionMismatch = csr.ErrDimensionMismatch
)

const (
	opCompute = "Compute"
)

// simErrorf wraps err with an operation tag, preserving the sentinel via %w.
func simErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// cancelledError joins ErrCancelled with the context's cause so callers can
// match either one.
func cancelledError(cause error) error {
	return fmt.Errorf("%s: %w: %w", opCompute, ErrCancelled, cause)
}
