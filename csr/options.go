// SPDX-License-Identifier: MIT

// Package csr: functional configuration for the constructors.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - gatherOptions helper (internal) that applies defaults.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
package csr

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion.
	DefaultValidateNaNInf = true

	// DefaultDropZeros removes explicit zeros produced by FromTriplets
	// (after duplicate summation). Build never drops entries.
	DefaultDropZeros = false
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective constructor configuration.
// Fields are unexported; public constructors accept ...Option.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
	dropZeros      bool // DefaultDropZeros
}

// WithValidateNaNInf enables strict finite-value validation (the default).
// When enabled, Build and FromTriplets reject NaN and ±Inf with ErrNaNInf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation.
//
// Non-finite values then propagate into norms and scores; the similarity
// engine drops NaN scores because NaN >= minScore is always false.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithDropZeros makes FromTriplets remove entries whose summed value is
// exactly zero. It has no effect on Build, which keeps caller data verbatim.
func WithDropZeros() Option {
	return func(o *Options) { o.dropZeros = true }
}

// gatherOptions applies user setters on top of the documented defaults.
// Last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		dropZeros:      DefaultDropZeros,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
