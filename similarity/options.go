// SPDX-License-Identifier: MIT
// Package similarity: functional options for Compute.

package similarity

import (
	"runtime"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	otelmetric "go.opentelemetry.io/otel/metric"
)

// Kernel selects how pair scores are computed.
type Kernel int

const (
	// KernelAuto uses the accumulator kernel when it cannot change the
	// output (inner-product metric and minScore > 0) and merge-join otherwise.
	KernelAuto Kernel = iota

	// KernelMergeJoin scores every candidate pair by merge-joining the two
	// rows' sorted index lists.
	KernelMergeJoin

	// KernelAccumulator walks a column index of the target matrix and
	// accumulates dot products in a dense scratch buffer, visiting only pairs
	// that share a column. Requests that cannot use it fall back to merge-join.
	KernelAccumulator
)

// String returns the kernel name used in logs and metric attributes.
func (k Kernel) String() string {
	switch k {
	case KernelAuto:
		return "auto"
	case KernelMergeJoin:
		return "merge-join"
	case KernelAccumulator:
		return "accumulator"
	default:
		return "unknown"
	}
}

// ParseKernel resolves "auto", "merge-join" or "accumulator".
func ParseKernel(s string) (Kernel, bool) {
	switch s {
	case "auto", "":
		return KernelAuto, true
	case "merge-join", "mergejoin":
		return KernelMergeJoin, true
	case "accumulator":
		return KernelAccumulator, true
	default:
		return KernelAuto, false
	}
}

// ---------- Defaults ----------

const (
	// DefaultChunkSize 0 lets the engine size chunks from rows and workers.
	DefaultChunkSize = 0

	// maxAutoChunk bounds automatically sized chunks so late rows of a
	// self comparison (which have fewer targets) still spread across workers.
	maxAutoChunk = 64

	// chunksPerWorker is the target number of chunks per worker in auto mode.
	chunksPerWorker = 8
)

// ---------- Internal panic messages ----------

const (
	panicWorkersInvalid   = "similarity: WithWorkers: n must be >= 1"
	panicChunkSizeInvalid = "similarity: WithChunkSize: n must be >= 0"
	panicMetricNil        = "similarity: WithMetric: metric must be non-nil"
	panicKernelInvalid    = "similarity: WithKernel: unknown kernel"
	panicProviderNil      = "similarity: WithMeterProvider: provider must be non-nil"
)

// Option configures an engine call. Constructors panic on nonsensical values.
type Option func(*Options)

// Options is the resolved configuration of one engine call.
type Options struct {
	workers       int
	chunkSize     int
	metric        Metric
	kernel        Kernel
	logger        zerolog.Logger
	meterProvider otelmetric.MeterProvider
}

// WithWorkers sets the number of worker goroutines (default GOMAXPROCS).
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithChunkSize sets how many consecutive source rows a worker claims at a
// time. 0 restores automatic sizing.
func WithChunkSize(n int) Option {
	if n < 0 {
		panic(panicChunkSizeInvalid)
	}

	return func(o *Options) { o.chunkSize = n }
}

// WithMetric replaces the scoring metric (default Cosine). Compute honours
// it; CosineSimilarity always uses Cosine.
func WithMetric(m Metric) Option {
	if m == nil {
		panic(panicMetricNil)
	}

	return func(o *Options) { o.metric = m }
}

// WithKernel forces a kernel choice. See Kernel for fallback rules.
func WithKernel(k Kernel) Option {
	if k < KernelAuto || k > KernelAccumulator {
		panic(panicKernelInvalid)
	}

	return func(o *Options) { o.kernel = k }
}

// WithLogger sets the logger (default zerolog.Nop()).
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithMeterProvider sets the OpenTelemetry meter provider used for the
// engine's instruments (default otel.GetMeterProvider()).
func WithMeterProvider(p otelmetric.MeterProvider) Option {
	if p == nil {
		panic(panicProviderNil)
	}

	return func(o *Options) { o.meterProvider = p }
}

// gatherOptions applies user setters on top of the defaults. Last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		workers:   runtime.GOMAXPROCS(0),
		chunkSize: DefaultChunkSize,
		metric:    Cosine{},
		kernel:    KernelAuto,
		logger:    zerolog.Nop(),
	}
	for _, set := range user {
		set(&o)
	}
	if o.meterProvider == nil {
		o.meterProvider = otel.GetMeterProvider()
	}

	return o
}

// chunkFor returns the chunk size for rows source rows.
func (o Options) chunkFor(rows int) int {
	if o.chunkSize > 0 {
		return o.chunkSize
	}
	c := rows / (o.workers * chunksPerWorker)

	return max(1, min(c, maxAutoChunk))
}
