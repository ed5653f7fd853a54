// SPDX-License-Identifier: MIT
// Package similarity: OpenTelemetry instruments.

package similarity

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"
)

// instrumentationName is the meter name reported to OpenTelemetry.
const instrumentationName = "github.com/katalvlaran/sparsesim/similarity"

// instruments groups the engine's OpenTelemetry instruments.
// Creation errors leave the corresponding field nil; recording then skips it.
type instruments struct {
	rows     otelmetric.Int64Counter
	matches  otelmetric.Int64Counter
	duration otelmetric.Float64Histogram
}

func newInstruments(p otelmetric.MeterProvider) instruments {
	meter := p.Meter(instrumentationName)
	var in instruments
	var err error

	in.rows, err = meter.Int64Counter("sparsesim.rows.computed",
		otelmetric.WithDescription("Source rows whose similarity list was computed."),
		otelmetric.WithUnit("{row}"))
	if err != nil {
		in.rows = nil
	}
	in.matches, err = meter.Int64Counter("sparsesim.matches.emitted",
		otelmetric.WithDescription("Matches returned after threshold and top-k filtering."),
		otelmetric.WithUnit("{match}"))
	if err != nil {
		in.matches = nil
	}
	in.duration, err = meter.Float64Histogram("sparsesim.compute.duration",
		otelmetric.WithDescription("Wall time of one similarity computation."),
		otelmetric.WithUnit("s"))
	if err != nil {
		in.duration = nil
	}

	return in
}

// record reports one finished call.
func (in instruments) record(ctx context.Context, kernel Kernel, self, cancelled bool, rows, matches int, elapsed time.Duration) {
	mode := "cross"
	if self {
		mode = "self"
	}
	attrs := otelmetric.WithAttributes(
		attribute.String("kernel", kernel.String()),
		attribute.String("mode", mode),
		attribute.Bool("cancelled", cancelled),
	)
	// Recording must not be suppressed by the caller's cancellation.
	ctx = context.WithoutCancel(ctx)
	if in.rows != nil {
		in.rows.Add(ctx, int64(rows), attrs)
	}
	if in.matches != nil {
		in.matches.Add(ctx, int64(matches), attrs)
	}
	if in.duration != nil {
		in.duration.Record(ctx, elapsed.Seconds(), attrs)
	}
}
