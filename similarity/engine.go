// SPDX-License-Identifier: MIT
// Package similarity: the Compute entry points and the worker pool.

package similarity

import (
	"context"
	"math"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sparsesim/csr"
)

// CosineSimilarity compares the rows of a with the rows of b (cross mode) or,
// when b is nil, the rows of a with each other (self mode, pairs i < j only).
//
// A match is kept iff its score is >= minScore. maxResultsPerRow == 0 keeps
// every match; k > 0 keeps the best k per source row.
//
// Errors:
//   - csr.ErrNilMatrix when a is nil.
//   - ErrDimensionMismatch when b != nil and a.Cols() != b.Cols().
//   - ErrInvalidArgument for a NaN minScore or a negative maxResultsPerRow.
//   - ErrCancelled (also matching the context error) when ctx is cancelled
//     before all rows completed; the returned ResultSet then holds every row
//     that did complete.
//
// Any metric set through opts is ignored: the score is always cosine.
func CosineSimilarity(ctx context.Context, a, b *csr.Matrix, minScore float64, maxResultsPerRow int, opts ...Option) (ResultSet, error) {
	opts = append(opts[:len(opts):len(opts)], WithMetric(Cosine{}))

	return Compute(ctx, a, b, minScore, maxResultsPerRow, opts...)
}

// Compute is CosineSimilarity with a pluggable Metric (WithMetric, default
// Cosine). All mode, filtering, ordering and cancellation rules are shared.
func Compute(ctx context.Context, a, b *csr.Matrix, minScore float64, maxResultsPerRow int, opts ...Option) (ResultSet, error) {
	o := gatherOptions(opts...)
	if ctx == nil {
		ctx = context.Background()
	}

	// Stage 1 (Validate): nil → shape → arguments.
	if err := csr.ValidateNotNil(a); err != nil {
		return nil, simErrorf(opCompute, err)
	}
	self := b == nil
	target := b
	if self {
		target = a
	} else if err := csr.ValidateSameCols(a, b); err != nil {
		return nil, simErrorf(opCompute, err)
	}
	if math.IsNaN(minScore) {
		return nil, simErrorf(opCompute, ErrInvalidArgument)
	}
	if maxResultsPerRow < 0 {
		return nil, simErrorf(opCompute, ErrInvalidArgument)
	}

	e := &engine{opts: o, log: o.logger.With().Str("component", "similarity").Logger()}

	return e.run(ctx, &job{
		a:        a,
		target:   target,
		self:     self,
		metric:   o.metric,
		minScore: minScore,
		k:        maxResultsPerRow,
	})
}

// engine executes one job with a fixed worker pool.
type engine struct {
	opts Options
	log  zerolog.Logger
}

// run prepares the job, fans rows out to the workers and assembles the result.
func (e *engine) run(ctx context.Context, j *job) (ResultSet, error) {
	started := time.Now()
	rows := j.a.Rows()
	kernel := e.resolveKernel(j)
	inst := newInstruments(e.opts.meterProvider)

	e.log.Debug().
		Int("rows", rows).
		Int("targets", j.target.Rows()).
		Bool("self", j.self).
		Str("metric", j.metric.Name()).
		Str("kernel", kernel.String()).
		Float64("min_score", j.minScore).
		Int("max_results", j.k).
		Msg("similarity started")

	if err := ctx.Err(); err != nil {
		inst.record(ctx, kernel, j.self, true, 0, 0, time.Since(started))
		e.log.Warn().Err(err).Msg("similarity cancelled before start")
		return ResultSet{}, cancelledError(context.Cause(ctx))
	}

	// Stage 2 (Prepare): per-row auxiliary values, column index if needed.
	j.auxA = e.rowAux(j.a, j.metric)
	if j.self {
		j.auxT = j.auxA
	} else {
		j.auxT = e.rowAux(j.target, j.metric)
	}
	if kernel == KernelAccumulator {
		j.inner = j.metric.(InnerProductMetric)
		j.targetT = j.target.T()
	}

	// Stage 3 (Execute): one slot per source row, written by exactly one worker.
	slots := make([][]Match, rows)
	done := make([]bool, rows)
	chunk := e.opts.chunkFor(rows)
	workers := min(e.opts.workers, max(1, (rows+chunk-1)/chunk))

	var next atomic.Int64
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			s := j.newScratch()
			for {
				lo := int(next.Add(int64(chunk))) - chunk
				if lo >= rows {
					return nil
				}
				hi := min(lo+chunk, rows)
				for i := lo; i < hi; i++ {
					if ctx.Err() != nil {
						return nil
					}
					slots[i] = j.row(i, s)
					done[i] = true
				}
			}
		})
	}
	_ = g.Wait() // workers never return errors; cancellation is read from done

	// Stage 4 (Assemble): source-row order, empty rows dropped.
	rs, completed := assemble(slots, done)
	elapsed := time.Since(started)
	cancelled := completed < rows
	inst.record(ctx, kernel, j.self, cancelled, completed, rs.Pairs(), elapsed)

	if cancelled {
		e.log.Warn().
			Int("completed", completed).
			Int("rows", rows).
			Dur("elapsed", elapsed).
			Msg("similarity cancelled")
		return rs, cancelledError(context.Cause(ctx))
	}

	e.log.Debug().
		Int("rows", rows).
		Int("pairs", rs.Pairs()).
		Int("workers", workers).
		Int("chunk", chunk).
		Dur("elapsed", elapsed).
		Msg("similarity finished")

	return rs, nil
}

// resolveKernel picks the kernel for j. The accumulator only runs when it
// cannot change the output: an inner-product metric and minScore > 0, since
// rows sharing no column score exactly 0 and are never visited by it.
func (e *engine) resolveKernel(j *job) Kernel {
	_, inner := j.metric.(InnerProductMetric)
	usable := inner && j.minScore > 0

	switch e.opts.kernel {
	case KernelMergeJoin:
		return KernelMergeJoin
	case KernelAccumulator:
		if !usable {
			e.log.Debug().Msg("accumulator kernel not applicable, using merge-join")
			return KernelMergeJoin
		}
		return KernelAccumulator
	default:
		if usable {
			return KernelAccumulator
		}
		return KernelMergeJoin
	}
}

// rowAux computes metric.RowAux for every row of m in parallel.
// Each worker owns a disjoint range of the output slice.
func (e *engine) rowAux(m *csr.Matrix, metric Metric) []float64 {
	n := m.Rows()
	aux := make([]float64, n)
	if n == 0 {
		return aux
	}
	workers := min(e.opts.workers, n)
	per := (n + workers - 1) / workers

	var g errgroup.Group
	for lo := 0; lo < n; lo += per {
		lo, hi := lo, min(lo+per, n)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				aux[i] = metric.RowAux(m.RowView(i))
			}
			return nil
		})
	}
	_ = g.Wait()

	return aux
}

// assemble collects completed, non-empty rows in source-row order and
// reports how many rows completed.
func assemble(slots [][]Match, done []bool) (ResultSet, int) {
	rs := ResultSet{}
	completed := 0
	for i, ms := range slots {
		if !done[i] {
			continue
		}
		completed++
		if len(ms) == 0 {
			continue
		}
		rs = append(rs, RowResult{Idx: i, Values: ms})
	}

	return rs, completed
}
