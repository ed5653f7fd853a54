// SPDX-License-Identifier: MIT
// Package similarity: merge-join and accumulator row kernels.

package similarity

import (
	"slices"

	"github.com/katalvlaran/sparsesim/csr"
)

// job is the immutable state shared by all workers of one call.
type job struct {
	a, target *csr.Matrix // target == a in self mode
	targetT   *csr.Matrix // column index of target; accumulator kernel only
	self      bool
	auxA      []float64
	auxT      []float64
	metric    Metric
	inner     InnerProductMetric // non-nil when the accumulator kernel runs
	minScore  float64
	k         int
}

// scratch is per-worker mutable state, reused across rows.
type scratch struct {
	col     collector
	sums    []float64 // accumulator: partial dot product per target row
	seen    []bool    // accumulator: target row already in touched
	touched []int     // accumulator: target rows with a partial sum
}

func (j *job) newScratch() *scratch {
	s := &scratch{}
	if j.inner != nil {
		n := j.target.Rows()
		s.sums = make([]float64, n)
		s.seen = make([]bool, n)
	}

	return s
}

// row computes the sorted matches of source row i.
func (j *job) row(i int, s *scratch) []Match {
	s.col.reset(j.k)
	if j.inner != nil {
		j.accumulateRow(i, s)
	} else {
		j.mergeJoinRow(i, s)
	}

	return s.col.drain()
}

// keep offers a scored pair to the collector if it clears the threshold.
// NaN scores never pass the comparison.
func (j *job) keep(s *scratch, idx int, score float64) {
	if score >= j.minScore {
		s.col.push(Match{Idx: idx, S: score})
	}
}

// mergeJoinRow scores row i against every candidate target row.
// Self mode only visits targets after i (strict upper triangle).
// Complexity: O(Σ_t (nnz(a_i) + nnz(t))).
func (j *job) mergeJoinRow(i int, s *scratch) {
	va := j.a.RowView(i)
	auxA := j.auxA[i]
	start := 0
	if j.self {
		start = i + 1
	}
	for t := start; t < j.target.Rows(); t++ {
		score, ok := j.metric.Score(va, j.target.RowView(t), auxA, j.auxT[t])
		if ok {
			j.keep(s, t, score)
		}
	}
}

// accumulateRow computes the dot products of row i with every target row
// sharing at least one column, using the column index targetT:
//
//	for each stored a[i,c]: for each stored target[t,c]: sums[t] += a[i,c]*target[t,c]
//
// Columns of row i are visited in ascending order, so each sums[t] adds the
// same products in the same order as Dot and yields bitwise identical values.
// Target rows sharing no column have dot == 0 and are never visited; callers
// only select this kernel when minScore > 0 so those pairs cannot qualify.
// Complexity: O(Σ_{c in row i} nnz(column c) + touched).
func (j *job) accumulateRow(i int, s *scratch) {
	va := j.a.RowView(i)
	s.touched = s.touched[:0]

	var p, q, t, lo int
	var v float64
	for p = range va.Indices {
		v = va.Values[p]
		col := j.targetT.RowView(va.Indices[p])
		lo = 0
		if j.self {
			// Column lists are sorted: skip every t <= i in one search.
			lo, _ = slices.BinarySearch(col.Indices, i+1)
		}
		for q = lo; q < len(col.Indices); q++ {
			t = col.Indices[q]
			if !s.seen[t] {
				s.seen[t] = true
				s.touched = append(s.touched, t)
			}
			s.sums[t] += v * col.Values[q]
		}
	}

	auxA := j.auxA[i]
	for _, t = range s.touched {
		score, ok := j.inner.Finalize(va, j.target.RowView(t), s.sums[t], auxA, j.auxT[t])
		s.sums[t] = 0
		s.seen[t] = false
		if ok {
			j.keep(s, t, score)
		}
	}
}
