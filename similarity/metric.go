// SPDX-License-Identifier: MIT
// Package similarity: metrics and their finalization.

package similarity

import (
	"math"

	"github.com/katalvlaran/sparsesim/csr"
)

// Metric scores a pair of sparse rows. Implementations must be safe for
// concurrent use and must not retain or modify the vectors.
//
// The engine calls RowAux once per row of each operand (in a parallel pass
// before any pair is scored) and hands the cached values back to Score.
type Metric interface {
	// Name identifies the metric in logs and metrics.
	Name() string

	// RowAux returns the per-row auxiliary value (e.g. the L2 norm).
	RowAux(v csr.Vector) float64

	// Score returns the similarity of a and b and whether the pair is
	// defined at all. Undefined pairs are never reported.
	Score(a, b csr.Vector, auxA, auxB float64) (float64, bool)
}

// InnerProductMetric is a Metric whose score is a function of the plain dot
// product of the two rows. Such metrics unlock the accumulator kernel, which
// only visits target rows sharing at least one column with the source row.
type InnerProductMetric interface {
	Metric

	// Finalize turns dot, the plain dot product of a and b, into a score.
	// The rows are passed along for metrics that must recompute the pair
	// when dot is not representable; both kernels call Finalize with the
	// same arguments.
	Finalize(a, b csr.Vector, dot, auxA, auxB float64) (float64, bool)
}

// Dot returns the dot product of two sparse vectors by merge-joining their
// sorted index lists.
// Complexity: O(len(a) + len(b)).
func Dot(a, b csr.Vector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(a.Indices) && j < len(b.Indices) {
		switch ci, cj := a.Indices[i], b.Indices[j]; {
		case ci == cj:
			sum += a.Values[i] * b.Values[j]
			i++
			j++
		case ci < cj:
			i++
		default:
			j++
		}
	}

	return sum
}

// minSafeNormProduct is the smallest |a|·|b| for which the plain dot product
// is trusted. Below it, underflowed terms could matter relative to the result.
const minSafeNormProduct = 0x1p-900

// Cosine is the cosine similarity dot(a,b) / (|a|·|b|), clamped to [-1, 1].
// Pairs involving a zero-norm row are undefined and skipped.
//
// When |a|·|b| underflows or overflows float64 the pair is rescored on
// rows scaled by powers of two, so extreme but finite magnitudes still score
// correctly (two identical rows of 1e200 score 1).
type Cosine struct{}

// Name implements Metric.
func (Cosine) Name() string { return "cosine" }

// RowAux returns the L2 norm of v.
func (Cosine) RowAux(v csr.Vector) float64 { return v.Norm() }

// Score implements Metric.
func (c Cosine) Score(a, b csr.Vector, normA, normB float64) (float64, bool) {
	if normA == 0 || normB == 0 {
		return 0, false
	}

	return c.Finalize(a, b, Dot(a, b), normA, normB)
}

// Finalize implements InnerProductMetric.
func (Cosine) Finalize(a, b csr.Vector, dot, normA, normB float64) (float64, bool) {
	if normA == 0 || normB == 0 {
		return 0, false
	}
	var s float64
	if p := normA * normB; p >= minSafeNormProduct && p <= math.MaxFloat64 {
		s = dot / p
	} else {
		s = scaledCosine(a, b)
	}
	// Rounding can push parallel vectors a hair past ±1.
	if s > 1 {
		s = 1
	} else if s < -1 {
		s = -1
	}

	return s, true
}

// DotProduct scores pairs by their raw dot product. On L2-normalized input
// (csr.L2Normalize) it equals Cosine. Pairs involving an empty or all-zero
// row are skipped, as for Cosine.
type DotProduct struct{}

// Name implements Metric.
func (DotProduct) Name() string { return "dot" }

// RowAux returns the L2 norm of v; it is only used to detect zero rows.
func (DotProduct) RowAux(v csr.Vector) float64 { return v.Norm() }

// Score implements Metric.
func (d DotProduct) Score(a, b csr.Vector, normA, normB float64) (float64, bool) {
	if normA == 0 || normB == 0 {
		return 0, false
	}

	return d.Finalize(a, b, Dot(a, b), normA, normB)
}

// Finalize implements InnerProductMetric. The raw dot product is the score,
// so an overflow to ±Inf is reported as such.
func (DotProduct) Finalize(_, _ csr.Vector, dot, normA, normB float64) (float64, bool) {
	if normA == 0 || normB == 0 {
		return 0, false
	}

	return dot, true
}

// scaledCosine computes the cosine of a and b after scaling each row by a
// power of two that brings its largest entry into [0.5, 1). Power-of-two
// scaling is exact, and the scaled norms lie in [0.5, sqrt(n)].
// Complexity: O(len(a) + len(b)).
func scaledCosine(a, b csr.Vector) float64 {
	ea, eb := maxExponent(a), maxExponent(b)
	var dot, sa, sb, x, y float64
	for _, v := range a.Values {
		x = math.Ldexp(v, -ea)
		sa += x * x
	}
	for _, v := range b.Values {
		y = math.Ldexp(v, -eb)
		sb += y * y
	}
	i, j := 0, 0
	for i < len(a.Indices) && j < len(b.Indices) {
		switch ci, cj := a.Indices[i], b.Indices[j]; {
		case ci == cj:
			dot += math.Ldexp(a.Values[i], -ea) * math.Ldexp(b.Values[j], -eb)
			i++
			j++
		case ci < cj:
			i++
		default:
			j++
		}
	}

	return dot / math.Sqrt(sa) / math.Sqrt(sb)
}

// maxExponent returns e such that max|v_k| = f·2^e with f in [0.5, 1).
func maxExponent(v csr.Vector) int {
	var m float64
	for _, x := range v.Values {
		m = max(m, math.Abs(x))
	}
	_, e := math.Frexp(m)

	return e
}

// MetricByName resolves "cosine" or "dot". It returns false for unknown names.
func MetricByName(name string) (Metric, bool) {
	switch name {
	case "cosine", "":
		return Cosine{}, true
	case "dot":
		return DotProduct{}, true
	default:
		return nil, false
	}
}
