// SPDX-License-Identifier: MIT
// Package csr: row statistics.
//
// Policy:
//   - Degenerate rows (norm == 0) are left unchanged by normalization.
//   - L2 norm is sqrt(Σ_k v_k²) over stored entries only, accumulated with a
//     running scale so that finite non-zero rows never underflow to 0 or
//     overflow to +Inf.

package csr

import "math"

// Norm returns the L2 norm of v.
//
// Implementation (dnrm2-style):
//   - scale tracks max|v_k| seen so far, ssq holds Σ (v_k/scale)².
//   - The result is scale·sqrt(ssq), so intermediate values stay near 1.
//   - A NaN entry yields NaN, an infinite entry +Inf.
//
// Complexity: O(len(v)).
func (v Vector) Norm() float64 {
	var scale, ssq float64 = 0, 1
	var ax, r float64
	for _, x := range v.Values {
		if x == 0 {
			continue
		}
		ax = math.Abs(x)
		if math.IsNaN(ax) || math.IsInf(ax, 1) {
			// Non-finite entries (only under WithNoValidateNaNInf) win outright.
			return ax
		}
		if scale < ax {
			r = scale / ax
			ssq = 1 + ssq*r*r
			scale = ax
		} else {
			r = ax / scale
			ssq += r * r
		}
	}
	if scale == 0 {
		return 0
	}

	return scale * math.Sqrt(ssq)
}

// RowNorm returns the L2 norm of row i.
// Panics if i is out of range, like RowView.
// Complexity: O(rowNnz).
func (m *Matrix) RowNorm(i int) float64 {
	return m.RowView(i).Norm()
}

// RowNorms returns the L2 norm of every row.
// Complexity: O(rows + nnz).
func RowNorms(m *Matrix) []float64 {
	norms := make([]float64, m.rows)
	for i := range norms {
		norms[i] = m.RowNorm(i)
	}

	return norms
}

// L2Normalize scales every row of m in place so that its L2 norm is 1 and
// returns m. Zero-norm rows stay as they are.
//
// L2Normalize mutates the receiver; prefer NormalizeRows when the input must
// stay intact.
// Complexity: O(rows + nnz).
func L2Normalize(m *Matrix) *Matrix {
	if m == nil {
		return nil
	}
	var k int
	var n float64
	for i := 0; i < m.rows; i++ {
		n = m.RowNorm(i)
		if n == 0 {
			continue
		}
		for k = m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			m.values[k] /= n
		}
	}

	return m
}

// NormalizeRows returns an L2-normalized copy of m and the original row norms.
// Complexity: O(rows + nnz) time and space.
func NormalizeRows(m *Matrix) (*Matrix, []float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, csrErrorf("NormalizeRows", err)
	}
	norms := RowNorms(m)

	return L2Normalize(m.Clone()), norms, nil
}
