// SPDX-License-Identifier: MIT

package similarity

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparsesim/csr"
	"github.com/stretchr/testify/require"
)

func randomCSR(t *testing.T, rng *rand.Rand, rows, cols int, density float64) *csr.Matrix {
	t.Helper()
	rowPtr := make([]int, rows+1)
	var colIdx []int
	var values []float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if rng.Float64() < density {
				colIdx = append(colIdx, j)
				// Small integers make many exact ties.
				values = append(values, float64(rng.Intn(7)-2))
			}
		}
		rowPtr[i+1] = len(colIdx)
	}
	m, err := csr.Build(rows, cols, rowPtr, colIdx, values)
	require.NoError(t, err)

	return m
}

// prepared returns a job ready to run rows directly, bypassing the pool.
func prepared(a, b *csr.Matrix, metric Metric, minScore float64, k int, accumulate bool) *job {
	j := &job{a: a, target: b, self: b == nil, metric: metric, minScore: minScore, k: k}
	if j.self {
		j.target = a
	}
	j.auxA = make([]float64, a.Rows())
	for i := range j.auxA {
		j.auxA[i] = metric.RowAux(a.RowView(i))
	}
	j.auxT = make([]float64, j.target.Rows())
	for i := range j.auxT {
		j.auxT[i] = metric.RowAux(j.target.RowView(i))
	}
	if accumulate {
		j.inner = metric.(InnerProductMetric)
		j.targetT = j.target.T()
	}

	return j
}

// TestKernels_Agree checks that both kernels produce bitwise identical rows
// whenever minScore > 0, in self and cross mode, for both inner metrics.
func TestKernels_Agree(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	metrics := []Metric{Cosine{}, DotProduct{}}
	for trial := 0; trial < 40; trial++ {
		cols := 1 + rng.Intn(12)
		a := randomCSR(t, rng, rng.Intn(15), cols, 0.35)
		var b *csr.Matrix
		if trial%2 == 1 {
			b = randomCSR(t, rng, rng.Intn(15), cols, 0.35)
		}
		for _, m := range metrics {
			minScore := 0.05 + rng.Float64()*0.5
			k := rng.Intn(4)
			mj := prepared(a, b, m, minScore, k, false)
			acc := prepared(a, b, m, minScore, k, true)
			smj, sacc := mj.newScratch(), acc.newScratch()
			for i := 0; i < a.Rows(); i++ {
				require.Equal(t, mj.row(i, smj), acc.row(i, sacc),
					"trial %d metric %s row %d", trial, m.Name(), i)
			}
		}
	}
}

// TestAccumulator_ScratchCleared ensures no partial sum leaks into the next row.
func TestAccumulator_ScratchCleared(t *testing.T) {
	a, err := csr.FromRows(2, [][]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)
	b, err := csr.FromRows(2, [][]float64{{1, 1}, {1, 0}})
	require.NoError(t, err)

	j := prepared(a, b, DotProduct{}, 0.5, 0, true)
	s := j.newScratch()
	require.Equal(t, []Match{{0, 1}, {1, 1}}, j.row(0, s))
	require.Equal(t, []Match{{0, 1}}, j.row(1, s))
	for _, v := range s.sums {
		require.Zero(t, v)
	}
	for _, v := range s.seen {
		require.False(t, v)
	}
}
