// SPDX-License-Identifier: MIT

package csr_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/sparsesim/csr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowNorms(t *testing.T) {
	m := mustBuild(t, 3, 2, []int{0, 2, 2, 3}, []int{0, 1, 1}, []float64{3, 4, -2})
	assert.Equal(t, []float64{5, 0, 2}, csr.RowNorms(m))
}

// TestL2Normalize_Fixture reproduces the 3×3 fixture of the reference
// implementation rounded to three decimals.
func TestL2Normalize_Fixture(t *testing.T) {
	m, err := csr.FromRows(3, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	require.NoError(t, err)
	want := [][]float64{
		{0.267, 0.535, 0.802},
		{0.456, 0.570, 0.684},
		{0.503, 0.574, 0.646},
	}

	got := csr.L2Normalize(m)
	require.Same(t, m, got)
	for i := range want {
		for j := range want[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			assert.Equal(t, want[i][j], math.Round(v*1000)/1000, "(%d,%d)", i, j)
		}
	}
}

func TestNormalizeRows_KeepsInput(t *testing.T) {
	m := mustBuild(t, 2, 2, []int{0, 2, 2}, []int{0, 1}, []float64{3, 4})
	orig := m.Clone()

	y, norms, err := csr.NormalizeRows(m)
	require.NoError(t, err)
	assert.True(t, orig.Equal(m), "input must stay intact")
	assert.Equal(t, []float64{5, 0}, norms)
	assert.InDeltaSlice(t, []float64{0.6, 0.8}, y.Values(), 1e-12)

	_, _, err = csr.NormalizeRows(nil)
	require.ErrorIs(t, err, csr.ErrNilMatrix)
}

func TestL2Normalize_ZeroRowUnchanged(t *testing.T) {
	m := mustBuild(t, 2, 2, []int{0, 1, 2}, []int{0, 1}, []float64{0, 2})
	csr.L2Normalize(m)
	assert.Equal(t, []float64{0, 1}, m.Values())
	assert.Nil(t, csr.L2Normalize(nil))
}

func TestVectorNorm_ExtremeMagnitudes(t *testing.T) {
	for _, s := range []float64{1e-300, 1e-200, 1e-160, 1, 1e160, 1e200, 1e300} {
		v := csr.Vector{Indices: []int{0, 1}, Values: []float64{s, -s}}
		n := v.Norm()
		require.False(t, n == 0 || math.IsInf(n, 0), "scale %g", s)
		assert.InEpsilon(t, math.Sqrt2, n/s, 1e-15, "scale %g", s)
	}
}

func TestVectorNorm_Special(t *testing.T) {
	assert.Zero(t, csr.Vector{}.Norm())
	assert.Zero(t, csr.Vector{Indices: []int{0}, Values: []float64{0}}.Norm())
	assert.Equal(t, 5.0, csr.Vector{Indices: []int{0, 1}, Values: []float64{3, 4}}.Norm())
	assert.True(t, math.IsNaN(csr.Vector{Indices: []int{0, 1}, Values: []float64{math.NaN(), 1}}.Norm()))
	assert.True(t, math.IsInf(csr.Vector{Indices: []int{0, 1}, Values: []float64{math.Inf(-1), math.Inf(1)}}.Norm(), 1))
}

func TestL2Normalize_ExtremeMagnitudes(t *testing.T) {
	m := mustBuild(t, 2, 2, []int{0, 2, 4}, []int{0, 1, 0, 1}, []float64{3e-200, 4e-200, 3e200, 4e200})
	csr.L2Normalize(m)
	assert.InDeltaSlice(t, []float64{0.6, 0.8, 0.6, 0.8}, m.Values(), 1e-15)
}
