// SPDX-License-Identifier: MIT

package csr_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparsesim/csr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTranspose_InPlace verifies the receiver itself becomes its transpose
// and is returned for chaining.
func TestTranspose_InPlace(t *testing.T) {
	m := fixture2x3(t)
	got := csr.Transpose(m)
	require.Same(t, m, got, "Transpose must return its receiver")

	r, c := m.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, []int{0, 2, 4, 6}, m.RowPtr())
	assert.Equal(t, []int{0, 1, 0, 1, 0, 1}, m.ColIdx())
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, m.Values())
}

func TestTranspose_SortedRows(t *testing.T) {
	// Column 2 is touched by rows 0,1,3 in that order; the result row must
	// list them ascending with no extra sort pass.
	m := mustBuild(t, 4, 3,
		[]int{0, 2, 3, 3, 5},
		[]int{0, 2, 2, 1, 2},
		[]float64{1, 2, 3, 4, 5},
	)
	m.Transpose()
	assert.Equal(t, []int{0, 1, 2, 5}, m.RowPtr())
	assert.Equal(t, []int{0, 3, 0, 1, 3}, m.ColIdx())
	assert.Equal(t, []float64{1, 4, 2, 3, 5}, m.Values())

	// The transposed arrays still satisfy every Build invariant.
	_, err := csr.Build(m.Rows(), m.Cols(), m.RowPtr(), m.ColIdx(), m.Values())
	require.NoError(t, err)
}

// TestTranspose_Involution checks Transpose(Transpose(M)) == M on random input.
func TestTranspose_Involution(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		rows, cols := rng.Intn(20), rng.Intn(20)
		m := randomMatrix(t, rng, rows, cols, 0.3)
		orig := m.Clone()

		csr.Transpose(csr.Transpose(m))
		require.True(t, orig.Equal(m), "trial %d: %dx%d", trial, rows, cols)
	}
}

func TestTranspose_AtMatches(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	m := randomMatrix(t, rng, 9, 13, 0.4)
	mt := m.T()

	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			a, err := m.At(i, j)
			require.NoError(t, err)
			b, err := mt.At(j, i)
			require.NoError(t, err)
			require.Equal(t, a, b)
		}
	}
}

func TestT_DoesNotMutate(t *testing.T) {
	m := fixture2x3(t)
	orig := m.Clone()
	mt := m.T()

	assert.True(t, orig.Equal(m))
	assert.Equal(t, 3, mt.Rows())
	assert.True(t, m.Equal(mt.T()))
}

func TestTranspose_EdgeShapes(t *testing.T) {
	assert.Nil(t, csr.Transpose(nil))

	e, err := csr.NewEmpty(0, 5)
	require.NoError(t, err)
	csr.Transpose(e)
	assert.Equal(t, 5, e.Rows())
	assert.Equal(t, 0, e.Cols())
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0}, e.RowPtr())
}
