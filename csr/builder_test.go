// SPDX-License-Identifier: MIT

package csr_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/sparsesim/csr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Valid(t *testing.T) {
	m := fixture2x3(t)
	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 6, m.NNZ())

	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)
}

func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name   string
		rows   int
		cols   int
		rowPtr []int
		colIdx []int
		values []float64
		want   error
	}{
		{"negative rows", -1, 3, []int{0}, nil, nil, csr.ErrInvalidShape},
		{"negative cols", 1, -3, []int{0, 0}, nil, nil, csr.ErrInvalidShape},
		{"rowPtr too short", 2, 3, []int{0, 3}, []int{0, 1, 2}, []float64{1, 2, 3}, csr.ErrInvalidShape},
		{"rowPtr too long", 1, 3, []int{0, 1, 1}, []int{0}, []float64{1}, csr.ErrInvalidShape},
		{"rowPtr[0] != 0", 1, 3, []int{1, 1}, []int{}, []float64{}, csr.ErrInvalidShape},
		{"rowPtr decreasing", 2, 3, []int{0, 2, 1}, []int{0}, []float64{1}, csr.ErrInvalidShape},
		{"colIdx length", 1, 3, []int{0, 2}, []int{0}, []float64{1, 2}, csr.ErrInvalidShape},
		{"values length", 1, 3, []int{0, 2}, []int{0, 1}, []float64{1}, csr.ErrInvalidShape},
		{"column too large", 1, 3, []int{0, 1}, []int{3}, []float64{1}, csr.ErrInvalidIndex},
		{"negative column", 1, 3, []int{0, 1}, []int{-1}, []float64{1}, csr.ErrInvalidIndex},
		{"unsorted row", 1, 3, []int{0, 2}, []int{2, 0}, []float64{1, 2}, csr.ErrInvalidIndex},
		{"duplicate column", 1, 3, []int{0, 2}, []int{1, 1}, []float64{1, 2}, csr.ErrInvalidIndex},
		{"NaN value", 1, 3, []int{0, 1}, []int{0}, []float64{math.NaN()}, csr.ErrNaNInf},
		{"Inf value", 1, 3, []int{0, 1}, []int{0}, []float64{math.Inf(-1)}, csr.ErrNaNInf},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := csr.Build(tc.rows, tc.cols, tc.rowPtr, tc.colIdx, tc.values)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, m, "no partial matrix on error")
		})
	}
}

// TestBuild_ShapeBeforeIndex checks the documented error priority.
func TestBuild_ShapeBeforeIndex(t *testing.T) {
	_, err := csr.Build(2, 3, []int{0, 1}, []int{9}, []float64{1})
	require.ErrorIs(t, err, csr.ErrInvalidShape)
	require.NotErrorIs(t, err, csr.ErrInvalidIndex)
}

func TestBuild_NoValidateNaNInf(t *testing.T) {
	m, err := csr.Build(1, 2, []int{0, 1}, []int{1}, []float64{math.Inf(1)}, csr.WithNoValidateNaNInf())
	require.NoError(t, err)
	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))
}

func TestBuild_DoesNotAliasInputs(t *testing.T) {
	rowPtr := []int{0, 2}
	colIdx := []int{0, 1}
	values := []float64{1, 2}
	m := mustBuild(t, 1, 2, rowPtr, colIdx, values)

	values[0] = 99
	colIdx[1] = 0
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
	assert.Equal(t, []int{0, 1}, m.ColIdx())
}

func TestBuild_ExplicitZerosKept(t *testing.T) {
	m := mustBuild(t, 1, 3, []int{0, 2}, []int{0, 2}, []float64{0, 1})
	assert.Equal(t, 2, m.NNZ())
}

func TestBuild_EmptyShapes(t *testing.T) {
	m := mustBuild(t, 0, 0, []int{0}, nil, nil)
	assert.Equal(t, 0, m.NNZ())

	m = mustBuild(t, 3, 0, []int{0, 0, 0, 0}, nil, nil)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 0, m.Cols())
}

func TestFromTriplets_SortsAndSums(t *testing.T) {
	m, err := csr.FromTriplets(2, 3,
		[]int{1, 0, 1, 0, 1},
		[]int{2, 1, 0, 1, 2},
		[]float64{1, 2, 3, 4, 5},
	)
	require.NoError(t, err)

	want := mustBuild(t, 2, 3, []int{0, 1, 3}, []int{1, 0, 2}, []float64{6, 3, 6})
	assert.True(t, want.Equal(m), "got %s", m)
}

func TestFromTriplets_DropZeros(t *testing.T) {
	ri := []int{0, 0, 1}
	ci := []int{0, 0, 1}
	v := []float64{2, -2, 1}

	kept, err := csr.FromTriplets(2, 2, ri, ci, v)
	require.NoError(t, err)
	assert.Equal(t, 2, kept.NNZ())

	dropped, err := csr.FromTriplets(2, 2, ri, ci, v, csr.WithDropZeros())
	require.NoError(t, err)
	assert.Equal(t, 1, dropped.NNZ())
	assert.Equal(t, []int{0, 0, 1}, dropped.RowPtr())
}

func TestFromTriplets_Errors(t *testing.T) {
	_, err := csr.FromTriplets(2, 2, []int{0}, []int{0, 1}, []float64{1})
	require.ErrorIs(t, err, csr.ErrInvalidShape)

	_, err = csr.FromTriplets(2, 2, []int{2}, []int{0}, []float64{1})
	require.ErrorIs(t, err, csr.ErrInvalidIndex)

	_, err = csr.FromTriplets(2, 2, []int{0}, []int{-1}, []float64{1})
	require.ErrorIs(t, err, csr.ErrInvalidIndex)

	_, err = csr.FromTriplets(2, 2, []int{0}, []int{0}, []float64{math.NaN()})
	require.ErrorIs(t, err, csr.ErrNaNInf)

	_, err = csr.FromTriplets(-1, 2, nil, nil, nil)
	require.ErrorIs(t, err, csr.ErrInvalidShape)
}

func TestFromRows(t *testing.T) {
	m, err := csr.FromRows(3, [][]float64{{1, 0, 3}, {0, 0, 0}})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 2}, m.RowPtr())
	assert.Equal(t, []int{0, 2}, m.ColIdx())

	_, err = csr.FromRows(3, [][]float64{{1, 2}})
	require.ErrorIs(t, err, csr.ErrInvalidShape)
}

func TestNewEmptyAndIdentity(t *testing.T) {
	e, err := csr.NewEmpty(2, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, e.NNZ())

	_, err = csr.NewEmpty(-1, 4)
	require.ErrorIs(t, err, csr.ErrInvalidShape)

	id, err := csr.NewIdentity(3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		v, err := id.At(i, i)
		require.NoError(t, err)
		assert.Equal(t, 1.0, v)
	}
}
