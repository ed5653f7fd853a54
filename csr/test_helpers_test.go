// SPDX-License-Identifier: MIT
// Package csr_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures and a seeded random generator.
//   • Keep all data finite and well-formed so numeric policy never interferes.

package csr_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparsesim/csr"
	"github.com/stretchr/testify/require"
)

// mustBuild builds a matrix or aborts the test.
func mustBuild(t testing.TB, rows, cols int, rowPtr, colIdx []int, values []float64) *csr.Matrix {
	t.Helper()
	m, err := csr.Build(rows, cols, rowPtr, colIdx, values)
	require.NoError(t, err)

	return m
}

// fixture2x3 is the 2×3 matrix [[1,2,3],[4,5,6]] used throughout the tests.
func fixture2x3(t testing.TB) *csr.Matrix {
	return mustBuild(t, 2, 3, []int{0, 3, 6}, []int{0, 1, 2, 0, 1, 2}, []float64{1, 2, 3, 4, 5, 6})
}

// randomMatrix returns a rows×cols matrix where each cell is stored with
// probability density. Values are drawn from [-5, 5) and never zero.
func randomMatrix(t testing.TB, rng *rand.Rand, rows, cols int, density float64) *csr.Matrix {
	t.Helper()
	rowPtr := make([]int, rows+1)
	var colIdx []int
	var values []float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if rng.Float64() >= density {
				continue
			}
			v := rng.Float64()*10 - 5
			if v == 0 {
				v = 1
			}
			colIdx = append(colIdx, j)
			values = append(values, v)
		}
		rowPtr[i+1] = len(colIdx)
	}

	return mustBuild(t, rows, cols, rowPtr, colIdx, values)
}
