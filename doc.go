// SPDX-License-Identifier: MIT

// Package sparsesim is an in-memory toolkit for sparse row-major (CSR)
// matrices and for finding, per row, the most similar rows of another
// matrix or of the same matrix.
//
// 🚀 What is sparsesim?
//
//	A small, allocation-conscious library plus a CLI that bring together:
//		• CSR storage: validated construction from raw arrays or triplets
//		• In-place transpose via counting sort (sorted output, O(rows+cols+nnz))
//		• Row statistics: L2 norms and row normalisation
//		• Similarity: parallel, cancellable, thresholded top-k cosine
//
// ✨ Guarantees
//
//   - Every Matrix satisfies the CSR invariants after construction.
//   - Similarity output is deterministic regardless of the worker count.
//   - A cancelled computation returns every row that completed.
//
// Packages:
//
//	csr/              Matrix, Build, FromTriplets, Transpose, norms
//	similarity/       CosineSimilarity, Compute, Metric, ResultSet
//	internal/config   YAML configuration for the CLI
//	internal/matrixio JSON codec for matrices and results
//	internal/cli      cobra commands: compute, transpose, inspect, version
//	cmd/sparsesim     binary entry point
//
// Quick start:
//
//	a, _ := csr.Build(2, 3, []int{0, 3, 6}, []int{0, 1, 2, 0, 1, 2}, []float64{1, 2, 3, 4, 5, 6})
//	rs, err := similarity.CosineSimilarity(ctx, a, nil, 0.5, 10)
package sparsesim
