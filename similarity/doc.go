// SPDX-License-Identifier: MIT

// Package similarity computes thresholded top-k cosine similarity between
// the rows of sparse CSR matrices.
//
// 🚀 Modes
//
//	Cross mode  CosineSimilarity(ctx, a, b, ...) compares every row of a with
//	            every row of b; a.Cols() must equal b.Cols().
//	Self mode   CosineSimilarity(ctx, a, nil, ...) compares the rows of a with
//	            each other and reports each unordered pair (i, j), i < j, once.
//
// The nil second argument is the only self-mode trigger: passing the same
// matrix twice is a plain cross comparison.
//
// ✨ Filtering
//
//   - minScore: a match is kept iff score >= minScore.
//   - maxResultsPerRow: 0 keeps everything, k > 0 keeps the best k per source
//     row (bounded heap; ties go to the lower target index).
//   - rows with zero norm never produce matches.
//
// ⚙️ Execution
//
//	Source rows are split into contiguous chunks that a fixed pool of workers
//	claims one at a time. Every row writes into its own pre-allocated slot, so
//	no locks guard the results. Cancellation is checked before each row: a
//	cancelled call returns the rows that completed together with an error
//	matching ErrCancelled and the context error.
//
// Inputs are never mutated or transposed by the engine. The caller must not
// mutate them (e.g. csr.Transpose) while a computation is running.
//
// Output order is deterministic and independent of the worker count:
// source rows ascending, matches by descending score then ascending index.
package similarity
