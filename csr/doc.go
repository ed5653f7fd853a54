// SPDX-License-Identifier: MIT

// Package csr provides an immutable-shape compressed-sparse-row matrix.
//
// 🚀 What is CSR?
//
//	A sparse r×c matrix stored as three flat slices:
//	  • rowPtr (len r+1): row i occupies [rowPtr[i], rowPtr[i+1])
//	  • colIdx (len nnz): column of every stored entry, strictly ascending per row
//	  • values (len nnz): the entries, aligned index-for-index with colIdx
//
// ✨ What the package offers:
//   - Build / FromTriplets: strict, allocation-only constructors that never
//     re-sort caller data and never return a partial matrix
//   - Transpose: in-place counting-sort transpose, O(nnz + rows + cols)
//   - Row views, norms and L2 normalization for similarity pipelines
//
// ⚙️ Usage:
//
//	m, err := csr.Build(2, 3,
//		[]int{0, 3, 6},
//		[]int{0, 1, 2, 0, 1, 2},
//		[]float64{1, 2, 3, 4, 5, 6},
//	)
//	if err != nil {
//		// errors.Is(err, csr.ErrInvalidShape) / csr.ErrInvalidIndex / csr.ErrNaNInf
//	}
//	csr.Transpose(m) // m is now 3×2
//
// Concurrency:
//
//	A Matrix is safe for concurrent reads. Transpose and L2Normalize mutate
//	the receiver; callers must not run them while another goroutine reads.
package csr
