// SPDX-License-Identifier: MIT

// Package matrix provides the two storage forms boundary operators need.
//
// What & Why:
//
//	Sparse is a compressed-sparse-column matrix of small signed integers
//	(int8). Boundary matrices hold only 0 and ±1 and have exactly p+1
//	nonzeros per column, so CSC is both compact and the natural layout for
//	column reductions downstream.
//
//	Dense is a row-major float64 matrix used for products and Laplacians
//	whose entries can grow past the int8 range, and for printing.
//
// Shapes may have zero rows or zero columns: the boundary of the vertices
// is a 0×n matrix.
//
// Complexity:
//
//	NewSparse sorts its entries: O(nnz log nnz).
//	Sparse.At is a binary search within one column: O(log nnz_col).
//	Mul runs column by column with a dense accumulator.
//
// Errors are sentinels from errors.go, wrapped with the method name; test
// with errors.Is.
package matrix
