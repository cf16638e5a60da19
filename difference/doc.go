// Package difference builds finite-difference tables for integer sequences.
//
// 🚀 What is a difference table?
//
//	Row 0 is the input sequence; row i+1 holds the consecutive differences
//	row[j+1] − row[j] of row i, so every row is one element shorter than
//	its predecessor:
//
//	  1   4   9  16  25
//	    3   5   7   9
//	      2   2   2
//	        0   0
//
//	A row made entirely of zeros means the sequence is produced by a
//	polynomial (State Exact). Reaching a single non-zero value first means
//	no polynomial pattern was confirmed (State Degenerate); the table is still
//	a valid Newton interpolation of the input.
//
// ✨ Key features:
//   - Arena storage: one preallocated buffer of n(n+1)/2 values, rows are views.
//   - One explicit classification per row (all-zero / single non-zero / continue).
//   - WithLegacyTermination reproduces the historical rule in which any
//     appended single-value row is Degenerate, even [0].
//   - Overflow-checked subtraction (ErrOverflow).
//
// ⚙️ Usage:
//
//	tbl, state, err := difference.Build([]int64{1, 4, 9, 16, 25})
//	// state == difference.Exact, tbl.Depth() == 4
//
// Complexity: O(n²) time and memory for a sequence of length n.
package difference
