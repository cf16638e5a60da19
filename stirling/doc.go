// Package stirling generates the signed Stirling numbers of the first kind
// used to move a polynomial from the falling-factorial basis into the power basis.
//
// 🚀 What is it?
//
//	Row i of the table holds the power-basis coefficients of
//	  x·(x−1)·(x−2)···(x−i)
//	in ascending degree, with the (always zero) constant term omitted:
//
//	  row 0:   1                 x
//	  row 1:  -1   1             x² − x
//	  row 2:   2  -3   1         x³ − 3x² + 2x
//	  row 3:  -6  11  -6   1
//	  row 4:  24 -50  35 -10  1
//
// ✨ Key features:
//   - Generate(n) is a pure function of n; n = 0 yields the single row [1].
//   - Every multiply/add is overflow-checked; rows past ~20 return ErrOverflow
//     instead of silently wrapping.
//   - Cache memoizes the largest table seen so far and is safe for concurrent use.
//
// ⚙️ Usage:
//
//	tbl, err := stirling.Generate(4)
//	// tbl[3] == []int64{-6, 11, -6, 1}
//
// Complexity: O(n²) time and memory.
package stirling
