// Package polynomial reconstructs power-basis coefficients from a finite
// difference table and renders them as an algebraic expression.
//
// 🚀 How does reconstruction work?
//
//	Newton's formula writes the interpolating polynomial as
//	  P(x) = Σ_k Δᵏ(0) · x(x−1)···(x−k+1) / k!
//	Each falling factorial is expanded with a row of signed Stirling numbers
//	of the first kind (package stirling) and the scaled rows are summed into
//	one coefficient vector, index = degree.
//
// ✨ Two numeric paths:
//   - Reconstruct  — float64 coefficients, integer products overflow-checked.
//   - ReconstructExact — *big.Rat coefficients, no overflow, no rounding.
//
// ⚙️ Usage:
//
//	tbl, _, _ := difference.Build([]int64{1, 4, 9, 16, 25})
//	c, _ := polynomial.Reconstruct(tbl)
//	fmt.Println(polynomial.Format(c)) // x^2 + 2x + 1
//
// Rendering rules (Format, FormatExact):
//   - descending degree, zero coefficients omitted, all-zero → "";
//   - leading negative term renders as "-…", later terms join with " + " / " - ";
//   - a unit coefficient is implicit for degree ≥ 1 ("x", "-x^3"), explicit at degree 0;
//   - degree 1 is "x", degree d ≥ 2 is "x^d".
package polynomial
