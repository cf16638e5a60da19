// Package newton evaluates Newton's forward-difference formula over a
// difference table, extrapolating a sequence to arbitrary integer positions.
//
//	f(x) = Σ_k  Δᵏf(0) · C(x, k),   C(x, k) = x·(x−1)···(x−k+1) / k!
//
// C(x, k) is computed in integer arithmetic with Go's truncating division.
// For x ≥ 0 the falling factorial is always a multiple of k!, so the result is
// exact. Negative x is evaluated with the same truncating rule and no attempt
// is made to correct it; callers extrapolating backwards should treat the
// value as best effort. All products and sums are overflow-checked.
package newton
