// Package polyfinder recovers the polynomial behind an integer sequence.
//
// 🚀 What is polynomial-finder?
//
//	A small, dependency-light toolkit that takes a few terms of a sequence and:
//		• Builds the finite-difference table (difference/)
//		• Decides whether the table closed on a zero row or ran out of data
//		• Extrapolates with Newton's forward-difference formula (newton/)
//		• Converts to power-basis coefficients via Stirling numbers of the
//		  first kind (stirling/, polynomial/)
//		• Prints the table, the forecast and the polynomial (report/, cmd/polyfind)
//
// ✨ Why this layout?
//
//   - Exact integer core – every int64 step is overflow-checked
//   - Exact rational fallback – math/big coefficients when float64 is not enough
//   - Observable – zap logging and tally metrics through finder.Finder
//   - Configurable – YAML config files layered under CLI flags
//
// Packages:
//
//	difference/ — arena-backed difference table + termination state
//	stirling/   — signed Stirling numbers of the first kind, with a shared cache
//	newton/     — Newton forward-difference evaluation and forecasting
//	polynomial/ — coefficient reconstruction, formatting and fit residuals
//	finder/     — end-to-end pipeline with logging and metrics
//	report/     — text and JSON renderers
//	config/     — YAML configuration
//	cmd/polyfind — the command-line tool
//
// Quick example:
//
//	1   4   9  16  25
//	  3   5   7   9
//	    2   2   2
//	      0   0
//
//	closes on a zero row, so the sequence is x^2 + 2x + 1 evaluated at 0, 1, 2, …
//
//	go install github.com/nopeless/polynomial-finder/cmd/polyfind@latest
package polyfinder
