// Package report renders finder.Report values for people (WriteText) and
// machines (WriteJSON).
//
// Text layout:
//
//	Numbers: 1 4 9 16 25
//	  1   4   9  16  25
//	    3   5   7   9
//	      2   2   2
//	        0   0
//
//	A pattern was found. Attempting to generate polynomial...
//	1 4 9 16 25 36 49 ...
//	Polynomial equation: "x^2 + 2x + 1"
//
// Difference rows are indented by IndentWidth spaces per depth and every
// value is left-padded to PadWidth.
package report
