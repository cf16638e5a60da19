// SPDX-License-Identifier: MIT

package report

// Options controls text rendering.
type Options struct {
	PadWidth    int  // minimum width of each table value (left-padded)
	IndentWidth int  // spaces added per table row depth
	ShowExact   bool // also print the rational form of the polynomial
}

// DefaultOptions returns the classic layout: width 3, two spaces per row.
func DefaultOptions() Options {
	return Options{PadWidth: 3, IndentWidth: 2}
}
