// SPDX-License-Identifier: MIT

package difference

import (
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/constraints"
)

// State is the terminal state of a difference table.
type State int

const (
	// Exact: the last row is all zeros; the sequence is polynomial.
	Exact State = iota

	// Degenerate: a single non-zero value was reached first (or, under
	// WithLegacyTermination, any appended single-value row).
	Degenerate
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Exact:
		return "exact"
	case Degenerate:
		return "degenerate"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Table is an immutable finite-difference table.
//
// Rows live back to back in one arena buffer; offsets[i] is where row i
// starts and row i has length n−i, where n is the input length.
type Table struct {
	arena   []int64
	offsets []int
	n       int
}

// Depth returns the number of rows.
func (t *Table) Depth() int { return len(t.offsets) }

// Len returns the length of row i.
func (t *Table) Len(i int) int { return t.n - i }

// row returns a view into the arena; callers must not mutate it.
func (t *Table) row(i int) []int64 {
	start := t.offsets[i]

	return t.arena[start : start+t.n-i : start+t.n-i]
}

// Row returns a copy of row i.
func (t *Table) Row(i int) []int64 {
	src := t.row(i)
	out := make([]int64, len(src))
	copy(out, src)

	return out
}

// Rows returns a copy of every row, row 0 first.
func (t *Table) Rows() [][]int64 {
	out := make([][]int64, t.Depth())
	for i := range out {
		out[i] = t.Row(i)
	}

	return out
}

// Leading returns row[i][0], the i-th forward difference at position 0.
func (t *Table) Leading(i int) int64 { return t.arena[t.offsets[i]] }

// Sequence returns a copy of row 0.
func (t *Table) Sequence() []int64 { return t.Row(0) }

// Equal reports whether both tables hold the same rows.
func (t *Table) Equal(other *Table) bool {
	if t == nil || other == nil {
		return t == other
	}

	return cmp.Equal(t.Rows(), other.Rows())
}

// String renders the rows one per line, e.g. "[1 4 9]\n[3 5]".
func (t *Table) String() string {
	var sb strings.Builder
	for i := 0; i < t.Depth(); i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprint(&sb, t.row(i))
	}

	return sb.String()
}

// AllZero reports whether every element of row is zero. An empty row is all zeros.
func AllZero[T constraints.Integer](row []T) bool {
	for _, v := range row {
		if v != 0 {
			return false
		}
	}

	return true
}
