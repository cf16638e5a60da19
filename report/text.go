// SPDX-License-Identifier: MIT

package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nopeless/polynomial-finder/difference"
	"github.com/nopeless/polynomial-finder/finder"
)

const (
	msgExact       = "A pattern was found. Attempting to generate polynomial..."
	msgDegenerate1 = "No pattern was found. The following sequence generated fits the numbers given"
	msgDegenerate2 = "but does not imply that this is a sequence of a polynomial"
)

// WriteTable writes t one row per line followed by a blank line.
func WriteTable(w io.Writer, t *difference.Table, opts Options) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < t.Depth(); i++ {
		bw.WriteString(strings.Repeat(" ", i*opts.IndentWidth))
		for j, v := range t.Row(i) {
			if j > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(padLeft(strconv.FormatInt(v, 10), opts.PadWidth))
		}
		bw.WriteString(" \n")
	}
	bw.WriteByte('\n')

	return bw.Flush()
}

// WriteText writes the full human-readable report.
func WriteText(w io.Writer, rep *finder.Report, opts Options) error {
	if _, err := fmt.Fprintf(w, "Numbers: %s\n", joinInts(rep.Sequence)); err != nil {
		return err
	}
	if err := WriteTable(w, rep.Table, opts); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if rep.State == difference.Exact {
		fmt.Fprintln(bw, msgExact)
	} else {
		fmt.Fprintln(bw, msgDegenerate1)
		fmt.Fprintln(bw, msgDegenerate2)
	}
	for _, v := range rep.Forecast {
		bw.WriteString(strconv.FormatInt(v, 10))
		bw.WriteByte(' ')
	}
	bw.WriteByte('\n')

	fmt.Fprintf(bw, "Polynomial equation: %q\n", rep.Polynomial)
	if opts.ShowExact {
		fmt.Fprintf(bw, "Exact form: %q\n", rep.ExactPolynomial)
	}

	return bw.Flush()
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}

	return strings.Repeat(" ", width-len(s)) + s
}

func joinInts(vs []int64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatInt(v, 10)
	}

	return strings.Join(parts, " ")
}
