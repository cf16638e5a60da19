// SPDX-License-Identifier: MIT

package report

import (
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/nopeless/polynomial-finder/finder"
	"github.com/nopeless/polynomial-finder/polynomial"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// jsonReport is the wire shape of finder.Report.
type jsonReport struct {
	Sequence        []int64               `json:"sequence"`
	Rows            [][]int64             `json:"rows"`
	State           string                `json:"state"`
	Start           int64                 `json:"start"`
	Forecast        []int64               `json:"forecast"`
	Coefficients    []float64             `json:"coefficients"`
	Exact           []string              `json:"exact_coefficients"`
	Polynomial      string                `json:"polynomial"`
	ExactPolynomial string                `json:"exact_polynomial"`
	Fit             polynomial.FitSummary `json:"fit"`
	FloatOverflow   bool                  `json:"float_overflow,omitempty"`
}

// WriteJSON writes rep as indented JSON. Exact coefficients are "p/q" strings.
func WriteJSON(w io.Writer, rep *finder.Report) error {
	exact := make([]string, len(rep.Exact))
	for i, r := range rep.Exact {
		exact[i] = r.RatString()
	}

	out := jsonReport{
		Sequence:        rep.Sequence,
		Rows:            rep.Table.Rows(),
		State:           rep.State.String(),
		Start:           rep.Start,
		Forecast:        rep.Forecast,
		Coefficients:    rep.Coefficients,
		Exact:           exact,
		Polynomial:      rep.Polynomial,
		ExactPolynomial: rep.ExactPolynomial,
		Fit:             rep.Fit,
		FloatOverflow:   rep.FloatOverflow,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}
