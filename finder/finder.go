// SPDX-License-Identifier: MIT

package finder

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/uber-go/tally"
	"go.uber.org/zap"

	"github.com/nopeless/polynomial-finder/difference"
	"github.com/nopeless/polynomial-finder/newton"
	"github.com/nopeless/polynomial-finder/polynomial"
	"github.com/nopeless/polynomial-finder/stirling"
)

const opAnalyze = "Analyze"

// Report is the outcome of one Analyze call.
type Report struct {
	Sequence        []int64
	Table           *difference.Table
	State           difference.State
	Start           int64
	Forecast        []int64
	Coefficients    polynomial.Coefficients
	Exact           []*big.Rat
	Polynomial      string
	ExactPolynomial string
	Fit             polynomial.FitSummary

	// FloatOverflow is set when the float64 path overflowed and
	// Coefficients were derived from Exact instead.
	FloatOverflow bool
}

// Finder runs the pipeline with fixed options.
type Finder struct {
	opts    options
	metrics finderMetrics
}

type finderMetrics struct {
	exact      tally.Counter
	degenerate tally.Counter
	errors     tally.Counter
	fallback   tally.Counter
	latency    tally.Timer
}

func newFinderMetrics(s tally.Scope) finderMetrics {
	s = s.SubScope("analyze")

	return finderMetrics{
		exact:      s.Counter("exact"),
		degenerate: s.Counter("degenerate"),
		errors:     s.Counter("errors"),
		fallback:   s.Counter("overflow_fallback"),
		latency:    s.Timer("latency"),
	}
}

// New returns a Finder.
func New(opts ...Option) *Finder {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.cache == nil {
		o.cache = stirling.NewCache()
	}

	return &Finder{opts: o, metrics: newFinderMetrics(o.scope)}
}

// Analyze runs the full pipeline on seq.
//
// Errors are those of difference.Build, newton.Forecast and
// polynomial.ReconstructExact/Fit, wrapped with "Analyze: ". A float64
// overflow in polynomial.Reconstruct is not an error: the report falls back to
// the exact coefficients and sets FloatOverflow.
func (f *Finder) Analyze(seq []int64) (*Report, error) {
	sw := f.metrics.latency.Start()
	defer sw.Stop()

	rep, err := f.analyze(seq)
	if err != nil {
		f.metrics.errors.Inc(1)
		f.opts.logger.Error("analysis failed", zap.Int("length", len(seq)), zap.Error(err))

		return nil, fmt.Errorf("%s: %w", opAnalyze, err)
	}

	return rep, nil
}

func (f *Finder) analyze(seq []int64) (*Report, error) {
	log := f.opts.logger.With(zap.Int("length", len(seq)))

	var buildOpts []difference.Option
	if f.opts.legacy {
		buildOpts = append(buildOpts, difference.WithLegacyTermination())
	}
	tbl, state, err := difference.Build(seq, buildOpts...)
	if err != nil {
		return nil, err
	}
	log.Debug("difference table built", zap.Int("depth", tbl.Depth()), zap.Stringer("state", state))

	switch state {
	case difference.Exact:
		f.metrics.exact.Inc(1)
	default:
		f.metrics.degenerate.Inc(1)
		log.Warn("no polynomial pattern confirmed; result only interpolates the input")
	}

	forecast, err := newton.Forecast(tbl, f.opts.start, f.opts.terms)
	if err != nil {
		return nil, err
	}
	log.Debug("forecast computed", zap.Int64("start", f.opts.start), zap.Int("terms", len(forecast)))

	exact, err := polynomial.ReconstructExact(tbl)
	if err != nil {
		return nil, err
	}

	rep := &Report{
		Sequence:        tbl.Sequence(),
		Table:           tbl,
		State:           state,
		Start:           f.opts.start,
		Forecast:        forecast,
		Exact:           exact,
		ExactPolynomial: polynomial.FormatExact(exact),
	}

	coeffs, err := polynomial.Reconstruct(tbl, polynomial.WithCache(f.opts.cache))
	switch {
	case errors.Is(err, polynomial.ErrOverflow):
		f.metrics.fallback.Inc(1)
		log.Warn("float reconstruction overflowed; using exact coefficients", zap.Error(err))
		coeffs = polynomial.Float64s(exact)
		rep.FloatOverflow = true
	case err != nil:
		return nil, err
	}
	rep.Coefficients = coeffs
	rep.Polynomial = polynomial.Format(coeffs)

	if rep.Fit, err = polynomial.Fit(coeffs, rep.Sequence); err != nil {
		return nil, err
	}
	log.Debug("polynomial reconstructed",
		zap.String("polynomial", rep.Polynomial),
		zap.Int("degree", coeffs.Degree()),
		zap.Float64("max_residual", rep.Fit.MaxAbs),
	)

	return rep, nil
}
