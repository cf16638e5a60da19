// Package finder runs the whole reconstruction pipeline for one sequence:
// difference table → forecast → coefficients (float and exact) → rendered
// polynomial → fit summary.
//
// The numeric packages (difference, newton, polynomial, stirling) stay pure;
// finder is where logging (zap) and metrics (tally) are attached.
//
//	f := finder.New(finder.WithLogger(logger), finder.WithTerms(20))
//	rep, err := f.Analyze([]int64{1, 4, 9, 16, 25})
//	// rep.State == difference.Exact, rep.Polynomial == "x^2 + 2x + 1"
//
// A Finder is safe for concurrent use; the only shared state is its Stirling cache.
package finder
