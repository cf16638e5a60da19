// SPDX-License-Identifier: MIT

package finder

import (
	"github.com/uber-go/tally"
	"go.uber.org/zap"

	"github.com/nopeless/polynomial-finder/stirling"
)

// DefaultTerms is how many forecast values Analyze produces by default.
const DefaultTerms = 20

// Option configures a Finder. Constructors panic on nonsensical values.
type Option func(*options)

type options struct {
	logger *zap.Logger
	scope  tally.Scope
	cache  *stirling.Cache
	terms  int
	start  int64
	legacy bool
}

func defaultOptions() options {
	return options{
		logger: zap.NewNop(),
		scope:  tally.NoopScope,
		terms:  DefaultTerms,
	}
}

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("finder: WithLogger(nil)")
	}

	return func(o *options) { o.logger = l }
}

// WithScope sets the metrics scope. Panics on nil.
func WithScope(s tally.Scope) Option {
	if s == nil {
		panic("finder: WithScope(nil)")
	}

	return func(o *options) { o.scope = s }
}

// WithStirlingCache shares a Stirling memo between Finders. Panics on nil.
func WithStirlingCache(c *stirling.Cache) Option {
	if c == nil {
		panic("finder: WithStirlingCache(nil)")
	}

	return func(o *options) { o.cache = c }
}

// WithTerms sets how many forecast values to produce. Panics on n < 0.
func WithTerms(n int) Option {
	if n < 0 {
		panic("finder: WithTerms(n<0)")
	}

	return func(o *options) { o.terms = n }
}

// WithStart sets the first forecast position (default 0).
func WithStart(x int64) Option {
	return func(o *options) { o.start = x }
}

// WithLegacyTermination forwards difference.WithLegacyTermination.
func WithLegacyTermination() Option {
	return func(o *options) { o.legacy = true }
}
