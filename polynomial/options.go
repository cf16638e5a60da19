// SPDX-License-Identifier: MIT

package polynomial

import "github.com/nopeless/polynomial-finder/stirling"

// Option customizes Reconstruct.
type Option func(*reconstructConfig)

type reconstructConfig struct {
	cache *stirling.Cache
}

// WithCache makes Reconstruct read Stirling rows from a shared memo instead
// of regenerating them. Panics on nil.
func WithCache(c *stirling.Cache) Option {
	if c == nil {
		panic("polynomial: WithCache(nil)")
	}

	return func(cfg *reconstructConfig) { cfg.cache = c }
}

func (cfg reconstructConfig) table(n int) (stirling.Table, error) {
	if cfg.cache != nil {
		return cfg.cache.Get(n)
	}

	return stirling.Generate(n)
}
