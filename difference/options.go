// SPDX-License-Identifier: MIT

package difference

// Option customizes Build.
type Option func(*buildConfig)

type buildConfig struct {
	legacy bool
}

// WithLegacyTermination classifies every appended single-value row as
// Degenerate, even when that value is zero. Without it, an all-zero row of
// any length is Exact. Row 0 is classified the same way in both modes.
func WithLegacyTermination() Option {
	return func(c *buildConfig) { c.legacy = true }
}

func gatherOptions(opts []Option) buildConfig {
	var cfg buildConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
