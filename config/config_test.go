// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nopeless/polynomial-finder/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "polyfind.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault_IsValid(t *testing.T) {
	assert.NoError(t, config.Default().Validate())
}

func TestLoadFiles_Overlay(t *testing.T) {
	base := writeFile(t, "terms: 5\noutput: json\nlogging:\n  level: debug\n")
	override := writeFile(t, "terms: 7\nlegacyTermination: true\n")

	cfg, err := config.LoadFiles(base, override)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Terms)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Legacy)
	assert.Equal(t, 3, cfg.PadWidth, "unspecified fields keep defaults")
}

func TestLoadFiles_Invalid(t *testing.T) {
	_, err := config.LoadFiles(writeFile(t, "padWidth: 0\n"))
	assert.Error(t, err)

	_, err = config.LoadFiles(writeFile(t, "output: xml\n"))
	assert.Error(t, err)

	_, err = config.LoadFiles(writeFile(t, "unknownKey: 1\n"))
	assert.Error(t, err, "strict decoding rejects unknown keys")

	_, err = config.LoadFiles(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = config.LoadFiles()
	assert.Error(t, err)
}
