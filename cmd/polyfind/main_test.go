// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestParseSequence(t *testing.T) {
	seq, err := parseSequence("  1 -4\t9\n16  ")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, -4, 9, 16}, seq)

	_, err = parseSequence(" \n\t")
	assert.ErrorIs(t, err, errNoNumbers)

	_, err = parseSequence("1 two 3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"two"`)

	_, err = parseSequence("99999999999999999999")
	assert.Error(t, err)
}

func TestReadInput(t *testing.T) {
	got, err := readInput(strings.NewReader("ignored"), []string{"1", "2 3"}, false)
	require.NoError(t, err)
	assert.Equal(t, "1 2 3", got)

	got, err = readInput(strings.NewReader("1 2\n3 4\n"), nil, false)
	require.NoError(t, err)
	assert.Equal(t, "1 2\n", got)

	got, err = readInput(strings.NewReader("1 2\n3 4\n"), nil, true)
	require.NoError(t, err)
	assert.Equal(t, "1 2\n3 4\n", got)

	got, err = readInput(strings.NewReader("7 8"), nil, false)
	require.NoError(t, err)
	assert.Equal(t, "7 8", got)
}

func TestRoot_TextFromArgs(t *testing.T) {
	out, _, err := execute(t, "", "--terms", "3", "0", "1", "4", "9")
	require.NoError(t, err)

	want := "Numbers: 0 1 4 9\n" +
		"  0   1   4   9 \n" +
		"    1   3   5 \n" +
		"      2   2 \n" +
		"        0 \n" +
		"\n" +
		"A pattern was found. Attempting to generate polynomial...\n" +
		"0 1 4 \n" +
		"Polynomial equation: \"x^2\"\n"
	assert.Equal(t, want, out)
}

func TestRoot_StdinFirstLineOnly(t *testing.T) {
	out, _, err := execute(t, "1 2 3\n100 200\n", "--terms", "2", "--start", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Numbers: 1 2 3\n")
	assert.Contains(t, out, "4 5 \n")
	assert.Contains(t, out, `"x + 1"`)

	out, _, err = execute(t, "1 2\n3\n", "--all-lines", "--terms", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Numbers: 1 2 3\n")
}

func TestRoot_LegacyIsDegenerate(t *testing.T) {
	out, _, err := execute(t, "", "--legacy", "--terms", "1", "1", "2", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "No pattern was found.")
}

func TestRoot_JSON(t *testing.T) {
	out, _, err := execute(t, "", "-o", "json", "--terms", "2", "2", "5", "10", "17")
	require.NoError(t, err)

	var got struct {
		State      string  `json:"state"`
		Forecast   []int64 `json:"forecast"`
		Polynomial string  `json:"polynomial"`
	}
	require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal([]byte(out), &got))
	assert.Equal(t, "exact", got.State)
	assert.Equal(t, []int64{2, 5}, got.Forecast)
	assert.Equal(t, "x^2 + 2x + 2", got.Polynomial)
}

func TestRoot_ConfigFileAndOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "polyfind.yaml")
	require.NoError(t, os.WriteFile(path, []byte("terms: 2\nshowExact: true\n"), 0o600))

	out, _, err := execute(t, "", "--config", path, "1", "3", "6", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "1 3 \n")
	assert.Contains(t, out, "Exact form: ")

	out, _, err = execute(t, "", "--config", path, "--terms", "1", "1", "3", "6", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "\n1 \n")
}

func TestRoot_Errors(t *testing.T) {
	_, _, err := execute(t, "\n")
	assert.ErrorIs(t, err, errNoNumbers)

	_, _, err = execute(t, "", "-o", "xml", "1")
	assert.Error(t, err)

	_, _, err = execute(t, "", "--log-level", "loud", "1")
	assert.Error(t, err)

	_, _, err = execute(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "1")
	assert.Error(t, err)
}

func TestRoot_NegativeArgsAfterDash(t *testing.T) {
	out, _, err := execute(t, "", "--terms", "1", "--", "-1", "0", "3", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "Numbers: -1 0 3 8\n")
	assert.Contains(t, out, "\n-1 \n")
}
