// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// errNoNumbers is returned when the input holds no integers at all.
var errNoNumbers = errors.New("no numbers in input")

// readInput returns the text to parse: args if present, else the first line
// of r (or all of r when allLines is set).
func readInput(r io.Reader, args []string, allLines bool) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if allLines {
		data, err := io.ReadAll(r)
		if err != nil {
			return "", errors.Wrap(err, "read input")
		}

		return string(data), nil
	}

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrap(err, "read input")
	}

	return line, nil
}

// parseSequence parses whitespace-delimited base-10 integers.
func parseSequence(text string) ([]int64, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil, errNoNumbers
	}

	seq := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parse value %d %q", i+1, f)
		}
		seq[i] = v
	}

	return seq, nil
}
