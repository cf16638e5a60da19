// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/uber-go/tally"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nopeless/polynomial-finder/config"
	"github.com/nopeless/polynomial-finder/finder"
	"github.com/nopeless/polynomial-finder/report"
)

type rootFlags struct {
	configFile string
	terms      int
	start      int64
	legacy     bool
	exact      bool
	allLines   bool
	output     string
	logLevel   string
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "polyfind [integers...]",
		Short: "find the polynomial that generates an integer sequence",
		Long: "polyfind builds the finite-difference table of a sequence, extrapolates it\n" +
			"with Newton's forward-difference formula and prints the power-basis polynomial.\n" +
			"Numbers are taken from the arguments, or from the first line of stdin.\n" +
			"Put -- before arguments when the first number is negative.",
		Example: `  echo "1 4 9 16 25" | polyfind
  polyfind --terms 10 --exact 0 1 3 6
  polyfind -- -1 0 3 8`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}

			logger, err := newLogger(errOut, cfg.Logging.Level)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			return run(in, out, args, cfg, logger)
		},
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	def := config.Default()
	fs := cmd.Flags()
	fs.StringVarP(&flags.configFile, "config", "c", "", "YAML configuration file")
	fs.IntVarP(&flags.terms, "terms", "n", def.Terms, "number of extrapolated values to print")
	fs.Int64Var(&flags.start, "start", def.Start, "first extrapolated position")
	fs.BoolVar(&flags.legacy, "legacy", def.Legacy, "treat every appended single-value row as 'no pattern', even [0]")
	fs.BoolVar(&flags.exact, "exact", def.ShowExact, "also print the polynomial with exact rational coefficients")
	fs.BoolVar(&flags.allLines, "all-lines", def.AllLines, "read every line of stdin instead of only the first")
	fs.StringVarP(&flags.output, "output", "o", def.Output, "output format: text or json")
	fs.StringVar(&flags.logLevel, "log-level", def.Logging.Level, "log level (debug, info, warn, error)")

	return cmd
}

// resolveConfig layers defaults, the optional config file and explicitly set flags.
func resolveConfig(cmd *cobra.Command, flags rootFlags) (config.Config, error) {
	cfg := config.Default()
	if flags.configFile != "" {
		var err error
		if cfg, err = config.LoadFiles(flags.configFile); err != nil {
			return cfg, errors.Wrap(err, "load config")
		}
	}

	fs := cmd.Flags()
	if fs.Changed("terms") {
		cfg.Terms = flags.terms
	}
	if fs.Changed("start") {
		cfg.Start = flags.start
	}
	if fs.Changed("legacy") {
		cfg.Legacy = flags.legacy
	}
	if fs.Changed("exact") {
		cfg.ShowExact = flags.exact
	}
	if fs.Changed("all-lines") {
		cfg.AllLines = flags.allLines
	}
	if fs.Changed("output") {
		cfg.Output = flags.output
	}
	if fs.Changed("log-level") {
		cfg.Logging.Level = flags.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(err, "invalid configuration")
	}

	return cfg, nil
}

// newLogger builds a console logger on w.
func newLogger(w io.Writer, level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "log level %q", level)
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), lvl)), nil
}

func run(in io.Reader, out io.Writer, args []string, cfg config.Config, logger *zap.Logger) error {
	text, err := readInput(in, args, cfg.AllLines)
	if err != nil {
		return err
	}
	seq, err := parseSequence(text)
	if err != nil {
		return err
	}

	opts := []finder.Option{
		finder.WithLogger(logger),
		finder.WithScope(tally.NoopScope),
		finder.WithTerms(cfg.Terms),
		finder.WithStart(cfg.Start),
	}
	if cfg.Legacy {
		opts = append(opts, finder.WithLegacyTermination())
	}

	rep, err := finder.New(opts...).Analyze(seq)
	if err != nil {
		return errors.Wrap(err, "analyze")
	}

	switch cfg.Output {
	case "json":
		return report.WriteJSON(out, rep)
	case "text":
		ropts := report.DefaultOptions()
		ropts.PadWidth = cfg.PadWidth
		ropts.IndentWidth = cfg.IndentWidth
		ropts.ShowExact = cfg.ShowExact

		return report.WriteText(out, rep, ropts)
	default:
		return fmt.Errorf("unknown output format %q", cfg.Output)
	}
}
