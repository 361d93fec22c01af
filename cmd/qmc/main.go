// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command qmc minimizes a Boolean function given as a sum of minterms.
//
// Usage:
//
//	qmc [flags] [minterms...]
//
// Minterms are read from the command line, or from standard input if none is
// given. See package internal/parse for the syntax.
//
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/db47h/qmc"
	"github.com/db47h/qmc/circuit"
	"github.com/db47h/qmc/internal/parse"
	"github.com/db47h/qmc/internal/report"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

type options struct {
	verbose bool
	output  string
	tables  bool
	verify  bool
	workers int

	log *zap.Logger
}

func (o *options) addFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")
	fs.StringVarP(&o.output, "output", "o", "text", "output format: text, yaml or json")
	fs.BoolVarP(&o.tables, "tables", "t", false, "print the generation table and coverage matrices (text output only)")
	fs.BoolVar(&o.verify, "verify", false, "check the result with the circuit simulator and a SAT solver")
	fs.IntVarP(&o.workers, "workers", "w", 1, "goroutines used to merge terms (0 for GOMAXPROCS)")
}

func newRootCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "qmc [minterms...]",
		Short: "Minimize a Boolean function given as a sum of minterms",
		Long: `qmc minimizes a Boolean function with the Quine-McCluskey method.

Minterms are non-negative integers separated by commas or spaces. Ranges
(a..b) and the m(...) notation are accepted:

  qmc 0 4 5 7 8 11 12 15
  qmc 'm(0, 4..5, 7)'
  echo 0,1,2,3 | qmc

Variables are named after the last letters of the alphabet, most significant
bit first (w, x, y, z for 4 variables).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if o.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			o.log, err = config.Build()
			if err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if o.log != nil {
				_ = o.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd.InOrStdin(), cmd.OutOrStdout(), args)
		},
	}
	o.addFlags(cmd.Flags())
	return cmd
}

func (o *options) run(in io.Reader, out io.Writer, args []string) error {
	input := strings.Join(args, " ")
	if len(args) == 0 {
		b, err := io.ReadAll(in)
		if err != nil {
			return errors.Wrap(err, "read minterms")
		}
		input = string(b)
	}
	ms, err := parse.Minterms(input)
	if err != nil {
		return err
	}

	res, err := qmc.Minimize(ms, qmc.WithLogger(o.log), qmc.WithWorkers(o.workers))
	if err != nil {
		return err
	}
	o.log.Debug("minimized",
		zap.Int("minterms", len(res.Minterms)),
		zap.Int("generations", res.NonEmpty),
		zap.Int("terms", res.Generations.Terms()),
		zap.Int("primes", len(res.Primes)),
		zap.String("expression", res.Expression()))

	if o.verify {
		if err := verify(res, o.workers); err != nil {
			return err
		}
		o.log.Info("cover verified", zap.String("expression", res.Expression()))
	}

	switch o.output {
	case "text":
		return report.WriteText(out, res, o.tables)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(report.New(res)); err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(report.New(res)), "encode json")
	default:
		return errors.Errorf("unknown output format %q", o.output)
	}
}

// verify checks the cover of res with a SAT solver and, for functions small
// enough, by simulating its circuit for every input.
//
func verify(res *qmc.Result, workers int) error {
	if err := res.Verify(); err != nil {
		return err
	}
	if res.Width > circuit.MaxInputs {
		return nil
	}
	cover := res.Cover()
	ps := make([]qmc.Pattern, len(cover))
	for i, t := range cover {
		ps[i] = t.Pattern
	}
	f, err := circuit.Synthesize(res.Width, ps, workers)
	if err != nil {
		return err
	}
	defer f.Dispose()
	if got := f.Minterms(); !reflect.DeepEqual(got, res.Minterms) {
		return errors.Wrapf(qmc.ErrInvariantViolation, "circuit for %q is true for %v, expected %v",
			res.Expression(), got, res.Minterms)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
