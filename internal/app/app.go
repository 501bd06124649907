// Package app drives the matinv command line.
package app

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/matinv/gaussjordan"
	"github.com/katalvlaran/matinv/internal/cli"
	"github.com/katalvlaran/matinv/internal/diag"
	"github.com/katalvlaran/matinv/internal/matio"
	"github.com/katalvlaran/matinv/internal/version"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1 // input, singular under -strict, allocation
	ExitUsage   = 2
)

const progName = "matinv"

// Run executes matinv reading the matrix from os.Stdin when no file is named.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunIO(argv, os.Stdin, stdout, stderr)
}

// RunIO is Run with an explicit standard input.
func RunIO(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet(progName)
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return ExitOK
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return ExitUsage
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", progName, version.Version)
		return ExitOK
	}

	if err = invert(opts, stdin, outw, stderr); err != nil {
		_, _ = fmt.Fprintf(stderr, "%s: %v\n", progName, err)
		return ExitFailure
	}
	if err = outw.Flush(); err != nil {
		_, _ = fmt.Fprintf(stderr, "%s: %v\n", progName, err)
		return ExitFailure
	}

	return ExitOK
}

func invert(opts cli.Options, stdin io.Reader, out io.Writer, stderr io.Writer) error {
	in := stdin
	if opts.Input != cli.StdinPath {
		f, err := os.Open(opts.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	format := matio.Format{Comma: opts.CSV, Precision: opts.Precision}
	a, err := matio.Read(in, format)
	if err != nil {
		return err
	}

	gjOpts := []gaussjordan.Option{gaussjordan.WithPivotTolerance(opts.Tolerance)}
	if opts.Strict {
		gjOpts = append(gjOpts, gaussjordan.WithStrictSingular())
	}
	inv, res, err := gaussjordan.Inverse(a, gjOpts...)
	if err != nil {
		return err
	}
	if res.Degenerate() {
		_, _ = fmt.Fprintf(stderr, "%s: warning: matrix is singular or ill-conditioned; damped pivots %v\n", progName, res.Damped)
	}
	if res.NonFinite {
		_, _ = fmt.Fprintf(stderr, "%s: warning: inverse is not finite (overflow)\n", progName)
	}

	if err = matio.Write(out, inv, format); err != nil {
		return err
	}
	if !opts.Check {
		return nil
	}

	resid, err := diag.Residual(a, inv)
	if err != nil {
		return err
	}
	cond, err := diag.Condition(a)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "# residual: %g\n# condition: %g\n# swaps: %d\n", resid, cond, len(res.Swaps))

	return err
}
