// Package cli parses matinv command-line flags.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"math"

	"github.com/katalvlaran/matinv/gaussjordan"
	"github.com/katalvlaran/matinv/internal/version"
)

// StdinPath names standard input as the matrix source.
const StdinPath = "-"

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Input string // file path or StdinPath
	CSV   bool

	// Inversion
	Tolerance float64
	Strict    bool

	// Output
	Precision int // -1 = shortest round-trip
	Check     bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: invert a square matrix by Gauss-Jordan elimination

Version: %s

Usage: %s [flags] [file]   (reads stdin when file is absent or '-')
`, name, version.Version, name)
		fs.PrintDefaults()
	}

	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.Float64Var(&opt.Tolerance, "tol", gaussjordan.DefaultPivotTolerance, "pivot tolerance; smaller pivots trigger a row swap or damping")
	fs.BoolVar(&opt.Strict, "strict", false, "treat a singular matrix as an error instead of damping [false]")
	fs.IntVar(&opt.Precision, "precision", -1, "significant digits in output (-1 = shortest exact) [-1]")
	fs.BoolVar(&opt.CSV, "csv", false, "comma-separated input and output [false]")
	fs.BoolVar(&opt.Check, "check", false, "append residual and condition number as comment lines [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	switch fs.NArg() {
	case 0:
		opt.Input = StdinPath
	case 1:
		opt.Input = fs.Arg(0)
	default:
		return opt, fmt.Errorf("expected at most one input file, got %d", fs.NArg())
	}

	// Validation
	if math.IsNaN(opt.Tolerance) || math.IsInf(opt.Tolerance, 0) || opt.Tolerance <= 0 {
		return opt, errors.New("-tol must be finite and > 0")
	}
	if opt.Precision < -1 {
		return opt, errors.New("-precision must be ≥ -1")
	}

	return opt, nil
}
