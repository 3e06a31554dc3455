// Command dod times a per-component sum over the same point cloud stored as
// a structure of arrays (SoA) and as an array of structures (AoS).
//
// Usage:
//
//	dod [flags] <num points> <num components>
//
// Built with -tags fixedwidth, points are fixed-length arrays of
// layout.FixedWidth components and only <num points> is taken:
//
//	dod [flags] <num points>
//
// Flags:
//
//	-v         debug log on stderr (host, sizes, checksums)
//	-totals    print the per-component totals of both layouts
//	-repeat k  sum every component k times
//	-pin       pin the benchmark thread to one CPU (Linux only)
//
// Negative counts must follow "--" so they are not read as flags. They
// produce empty collections.
//
// Output:
//
//	soa: 734us
//	aos: 2563us
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/cwbudde/algo-dod/bench"
	"github.com/cwbudde/algo-dod/internal/affinity"
	"github.com/cwbudde/algo-dod/internal/host"
)

const (
	exitOK      = 0
	exitUsage   = 1
	exitBadArgs = 2
)

type options struct {
	verbose bool
	totals  bool
	pin     bool
	repeat  int
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	prog := "dod"
	if len(args) > 0 {
		prog, args = args[0], args[1:]
	}
	usage := usageLine(prog)

	if len(args) == 1 && (args[0] == "-h" || args[0] == "--help") {
		fmt.Fprintln(stdout, usage)
		return exitOK
	}

	var opts options
	fs := flag.NewFlagSet(prog, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&opts.verbose, "v", false, "debug log on stderr")
	fs.BoolVar(&opts.totals, "totals", false, "print per-component totals")
	fs.BoolVar(&opts.pin, "pin", false, "pin the benchmark thread to one CPU")
	fs.IntVar(&opts.repeat, "repeat", bench.DefaultInnerRepeat, "inner repeat count")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stdout, usage)
			return exitOK
		}
		incorrectUsage(stdout, usage)
		return exitUsage
	}
	if fs.NArg() != numArgsRequired {
		incorrectUsage(stdout, usage)
		return exitUsage
	}

	numPoints, err := parseCount("num points", fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitBadArgs
	}
	numComponents, err := componentCount(fs.Args())
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitBadArgs
	}

	logger := newLogger(stderr, opts.verbose)
	logger.Debug("host", "host", host.Describe())

	if opts.pin {
		cpu, restore, err := affinity.Pin()
		if err != nil {
			logger.Warn("cpu pinning unavailable", "error", err)
		} else {
			defer restore()
			logger.Debug("pinned", "cpu", cpu)
		}
	}

	r := runLayouts(numPoints, numComponents, bench.WithInnerRepeat(opts.repeat))
	if err := report(stdout, r, opts.totals); err != nil {
		fmt.Fprintf(stderr, "error: failed to write output: %v\n", err)
		return exitUsage
	}

	logger.Debug("done",
		"points", r.NumPoints,
		"components", r.NumComponents,
		"bytes", r.Bytes,
		"repeat", opts.repeat,
		"soa_checksum", r.SoA.Checksum(),
		"aos_checksum", r.AoS.Checksum(),
	)
	dev, err := r.Deviation()
	switch {
	case err != nil:
		logger.Warn("layouts disagree", "error", err)
	case dev != 0:
		logger.Warn("layouts disagree", "deviation", dev)
	}

	return exitOK
}

func incorrectUsage(w io.Writer, usage string) {
	fmt.Fprintln(w, "incorrect usage")
	fmt.Fprintln(w, usage)
}

func parseCount(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, s)
	}
	return n, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func report(w io.Writer, r bench.Report, totals bool) error {
	if _, err := fmt.Fprintf(w, "soa: %dus\n", r.SoA.Micros()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "aos: %dus\n", r.AoS.Micros()); err != nil {
		return err
	}
	if !totals {
		return nil
	}
	for c := range r.SoA.Totals {
		if _, err := fmt.Fprintf(w, "%d %g %g\n", c, r.SoA.Totals[c], r.AoS.Totals[c]); err != nil {
			return err
		}
	}
	return nil
}
