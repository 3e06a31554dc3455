// Command dodsweep runs the SoA/AoS benchmark over a grid of point and
// component counts and prints one CSV row per run.
//
// Usage:
//
//	dodsweep [flags]
//
// Examples:
//
//	dodsweep -points 1000,10000,100000 -components 1,2,4,8,16
//	dodsweep -static=false -components 3,5,7
//	dodsweep -v -repeat 10 > last_expt.csv
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-dod/sweep"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("dodsweep", flag.ContinueOnError)
	fs.SetOutput(stderr)
	points := fs.String("points", "1000,10000,100000,1000000", "comma-separated point counts")
	components := fs.String("components", "1,2,4,8,16,32,64", "comma-separated component counts")
	static := fs.Bool("static", true, "also run fixed-array points (widths 1,2,4,...,128)")
	repeat := fs.Int("repeat", 1, "inner repeat count")
	verbose := fs.Bool("v", false, "log every run on stderr")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: dodsweep [flags]\n\n")
		fmt.Fprintf(stderr, "Runs the SoA/AoS benchmark over a grid and prints CSV.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return 1
	}

	cfg := sweep.Config{Static: *static, InnerRepeat: *repeat}
	var err error
	if cfg.Points, err = parseList(*points); err != nil {
		fmt.Fprintf(stderr, "error: -points: %v\n", err)
		return 1
	}
	if cfg.Components, err = parseList(*components); err != nil {
		fmt.Fprintf(stderr, "error: -components: %v\n", err)
		return 1
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	rows, err := sweep.Run(cfg, sweep.WithLogger(logger))
	if err != nil {
		logger.Error("sweep failed", "error", err)
		return 1
	}
	if err := sweep.WriteCSV(stdout, rows); err != nil {
		fmt.Fprintf(stderr, "error: failed to write output: %v\n", err)
		return 1
	}
	return 0
}

func parseList(s string) ([]int, error) {
	var out []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid count %q", field)
		}
		out = append(out, n)
	}
	return out, nil
}
