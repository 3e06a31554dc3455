//go:build !fixedwidth

package main

import "github.com/cwbudde/algo-dod/bench"

const numArgsRequired = 2

func usageLine(prog string) string {
	return "Usage: " + prog + " [flags] <num points> <num components>"
}

func componentCount(args []string) (int, error) {
	return parseCount("num components", args[1])
}

func runLayouts(numPoints, numComponents int, opts ...bench.Option) bench.Report {
	return bench.Run[[]float64](numPoints, numComponents, opts...)
}
