//go:build fixedwidth

package main

import (
	"fmt"

	"github.com/cwbudde/algo-dod/bench"
	"github.com/cwbudde/algo-dod/layout"
)

const numArgsRequired = 1

func usageLine(prog string) string {
	return fmt.Sprintf("Usage: %s [flags] <num points> (num components is compiled to be %d)", prog, layout.FixedWidth)
}

func componentCount([]string) (int, error) {
	return layout.FixedWidth, nil
}

func runLayouts(numPoints, numComponents int, opts ...bench.Option) bench.Report {
	return bench.Run[layout.Fixed](numPoints, numComponents, opts...)
}
