//go:build !fixedwidth

package main

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validArgs(points string) []string {
	return []string{points, "4"}
}

func componentsFor(args []string) int {
	n, _ := strconv.Atoi(args[1])
	return n
}

func TestUsageLineVariable(t *testing.T) {
	assert.Equal(t, "Usage: dod [flags] <num points> <num components>", usageLine("dod"))
}

func TestOnePositionalIsIncorrect(t *testing.T) {
	code, out, _ := runCapture("1000")

	assert.Equal(t, exitUsage, code)
	assert.Contains(t, out, "incorrect usage")
}

func TestInvalidComponents(t *testing.T) {
	code, _, errOut := runCapture("10", "x")

	assert.Equal(t, exitBadArgs, code)
	assert.Contains(t, errOut, `invalid num components "x"`)
}

func TestZeroComponents(t *testing.T) {
	code, out, _ := runCapture("-totals", "10", "0")

	assert.Equal(t, exitOK, code)
	assert.Regexp(t, `^soa: \d+us\naos: \d+us\n$`, out)
}
