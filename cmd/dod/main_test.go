package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCapture(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(append([]string{"dod"}, args...), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestHelp(t *testing.T) {
	for _, arg := range []string{"-h", "--help", "-help"} {
		t.Run(arg, func(t *testing.T) {
			code, out, errOut := runCapture(arg)

			assert.Equal(t, exitOK, code)
			assert.Equal(t, usageLine("dod")+"\n", out)
			assert.Empty(t, errOut)
		})
	}
}

func TestIncorrectUsage(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{name: "no args", args: nil},
		{name: "too many", args: append(validArgs("10"), "7")},
		{name: "unknown flag", args: append([]string{"-bogus"}, validArgs("10")...)},
		{name: "help after counts", args: append(validArgs("10"), "--help")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, out, _ := runCapture(tc.args...)

			assert.Equal(t, exitUsage, code)
			assert.Equal(t, "incorrect usage\n"+usageLine("dod")+"\n", out)
		})
	}
}

func TestSuccessOutput(t *testing.T) {
	code, out, errOut := runCapture(validArgs("1000")...)

	require.Equal(t, exitOK, code, errOut)
	assert.Regexp(t, `^soa: \d+us\naos: \d+us\n$`, out)
	assert.Empty(t, errOut)
}

func TestZeroPoints(t *testing.T) {
	code, out, _ := runCapture(append([]string{"-totals"}, validArgs("0")...)...)

	require.Equal(t, exitOK, code)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2+componentsFor(validArgs("0")))
	for _, line := range lines[2:] {
		assert.Regexp(t, `^\d+ 0 0$`, line)
	}
}

func TestNegativePointsAfterDashDash(t *testing.T) {
	code, out, _ := runCapture(append([]string{"--"}, validArgs("-5")...)...)

	require.Equal(t, exitOK, code)
	assert.Regexp(t, `^soa: \d+us\naos: \d+us\n$`, out)
}

func TestTotals(t *testing.T) {
	code, out, _ := runCapture(append([]string{"-totals", "-repeat", "3"}, validArgs("100")...)...)

	require.Equal(t, exitOK, code)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2+componentsFor(validArgs("100")))
	assert.True(t, strings.HasPrefix(lines[0], "soa: "))
	assert.True(t, strings.HasPrefix(lines[1], "aos: "))
	assert.Equal(t, "0 300 300", lines[2])
}

func TestInvalidNumber(t *testing.T) {
	code, out, errOut := runCapture(validArgs("lots")...)

	assert.Equal(t, exitBadArgs, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, `invalid num points "lots"`)
}

func TestVerboseLogsToStderr(t *testing.T) {
	code, out, errOut := runCapture(append([]string{"-v"}, validArgs("64")...)...)

	require.Equal(t, exitOK, code)
	assert.Regexp(t, `^soa: \d+us\naos: \d+us\n$`, out)
	assert.Contains(t, errOut, "level=DEBUG")
	assert.Contains(t, errOut, "host.simd=")
	assert.Contains(t, errOut, "soa_checksum=")
	assert.NotContains(t, errOut, "layouts disagree")
}

func TestPin(t *testing.T) {
	code, out, _ := runCapture(append([]string{"-pin"}, validArgs("128")...)...)

	require.Equal(t, exitOK, code)
	assert.Regexp(t, `^soa: \d+us\naos: \d+us\n$`, out)
}
