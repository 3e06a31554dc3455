// Package host describes the machine a benchmark runs on.
//
// The description is attached to diagnostic logs so that timings from
// different machines can be told apart. SIMD capabilities come from the same
// detector the vector kernels dispatch on.
package host

import (
	"log/slog"
	"runtime"
	"unsafe"

	"github.com/cwbudde/algo-vecmath/cpu"
	xcpu "golang.org/x/sys/cpu"
)

// Info describes the benchmark host.
type Info struct {
	GoVersion     string
	OS            string
	Arch          string
	NumCPU        int
	CacheLineSize int // bytes
	SIMD          cpu.SIMDLevel
}

// Describe returns the description of the current host.
func Describe() Info {
	return describe(cpu.DetectFeatures())
}

func describe(f cpu.Features) Info {
	arch := f.Architecture
	if arch == "" {
		arch = runtime.GOARCH
	}

	return Info{
		GoVersion:     runtime.Version(),
		OS:            runtime.GOOS,
		Arch:          arch,
		NumCPU:        runtime.NumCPU(),
		CacheLineSize: int(unsafe.Sizeof(xcpu.CacheLinePad{})),
		SIMD:          BestSIMD(f),
	}
}

// BestSIMD returns the widest SIMD extension reported by f.
func BestSIMD(f cpu.Features) cpu.SIMDLevel {
	if f.ForceGeneric {
		return cpu.SIMDNone
	}

	switch {
	case f.HasAVX512:
		return cpu.SIMDAVX512
	case f.HasAVX2:
		return cpu.SIMDAVX2
	case f.HasAVX:
		return cpu.SIMDAVX
	case f.HasSSE2:
		return cpu.SIMDSSE2
	case f.HasNEON:
		return cpu.SIMDNEON
	default:
		return cpu.SIMDNone
	}
}

// LogValue implements slog.LogValuer.
func (i Info) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("go", i.GoVersion),
		slog.String("os", i.OS),
		slog.String("arch", i.Arch),
		slog.Int("cpus", i.NumCPU),
		slog.Int("cache_line", i.CacheLineSize),
		slog.String("simd", i.SIMD.String()),
	)
}
