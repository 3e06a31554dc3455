// Package bench times per-component sums over the two point-cloud layouts
// built by package layout.
//
// SumSoA and SumAoS are the same algorithm: for every component, repeat
// InnerRepeat times, add that component of every point in ascending point
// order into a plain float64 running total. Only the memory access pattern
// differs, contiguous columns for SoA and strided records for AoS.
//
// The measured window starts immediately before the first accumulation and
// ends immediately after the last one. Building the collections is never
// part of it.
package bench

import (
	"time"

	"github.com/cwbudde/algo-dod/layout"
)

// DefaultInnerRepeat is the number of passes over the points per component.
const DefaultInnerRepeat = 1

// Result holds the per-component totals of one summation pass and the time
// it took.
type Result struct {
	Totals  []float64 // Totals[c] is the sum of component c over all points
	Elapsed time.Duration
}

// Micros returns the elapsed time in whole microseconds, truncated.
func (r Result) Micros() int64 {
	return r.Elapsed.Microseconds()
}

// Option configures a summation pass.
type Option func(*config)

type config struct {
	innerRepeat int
	now         func() time.Time
}

func defaultConfig() config {
	return config{
		innerRepeat: DefaultInnerRepeat,
		now:         time.Now,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithInnerRepeat sets how many times each component is summed. Every pass
// adds into the same total, so totals scale with k. Values below 1 are
// ignored.
func WithInnerRepeat(k int) Option {
	return func(c *config) {
		if k >= 1 {
			c.innerRepeat = k
		}
	}
}

// WithClock replaces time.Now as the source of the start and end readings.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}

// SumSoA sums every column of s.
func SumSoA(s layout.SoA, opts ...Option) Result {
	cfg := applyOptions(opts)
	cols := s.Columns
	totals := make([]float64, len(cols))

	start := cfg.now()
	for c, col := range cols {
		for range cfg.innerRepeat {
			for p := 0; p < len(col); p++ {
				totals[c] += col[p]
			}
		}
	}
	end := cfg.now()

	return Result{Totals: totals, Elapsed: elapsed(start, end)}
}

// SumAoS sums every component across the points of a.
func SumAoS[V layout.Vector](a layout.AoS[V], opts ...Option) Result {
	cfg := applyOptions(opts)
	pts := a.Points
	totals := make([]float64, a.NumComponents())

	start := cfg.now()
	for c := range totals {
		for range cfg.innerRepeat {
			for p := 0; p < len(pts); p++ {
				totals[c] += pts[p].Components[c]
			}
		}
	}
	end := cfg.now()

	return Result{Totals: totals, Elapsed: elapsed(start, end)}
}

func elapsed(start, end time.Time) time.Duration {
	return max(end.Sub(start), 0)
}
