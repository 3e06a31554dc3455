// Package sweep runs the layout benchmark over a grid of point and component
// counts and tabulates the timings.
//
// Every grid cell is one single-pass run of each layout. Cells are run with
// slice-backed points first and, when Config.Static is set, again with
// fixed-array points of the same width.
package sweep

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/cwbudde/algo-dod/bench"
	"github.com/cwbudde/algo-dod/layout"
)

var (
	// ErrEmptyGrid is returned when Points or Components is empty.
	ErrEmptyGrid = errors.New("sweep: empty grid")

	// ErrUnsupportedWidth is returned when a static run is requested for a
	// component count outside layout.StaticWidths.
	ErrUnsupportedWidth = errors.New("sweep: no static layout for component count")

	// ErrLayoutMismatch is returned when the two layouts produce different
	// totals.
	ErrLayoutMismatch = errors.New("sweep: layouts disagree")
)

// Config describes the grid.
type Config struct {
	Points      []int
	Components  []int
	Static      bool // also run fixed-array points
	InnerRepeat int  // <1 means bench.DefaultInnerRepeat
}

// Row is one grid cell.
type Row struct {
	NumPoints     int
	NumComponents int
	SoAMicros     int64
	AoSMicros     int64
	Static        bool
}

// Ratio returns AoS time over SoA time. Zero timings count as 1us.
func (r Row) Ratio() float64 {
	return float64(max(r.AoSMicros, 1)) / float64(max(r.SoAMicros, 1))
}

// Option configures a sweep.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger logs every finished cell at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

type runner func(numPoints int, opts ...bench.Option) bench.Report

// Run executes the grid. Components is the outer loop and Points the inner
// one; all slice-backed rows come before all fixed-array rows.
func Run(cfg Config, opts ...Option) ([]Row, error) {
	if len(cfg.Points) == 0 || len(cfg.Components) == 0 {
		return nil, ErrEmptyGrid
	}

	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	var statics []runner
	if cfg.Static {
		statics = make([]runner, len(cfg.Components))
		for i, c := range cfg.Components {
			statics[i] = staticRunner(c)
			if statics[i] == nil {
				return nil, fmt.Errorf("%w: %d", ErrUnsupportedWidth, c)
			}
		}
	}

	benchOpts := []bench.Option{bench.WithInnerRepeat(cfg.InnerRepeat)}
	cells := len(cfg.Points) * len(cfg.Components)
	if cfg.Static {
		cells *= 2
	}
	rows := make([]Row, 0, cells)

	for _, c := range cfg.Components {
		for _, n := range cfg.Points {
			row, err := cell(o.logger, bench.Run[[]float64](n, c, benchOpts...), false)
			if err != nil {
				return rows, err
			}
			rows = append(rows, row)
		}
	}

	for _, run := range statics {
		for _, n := range cfg.Points {
			row, err := cell(o.logger, run(n, benchOpts...), true)
			if err != nil {
				return rows, err
			}
			rows = append(rows, row)
		}
	}

	return rows, nil
}

func cell(logger *slog.Logger, r bench.Report, static bool) (Row, error) {
	row := Row{
		NumPoints:     r.NumPoints,
		NumComponents: r.NumComponents,
		SoAMicros:     r.SoA.Micros(),
		AoSMicros:     r.AoS.Micros(),
		Static:        static,
	}

	dev, err := r.Deviation()
	if err != nil {
		return row, err
	}
	if dev != 0 {
		return row, fmt.Errorf("%w: n=%d c=%d deviation %g", ErrLayoutMismatch, r.NumPoints, r.NumComponents, dev)
	}

	logger.Debug("cell",
		"points", row.NumPoints,
		"components", row.NumComponents,
		"static", static,
		"soa_us", row.SoAMicros,
		"aos_us", row.AoSMicros,
		"ratio", row.Ratio(),
	)
	return row, nil
}

func staticRunner(width int) runner {
	switch width {
	case 1:
		return fixed[[1]float64]
	case 2:
		return fixed[[2]float64]
	case 4:
		return fixed[[4]float64]
	case 8:
		return fixed[[8]float64]
	case 16:
		return fixed[[16]float64]
	case 32:
		return fixed[[32]float64]
	case 64:
		return fixed[[64]float64]
	case 128:
		return fixed[[128]float64]
	default:
		return nil
	}
}

func fixed[V layout.Vector](numPoints int, opts ...bench.Option) bench.Report {
	return bench.Run[V](numPoints, 0, opts...)
}
