package layout

// Vector is the storage of one point's components: a slice for a width
// chosen at runtime, or one of the fixed-length arrays listed in
// StaticWidths.
type Vector interface {
	[]float64 | [1]float64 | [2]float64 | [4]float64 | [8]float64 |
		[16]float64 | [32]float64 | [64]float64 | [128]float64
}

// Fixed is the point storage of fixed-width builds.
type Fixed = [FixedWidth]float64

// StaticWidths lists the component counts that have a fixed-array Vector.
var StaticWidths = []int{1, 2, 4, 8, 16, 32, 64, 128}

// DefaultFill is the value every component is initialized to.
const DefaultFill = 1.0

const bytesPerValue = 8

// Option configures collection construction.
type Option func(*config)

type config struct {
	fill float64
}

func defaultConfig() config {
	return config{fill: DefaultFill}
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

// WithFill sets the value every component is initialized to.
func WithFill(v float64) Option {
	return func(c *config) {
		c.fill = v
	}
}

// Point is one multi-component sample of an AoS collection.
type Point[V Vector] struct {
	Components V
}

// SoA is a structure-of-arrays collection: one contiguous column per
// component, every column NumPoints long.
type SoA struct {
	Columns   [][]float64
	numPoints int
}

// NumPoints returns the number of points N.
func (s SoA) NumPoints() int { return s.numPoints }

// NumComponents returns the number of columns C.
func (s SoA) NumComponents() int { return len(s.Columns) }

// Bytes returns the size of the component payload.
func (s SoA) Bytes() int { return s.numPoints * len(s.Columns) * bytesPerValue }

// AoS is an array-of-structures collection: NumPoints points laid out one
// after another, each holding NumComponents values.
//
// With []float64 storage every point owns a separate allocation; with array
// storage the component values of all points are a single contiguous block.
type AoS[V Vector] struct {
	Points        []Point[V]
	numComponents int
}

// NumPoints returns the number of points N.
func (a AoS[V]) NumPoints() int { return len(a.Points) }

// NumComponents returns the number of components C of every point.
func (a AoS[V]) NumComponents() int { return a.numComponents }

// Bytes returns the size of the component payload.
func (a AoS[V]) Bytes() int { return len(a.Points) * a.numComponents * bytesPerValue }

// Width returns the component count of a point stored as V when numComponents
// are requested: the array length for fixed-width storage, numComponents
// clamped at zero for slice storage.
func Width[V Vector](numComponents int) int {
	var v V
	if _, ok := any(v).([]float64); ok {
		return max(numComponents, 0)
	}
	return len(v)
}

// IsStatic reports whether V is a fixed-length array.
func IsStatic[V Vector]() bool {
	var v V
	_, ok := any(v).([]float64)
	return !ok
}

// NewSoA builds numComponents columns of numPoints values.
func NewSoA(numPoints, numComponents int, opts ...Option) SoA {
	cfg := applyOptions(opts)
	numPoints = max(numPoints, 0)

	cols := make([][]float64, max(numComponents, 0))
	for c := range cols {
		col := make([]float64, numPoints)
		for p := range col {
			col[p] = cfg.fill
		}
		cols[c] = col
	}

	return SoA{Columns: cols, numPoints: numPoints}
}

// NewAoS builds numPoints points. For fixed-width V the array length is the
// component count and numComponents is ignored.
func NewAoS[V Vector](numPoints, numComponents int, opts ...Option) AoS[V] {
	cfg := applyOptions(opts)
	width := Width[V](numComponents)

	pts := make([]Point[V], max(numPoints, 0))
	for p := range pts {
		if s, ok := any(&pts[p].Components).(*[]float64); ok {
			*s = make([]float64, width)
		}
		for c := 0; c < width; c++ {
			pts[p].Components[c] = cfg.fill
		}
	}

	return AoS[V]{Points: pts, numComponents: width}
}

// Build materializes both layouts of the same point cloud. The SoA gets as
// many columns as the AoS has components, so for fixed-width V both use the
// array length.
func Build[V Vector](numPoints, numComponents int, opts ...Option) (SoA, AoS[V]) {
	aos := NewAoS[V](numPoints, numComponents, opts...)
	soa := NewSoA(numPoints, aos.NumComponents(), opts...)
	return soa, aos
}
