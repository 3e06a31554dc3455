// Package layout builds the two equivalent in-memory representations of a
// point cloud used by the benchmark.
//
// A cloud of N points with C components each is materialized twice:
//
//   - SoA (structure of arrays): C contiguous columns of N values.
//   - AoS (array of structures): N contiguous points of C values.
//
// Both hold the same logical values; only the physical layout differs.
//
// The component storage of an AoS point is a type parameter. Use []float64
// for a component count chosen at runtime, or a fixed-length array such as
// Fixed ([FixedWidth]float64) when the width is known at compile time:
//
//	soa, aos := layout.Build[[]float64](1000, 4)
//	_, fixed := layout.Build[layout.Fixed](1000, 0) // FixedWidth components
//
// Sizes are not validated. Zero or negative counts produce empty collections.
package layout
