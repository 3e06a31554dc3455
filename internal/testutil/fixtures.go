package testutil

import "strconv"

// Shape is one (points, components) case of a test grid.
type Shape struct {
	Points     int
	Components int
}

func (s Shape) String() string {
	return "n=" + strconv.Itoa(s.Points) + "/c=" + strconv.Itoa(s.Components)
}

// Shapes covers empty, single-element, odd and power-of-two sizes.
var Shapes = []Shape{
	{Points: 0, Components: 0},
	{Points: 0, Components: 4},
	{Points: 5, Components: 0},
	{Points: 1, Components: 1},
	{Points: 7, Components: 3},
	{Points: 1000, Components: 4},
	{Points: 1024, Components: 16},
	{Points: 4097, Components: 5},
}

// Filled returns a slice of length n with every element set to value.
func Filled(value float64, n int) []float64 {
	out := make([]float64, max(n, 0))
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	return Filled(1.0, n)
}
