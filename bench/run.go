package bench

import "github.com/cwbudde/algo-dod/layout"

// Report is the outcome of one benchmark run over both layouts.
type Report struct {
	NumPoints     int
	NumComponents int
	Bytes         int // payload size of one layout
	SoA           Result
	AoS           Result
}

// Deviation returns the largest absolute difference between the SoA and AoS
// totals.
func (r Report) Deviation() (float64, error) {
	return Compare(r.SoA, r.AoS)
}

// Run builds both layouts of numPoints points and sums them, SoA first. For
// fixed-width V the component count is the array length and numComponents
// is ignored.
func Run[V layout.Vector](numPoints, numComponents int, opts ...Option) Report {
	soa, aos := layout.Build[V](numPoints, numComponents)

	soaRes := SumSoA(soa, opts...)
	aosRes := SumAoS(aos, opts...)

	return Report{
		NumPoints:     aos.NumPoints(),
		NumComponents: aos.NumComponents(),
		Bytes:         soa.Bytes(),
		SoA:           soaRes,
		AoS:           aosRes,
	}
}
