package bench

import (
	"testing"

	"github.com/cwbudde/algo-dod/internal/testutil"
	"github.com/cwbudde/algo-dod/layout"
)

var benchShapes = []testutil.Shape{
	{Points: 4096, Components: 1},
	{Points: 4096, Components: 16},
	{Points: 65536, Components: 4},
	{Points: 65536, Components: 64},
}

func BenchmarkSumSoA(b *testing.B) {
	for _, tc := range benchShapes {
		soa := layout.NewSoA(tc.Points, tc.Components)
		b.Run(tc.String(), func(b *testing.B) {
			b.SetBytes(int64(soa.Bytes()))
			for range b.N {
				_ = SumSoA(soa)
			}
		})
	}
}

func BenchmarkSumAoS(b *testing.B) {
	for _, tc := range benchShapes {
		aos := layout.NewAoS[[]float64](tc.Points, tc.Components)
		b.Run(tc.String(), func(b *testing.B) {
			b.SetBytes(int64(aos.Bytes()))
			for range b.N {
				_ = SumAoS(aos)
			}
		})
	}
}

func BenchmarkSumAoSFixed16(b *testing.B) {
	for _, n := range []int{4096, 65536} {
		aos := layout.NewAoS[[16]float64](n, 0)
		b.Run(testutil.Shape{Points: n, Components: 16}.String(), func(b *testing.B) {
			b.SetBytes(int64(aos.Bytes()))
			for range b.N {
				_ = SumAoS(aos)
			}
		})
	}
}

func BenchmarkInnerRepeat(b *testing.B) {
	soa, aos := layout.Build[[]float64](16384, 8)
	for _, k := range []int{1, 4} {
		b.Run("soa/k="+itoa(k), func(b *testing.B) {
			for range b.N {
				_ = SumSoA(soa, WithInnerRepeat(k))
			}
		})
		b.Run("aos/k="+itoa(k), func(b *testing.B) {
			for range b.N {
				_ = SumAoS(aos, WithInnerRepeat(k))
			}
		})
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
