package surface

import (
	"math"
	"strconv"
	"testing"

	"github.com/cwbudde/algo-field/field/noisemap"
)

func makeBenchMap(b *testing.B, n int) *noisemap.HeightMap {
	b.Helper()
	m, err := noisemap.NewHeightMapSized(n, n)
	if err != nil {
		b.Fatal(err)
	}
	for i := range m.Cells() {
		m.Cells()[i] = math.Sin(2 * math.Pi * float64(i) / float64(n))
	}
	return m
}

func BenchmarkCalculate(b *testing.B) {
	for _, n := range []int{16, 64, 256, 1024} {
		m := makeBenchMap(b, n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * n * 8))

			for range b.N {
				Calculate[float64](m)
			}
		})
	}
}
