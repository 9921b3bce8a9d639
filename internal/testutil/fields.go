package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-field/field/core"
	"github.com/cwbudde/algo-field/field/grid"
)

// Sine returns length samples of a sine completing cycles periods every
// period cells.
func Sine(cycles float64, period int, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * cycles / float64(period)
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// Noise returns uniform values in [-amplitude, amplitude] from a fixed seed.
func Noise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Ramp returns 0, 1, ..., n-1 converted to T.
func Ramp[T core.Scalar](n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = T(i)
	}
	return out
}

// Fill allocates m to width x height and writes values row-major. Missing
// values wrap around.
func Fill[T any](m grid.Map2D[T], width, height int, values []T) error {
	return grid.Generate(m, width, height, func(x, y int) T {
		if len(values) == 0 {
			var zero T
			return zero
		}
		return values[(y*width+x)%len(values)]
	})
}
