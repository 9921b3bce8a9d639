package noisemap

import (
	"math"

	"github.com/cwbudde/algo-field/field/core"
)

// Extrema is the value range of a map.
type Extrema[F core.Float] struct {
	Min F
	Max F
}

// Range returns Max - Min.
func (e Extrema[F]) Range() F {
	return e.Max - e.Min
}

// minMax scans values once. An empty slice yields {0, 0}.
//
// After any update min <= max, so a value below min cannot also be above
// max and the else-branch loses no extremum.
func minMax[F core.Float](values []F) Extrema[F] {
	if len(values) == 0 {
		return Extrema[F]{}
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		} else if v > hi {
			hi = v
		}
	}
	return Extrema[F]{Min: lo, Max: hi}
}

// normalize remaps values linearly from their extrema onto [lo, hi].
// A constant slice is filled with lo.
func normalize[F core.Float](values []F, lo, hi F) {
	ex := minMax(values)
	span := ex.Range()
	if span == 0 {
		for i := range values {
			values[i] = lo
		}
		return
	}

	// A span wider than the type's range overflows; both halves of it
	// still fit. Offsets are divided by the span rather than multiplied by
	// its reciprocal, which overflows for subnormal spans.
	half := F(1)
	if math.IsInf(float64(span), 0) {
		half = 0.5
		span = ex.Max*half - ex.Min*half
	}
	base := ex.Min * half
	for i, v := range values {
		t := (v*half - base) / span
		values[i] = core.Clamp(lo+t*(hi-lo), lo, hi)
	}
}
