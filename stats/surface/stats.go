package surface

import (
	"math"

	"github.com/cwbudde/algo-field/field/core"
)

// Field is a row-major float map. noisemap.NoiseMap and noisemap.HeightMap
// satisfy it.
type Field[F core.Float] interface {
	Width() int
	Height() int
	Cells() []F
}

// Stats holds summary statistics over the cells of a map.
type Stats struct {
	Width  int
	Height int
	Cells  int
	Mean   float64
	RMS    float64
	Max    float64
	MaxX   int
	MaxY   int
	Min    float64
	MinX   int
	MinY   int
	Range  float64 // max - min
	Energy float64 // sum of squares
	// SignChanges counts horizontally or vertically adjacent cell pairs
	// with opposite signs, i.e. how often the zero level is crossed.
	SignChanges int
	Variance    float64
	StdDev      float64
	Skewness    float64
	Kurtosis    float64 // excess
}

// Calculate computes all statistics in a single pass using Welford's online
// algorithm for numerical stability on higher-order moments.
func Calculate[F core.Float](m Field[F]) Stats {
	s := NewStreamingStats[F]()
	cells := m.Cells()
	w := m.Width()
	for y := 0; y < m.Height(); y++ {
		s.UpdateRow(cells[y*w : (y+1)*w])
	}
	return s.Result()
}

// Moments returns the mean, population variance, skewness, and excess
// kurtosis of values.
func Moments[F core.Float](values []F) (mean, variance, skewness, kurtosis float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0
	}

	var m2, m3, m4 float64

	for i, v := range values {
		x := float64(v)
		ni := float64(i + 1)
		delta := x - mean
		deltaN := delta / ni
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * float64(i)

		m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*m2 - 4*deltaN*m3
		m3 += term1*deltaN*(float64(i)-1) - 3*deltaN*m2
		m2 += term1
		mean += deltaN
	}

	nf := float64(n)

	variance = m2 / nf
	if variance > 0 {
		skewness = (m3 / nf) / (variance * math.Sqrt(variance))
		kurtosis = (m4/nf)/(variance*variance) - 3
	}

	return mean, variance, skewness, kurtosis
}

// Coverage returns the fraction of cells strictly above level, e.g. the
// land share of a heightmap at a given sea level. An empty map yields 0.
func Coverage[F core.Float](m Field[F], level F) float64 {
	cells := m.Cells()
	if len(cells) == 0 {
		return 0
	}

	var above int
	for _, v := range cells {
		if v > level {
			above++
		}
	}
	return float64(above) / float64(len(cells))
}

// StreamingStats accumulates map statistics row by row, so a builder can
// measure tiles as it renders them. All rows must share the width of the
// first row; shorter or longer rows are ignored.
type StreamingStats[F core.Float] struct {
	width       int
	rows        int
	n           int
	mean        float64
	m2          float64
	m3          float64
	m4          float64
	sumSq       float64
	maxVal      float64
	maxPos      int
	minVal      float64
	minPos      int
	signChanges int
	prevRow     []F
}

// NewStreamingStats creates a new StreamingStats accumulator.
func NewStreamingStats[F core.Float]() *StreamingStats[F] {
	return &StreamingStats[F]{}
}

// UpdateRow adds one row of cells to the running statistics.
func (s *StreamingStats[F]) UpdateRow(row []F) {
	if len(row) == 0 {
		return
	}
	if s.rows == 0 {
		s.width = len(row)
		s.prevRow = make([]F, s.width)
	} else if len(row) != s.width {
		return
	}

	for i, v := range row {
		x := float64(v)
		s.n++
		ni := float64(s.n)

		// Welford update.
		delta := x - s.mean
		deltaN := delta / ni
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * float64(s.n-1)

		s.m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*s.m2 - 4*deltaN*s.m3
		s.m3 += term1*deltaN*(float64(s.n-1)-1) - 3*deltaN*s.m2
		s.m2 += term1
		s.mean += deltaN

		s.sumSq += x * x

		if s.n == 1 {
			s.maxVal, s.minVal = x, x
			s.maxPos, s.minPos = 0, 0
		} else {
			if x > s.maxVal {
				s.maxVal = x
				s.maxPos = s.n - 1
			}
			if x < s.minVal {
				s.minVal = x
				s.minPos = s.n - 1
			}
		}

		if i > 0 && oppositeSigns(row[i-1], v) {
			s.signChanges++
		}
		if s.rows > 0 && oppositeSigns(s.prevRow[i], v) {
			s.signChanges++
		}
	}

	copy(s.prevRow, row)
	s.rows++
}

// oppositeSigns compares signs directly, since the product of two tiny
// values can underflow to zero.
func oppositeSigns[F core.Float](a, b F) bool {
	return (a < 0 && b > 0) || (a > 0 && b < 0)
}

// Result computes the final statistics from accumulated rows.
func (s *StreamingStats[F]) Result() Stats {
	if s.n == 0 {
		return Stats{}
	}

	nf := float64(s.n)
	variance := s.m2 / nf

	var skewness, kurtosis float64
	if variance > 0 {
		skewness = (s.m3 / nf) / (variance * math.Sqrt(variance))
		kurtosis = (s.m4/nf)/(variance*variance) - 3
	}

	return Stats{
		Width:       s.width,
		Height:      s.rows,
		Cells:       s.n,
		Mean:        s.mean,
		RMS:         math.Sqrt(s.sumSq / nf),
		Max:         s.maxVal,
		MaxX:        s.maxPos % s.width,
		MaxY:        s.maxPos / s.width,
		Min:         s.minVal,
		MinX:        s.minPos % s.width,
		MinY:        s.minPos / s.width,
		Range:       s.maxVal - s.minVal,
		Energy:      s.sumSq,
		SignChanges: s.signChanges,
		Variance:    variance,
		StdDev:      math.Sqrt(variance),
		Skewness:    skewness,
		Kurtosis:    kurtosis,
	}
}

// Reset clears all accumulated data, allowing the StreamingStats to be reused.
func (s *StreamingStats[F]) Reset() {
	*s = StreamingStats[F]{}
}
