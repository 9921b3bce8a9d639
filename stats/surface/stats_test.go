package surface

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-field/field/core"
	"github.com/cwbudde/algo-field/field/grid"
	"github.com/cwbudde/algo-field/field/noisemap"
	"github.com/cwbudde/algo-field/internal/testutil"
)

const tol = 1e-12

func heightMap(t *testing.T, w, h int, values []float64) *noisemap.HeightMap {
	t.Helper()
	m := noisemap.NewHeightMap()
	if err := testutil.Fill(grid.Map2D[float64](m), w, h, values); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	return m
}

func TestCalculateEmpty(t *testing.T) {
	s := Calculate[float64](noisemap.NewHeightMap())
	if s != (Stats{}) {
		t.Fatalf("Calculate(empty) = %+v, want zero Stats", s)
	}
}

func TestCalculateBasic(t *testing.T) {
	// 3 -1
	// 7  2
	m := heightMap(t, 2, 2, []float64{3, -1, 7, 2})
	s := Calculate[float64](m)

	if s.Width != 2 || s.Height != 2 || s.Cells != 4 {
		t.Fatalf("size = %dx%d (%d cells), want 2x2 (4)", s.Width, s.Height, s.Cells)
	}
	if !core.NearlyEqual(s.Mean, 2.75, tol) {
		t.Fatalf("Mean = %v, want 2.75", s.Mean)
	}
	if s.Min != -1 || s.MinX != 1 || s.MinY != 0 {
		t.Fatalf("Min = %v at (%d, %d), want -1 at (1, 0)", s.Min, s.MinX, s.MinY)
	}
	if s.Max != 7 || s.MaxX != 0 || s.MaxY != 1 {
		t.Fatalf("Max = %v at (%d, %d), want 7 at (0, 1)", s.Max, s.MaxX, s.MaxY)
	}
	if s.Range != 8 {
		t.Fatalf("Range = %v, want 8", s.Range)
	}
	if s.Energy != 63 {
		t.Fatalf("Energy = %v, want 63", s.Energy)
	}
	if !core.NearlyEqual(s.RMS, math.Sqrt(63.0/4), tol) {
		t.Fatalf("RMS = %v, want %v", s.RMS, math.Sqrt(63.0/4))
	}
	// Horizontal: (3,-1). Vertical: (-1,2).
	if s.SignChanges != 2 {
		t.Fatalf("SignChanges = %d, want 2", s.SignChanges)
	}
}

func TestCalculateMatchesMoments(t *testing.T) {
	values := testutil.Noise(3, 2, 96)
	m := heightMap(t, 12, 8, values)

	s := Calculate[float64](m)
	mean, variance, skew, kurt := Moments(values)

	if !core.NearlyEqual(s.Mean, mean, 1e-10) || !core.NearlyEqual(s.Variance, variance, 1e-10) {
		t.Fatalf("mean/var = %v/%v, want %v/%v", s.Mean, s.Variance, mean, variance)
	}
	if !core.NearlyEqual(s.Skewness, skew, 1e-9) || !core.NearlyEqual(s.Kurtosis, kurt, 1e-9) {
		t.Fatalf("skew/kurt = %v/%v, want %v/%v", s.Skewness, s.Kurtosis, skew, kurt)
	}
	if !core.NearlyEqual(s.StdDev, math.Sqrt(variance), 1e-10) {
		t.Fatalf("StdDev = %v, want %v", s.StdDev, math.Sqrt(variance))
	}
}

func TestCalculateNoiseMap(t *testing.T) {
	m, err := noisemap.NewSized(4, 4)
	if err != nil {
		t.Fatalf("NewSized: %v", err)
	}
	m.Fill(0.5)
	m.Set(3, 2, -0.5)

	s := Calculate[float32](m)
	ex := m.MinMax()
	if s.Min != float64(ex.Min) || s.Max != float64(ex.Max) {
		t.Fatalf("extrema = [%v, %v], want MinMax %+v", s.Min, s.Max, ex)
	}
	if s.MinX != 3 || s.MinY != 2 {
		t.Fatalf("Min at (%d, %d), want (3, 2)", s.MinX, s.MinY)
	}
	// Left, above and below neighbours differ in sign.
	if s.SignChanges != 3 {
		t.Fatalf("SignChanges = %d, want 3", s.SignChanges)
	}
}

func TestSignChangesTinyValues(t *testing.T) {
	m, err := noisemap.NewSized(2, 2)
	if err != nil {
		t.Fatalf("NewSized: %v", err)
	}
	m.Set(0, 0, 1e-30)
	m.Set(1, 0, -1e-30)
	m.Set(0, 1, -1e-30)
	m.Set(1, 1, 0)

	// The float32 products of these pairs underflow to zero. A zero cell
	// crosses nothing.
	if got := Calculate[float32](m).SignChanges; got != 2 {
		t.Fatalf("SignChanges = %d, want 2", got)
	}

	s := NewStreamingStats[float32]()
	s.UpdateRow([]float32{1e-30, -1e-30})
	if got := s.Result().SignChanges; got != 1 {
		t.Fatalf("streaming SignChanges = %d, want 1", got)
	}
}

func TestMomentsConstant(t *testing.T) {
	mean, variance, skew, kurt := Moments([]float32{2, 2, 2})
	if mean != 2 || variance != 0 || skew != 0 || kurt != 0 {
		t.Fatalf("Moments = %v %v %v %v, want 2 0 0 0", mean, variance, skew, kurt)
	}
	if mean, _, _, _ := Moments[float64](nil); mean != 0 {
		t.Fatalf("Moments(nil) mean = %v, want 0", mean)
	}
}

func TestCoverage(t *testing.T) {
	m := heightMap(t, 4, 1, []float64{-1, 0, 0.5, 2})
	if got := Coverage[float64](m, 0); got != 0.5 {
		t.Fatalf("Coverage(0) = %v, want 0.5", got)
	}
	if got := Coverage[float64](m, -5); got != 1 {
		t.Fatalf("Coverage(-5) = %v, want 1", got)
	}
	if got := Coverage[float64](noisemap.NewHeightMap(), 0); got != 0 {
		t.Fatalf("Coverage(empty) = %v, want 0", got)
	}
}

func TestStreamingMatchesCalculate(t *testing.T) {
	values := testutil.Noise(11, 1, 40)
	m := heightMap(t, 8, 5, values)
	want := Calculate[float64](m)

	s := NewStreamingStats[float64]()
	row := make([]float64, 0, 8)
	for y := 0; y < m.Height(); y++ {
		row = m.Row(y, row)
		s.UpdateRow(row)
	}
	if got := s.Result(); got != want {
		t.Fatalf("streaming = %+v\nwant %+v", got, want)
	}
}

func TestStreamingIgnoresMismatchedRows(t *testing.T) {
	s := NewStreamingStats[float64]()
	s.UpdateRow([]float64{1, 2})
	s.UpdateRow([]float64{1, 2, 3})
	s.UpdateRow(nil)
	r := s.Result()
	if r.Height != 1 || r.Cells != 2 {
		t.Fatalf("rows/cells = %d/%d, want 1/2", r.Height, r.Cells)
	}
}

func TestStreamingReset(t *testing.T) {
	s := NewStreamingStats[float32]()
	s.UpdateRow([]float32{1, -1})
	s.Reset()
	if r := s.Result(); r != (Stats{}) {
		t.Fatalf("Result after Reset = %+v, want zero Stats", r)
	}
	s.UpdateRow([]float32{4})
	if r := s.Result(); r.Max != 4 || r.Width != 1 {
		t.Fatalf("Result = %+v, want single cell 4", r)
	}
}
