package noisemap

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-field/field/core"
	"github.com/cwbudde/algo-field/field/grid"
)

// HeightMap is the float64 counterpart of NoiseMap for pipelines that keep
// full precision between stages.
type HeightMap struct {
	grid.Map[float64, core.Float64]
}

var _ grid.Map2D[float64] = (*HeightMap)(nil)

// NewHeightMap returns an empty HeightMap.
func NewHeightMap(opts ...core.MapOption[float64]) *HeightMap {
	return &HeightMap{Map: *grid.New[float64, core.Float64](opts...)}
}

// NewHeightMapSized returns a zero-filled HeightMap of the given dimensions.
func NewHeightMapSized(width, height int, opts ...core.MapOption[float64]) (*HeightMap, error) {
	m := NewHeightMap(opts...)
	if err := m.Allocate(width, height); err != nil {
		return nil, err
	}
	return m, nil
}

// CopyFrom makes m a deep copy of src. See grid.Map.CopyFrom.
func (m *HeightMap) CopyFrom(src *HeightMap) error {
	if src == nil {
		return m.Map.CopyFrom(nil)
	}
	return m.Map.CopyFrom(&src.Map)
}

// Clone returns an independent deep copy of m.
func (m *HeightMap) Clone() *HeightMap {
	return &HeightMap{Map: *m.Map.Clone()}
}

// MinMax returns the lowest and highest value in the map, or {0, 0} for an
// empty map.
func (m *HeightMap) MinMax() Extrema[float64] {
	return minMax(m.Cells())
}

// Normalize linearly remaps all values onto [lo, hi]. A constant map is
// filled with lo; an empty map is left as is.
func (m *HeightMap) Normalize(lo, hi float64) {
	normalize(m.Cells(), lo, hi)
}

// Multiply scales every cell by the matching cell of mask, in place.
// A nil receiver or mask reports ErrDimensionMismatch.
func (m *HeightMap) Multiply(mask *HeightMap) error {
	if m == nil || mask == nil {
		return errNilMap()
	}
	if err := sameDimensions(&m.Map, &mask.Map); err != nil {
		return err
	}
	if m.Empty() {
		return nil
	}
	vecmath.MulBlockInPlace(m.Cells(), mask.Cells())
	return nil
}

// MultiplyInto sets dst to the cell-wise product of a and b, allocating dst
// to their dimensions. dst may not be a or b. A nil argument reports
// ErrDimensionMismatch and leaves dst untouched.
func MultiplyInto(dst, a, b *HeightMap) error {
	if dst == nil || a == nil || b == nil {
		return errNilMap()
	}
	if err := sameDimensions(&a.Map, &b.Map); err != nil {
		return err
	}
	if a.Empty() {
		dst.Reset()
		return nil
	}
	if err := dst.Allocate(a.Width(), a.Height()); err != nil {
		return err
	}
	vecmath.MulBlock(dst.Cells(), a.Cells(), b.Cells())
	return nil
}

func sameDimensions[T core.Scalar, N core.Traits[T]](a, b *grid.Map[T, N]) error {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return fmt.Errorf("noisemap: %dx%d vs %dx%d: %w",
			a.Width(), a.Height(), b.Width(), b.Height(), ErrDimensionMismatch)
	}
	return nil
}

func errNilMap() error {
	return fmt.Errorf("noisemap: nil map: %w", ErrDimensionMismatch)
}
