package noisemap

import (
	"github.com/cwbudde/algo-field/field/core"
	"github.com/cwbudde/algo-field/field/grid"
)

// NoiseMap is a 2D array of float32 noise values, typically used as a
// terrain height map or a grayscale texture. The border value defaults
// to 0.
type NoiseMap struct {
	grid.Map[float32, core.Float32]
}

var _ grid.Map2D[float32] = (*NoiseMap)(nil)

// New returns an empty NoiseMap.
func New(opts ...core.MapOption[float32]) *NoiseMap {
	return &NoiseMap{Map: *grid.New[float32, core.Float32](opts...)}
}

// NewSized returns a zero-filled NoiseMap of the given dimensions.
func NewSized(width, height int, opts ...core.MapOption[float32]) (*NoiseMap, error) {
	m := New(opts...)
	if err := m.Allocate(width, height); err != nil {
		return nil, err
	}
	return m, nil
}

// CopyFrom makes m a deep copy of src. See grid.Map.CopyFrom.
func (m *NoiseMap) CopyFrom(src *NoiseMap) error {
	if src == nil {
		return m.Map.CopyFrom(nil)
	}
	return m.Map.CopyFrom(&src.Map)
}

// Clone returns an independent deep copy of m.
func (m *NoiseMap) Clone() *NoiseMap {
	return &NoiseMap{Map: *m.Map.Clone()}
}

// MinMax returns the lowest and highest value in the map, or {0, 0} for an
// empty map.
func (m *NoiseMap) MinMax() Extrema[float32] {
	return minMax(m.Cells())
}

// Normalize linearly remaps all values onto [lo, hi]. A constant map is
// filled with lo; an empty map is left as is.
func (m *NoiseMap) Normalize(lo, hi float32) {
	normalize(m.Cells(), lo, hi)
}
