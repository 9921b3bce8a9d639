package grid

import (
	"fmt"

	"github.com/cwbudde/algo-field/field/core"
)

// Map is a 2D array of T addressed by (x, y). N supplies T's numeric traits.
type Map[T core.Scalar, N core.Traits[T]] struct {
	values      []T
	width       int
	height      int
	borderValue T
	maxWidth    int
	maxHeight   int
}

// New returns an empty map.
func New[T core.Scalar, N core.Traits[T]](opts ...core.MapOption[T]) *Map[T, N] {
	cfg := core.ApplyMapOptions(opts...)
	return &Map[T, N]{
		borderValue: cfg.BorderValue,
		maxWidth:    cfg.MaxWidth,
		maxHeight:   cfg.MaxHeight,
	}
}

// NewSized returns a zero-filled map of the given dimensions.
func NewSized[T core.Scalar, N core.Traits[T]](width, height int, opts ...core.MapOption[T]) (*Map[T, N], error) {
	m := New[T, N](opts...)
	if err := m.Allocate(width, height); err != nil {
		return nil, err
	}
	return m, nil
}

// Allocate replaces the map's storage with width*height zeroed cells.
// Previous contents are discarded. On error the map is left unchanged.
func (m *Map[T, N]) Allocate(width, height int) error {
	n, err := m.cellCount(width, height)
	if err != nil {
		return err
	}

	if cap(m.values) >= n {
		m.values = m.values[:n]
		clear(m.values)
	} else {
		m.values = make([]T, n)
	}
	m.width = width
	m.height = height
	return nil
}

// Reset releases the storage and returns the map to the empty state.
// The border value and dimension bound are kept.
func (m *Map[T, N]) Reset() {
	m.values = nil
	m.width = 0
	m.height = 0
}

func (m *Map[T, N]) cellCount(width, height int) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("grid: allocate %dx%d: %w", width, height, ErrInvalidDimension)
	}
	if m.HasMaxDimension() && (width > m.maxWidth || height > m.maxHeight) {
		return 0, fmt.Errorf("grid: allocate %dx%d over maximum %dx%d: %w",
			width, height, m.maxWidth, m.maxHeight, ErrAllocationLimitExceeded)
	}
	n, ok := core.CellCount(width, height, core.MaxCells[T, N]())
	if !ok {
		return 0, fmt.Errorf("grid: allocate %dx%d: %w", width, height, ErrAllocationLimitExceeded)
	}
	return n, nil
}

// CopyFrom makes m a deep copy of src: dimensions, border value and every
// cell. m keeps its own dimension bound, which src must satisfy. Copying an
// empty src empties m. On error m is left unchanged.
func (m *Map[T, N]) CopyFrom(src *Map[T, N]) error {
	if src == nil || src.Empty() {
		m.Reset()
		if src != nil {
			m.borderValue = src.borderValue
		}
		return nil
	}

	n, err := m.cellCount(src.width, src.height)
	if err != nil {
		return err
	}

	values := make([]T, n)
	copy(values, src.values)
	m.values = values
	m.width = src.width
	m.height = src.height
	m.borderValue = src.borderValue
	return nil
}

// Clone returns an independent deep copy of m, including its dimension bound.
func (m *Map[T, N]) Clone() *Map[T, N] {
	c := &Map[T, N]{
		width:       m.width,
		height:      m.height,
		borderValue: m.borderValue,
		maxWidth:    m.maxWidth,
		maxHeight:   m.maxHeight,
	}
	if len(m.values) > 0 {
		c.values = make([]T, len(m.values))
		copy(c.values, m.values)
	}
	return c
}

// Width returns the number of columns, or 0 when empty.
func (m *Map[T, N]) Width() int { return m.width }

// Height returns the number of rows, or 0 when empty.
func (m *Map[T, N]) Height() int { return m.height }

// Len returns the number of stored cells.
func (m *Map[T, N]) Len() int { return len(m.values) }

// Empty reports whether the map holds no storage.
func (m *Map[T, N]) Empty() bool { return len(m.values) == 0 }

// BorderValue returns the value read outside the map's bounds.
func (m *Map[T, N]) BorderValue() T { return m.borderValue }

// SetBorderValue sets the value read outside the map's bounds.
func (m *Map[T, N]) SetBorderValue(v T) { m.borderValue = v }

// HasMaxDimension reports whether Allocate enforces a dimension bound.
func (m *Map[T, N]) HasMaxDimension() bool {
	return m.maxWidth > 0 && m.maxHeight > 0
}

// MaxDimension returns the dimension bound, or (0, 0) when there is none.
func (m *Map[T, N]) MaxDimension() (width, height int) {
	return m.maxWidth, m.maxHeight
}

func (m *Map[T, N]) inBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// At returns the cell at (x, y), or the border value when (x, y) lies
// outside the map.
func (m *Map[T, N]) At(x, y int) T {
	if !m.inBounds(x, y) {
		return m.borderValue
	}
	return m.values[y*m.width+x]
}

// Set writes v at (x, y) and reports whether the coordinate was in range.
// Out-of-range writes are dropped.
func (m *Map[T, N]) Set(x, y int, v T) bool {
	if !m.inBounds(x, y) {
		return false
	}
	m.values[y*m.width+x] = v
	return true
}

// Fill sets every cell to v.
func (m *Map[T, N]) Fill(v T) {
	for i := range m.values {
		m.values[i] = v
	}
}

// Values returns a row-major copy of all cells.
func (m *Map[T, N]) Values() []T {
	out := make([]T, len(m.values))
	copy(out, m.values)
	return out
}

// Row copies row y into dst, reusing dst's capacity when possible, and
// returns the filled slice. A row outside the map reads as border values.
func (m *Map[T, N]) Row(y int, dst []T) []T {
	if cap(dst) >= m.width {
		dst = dst[:m.width]
	} else {
		dst = make([]T, m.width)
	}
	if y < 0 || y >= m.height {
		for i := range dst {
			dst[i] = m.borderValue
		}
		return dst
	}
	copy(dst, m.values[y*m.width:(y+1)*m.width])
	return dst
}

// MemoryUsage returns the size of the cell storage in bytes.
func (m *Map[T, N]) MemoryUsage() int {
	return len(m.values) * (m.SizeBits() / 8)
}

// SizeBits returns the storage size of one cell in bits.
func (m *Map[T, N]) SizeBits() int {
	var traits N
	return traits.SizeBits()
}

// MaxValue returns the largest value a cell can hold.
func (m *Map[T, N]) MaxValue() T {
	var traits N
	return traits.MaxValue()
}

// MinValue returns the smallest value a cell can hold.
func (m *Map[T, N]) MinValue() T {
	var traits N
	return traits.MinValue()
}

// Cells returns the row-major backing store. Mutations are visible through
// the map. The slice is invalidated by Allocate, CopyFrom and Reset.
func (m *Map[T, N]) Cells() []T { return m.values }
