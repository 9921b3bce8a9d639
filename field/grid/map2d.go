package grid

import (
	"fmt"

	"github.com/cwbudde/algo-field/field/core"
)

// Map2D is the capability set a map builder needs. Builders written
// against Map2D work with any cell type.
type Map2D[T any] interface {
	Width() int
	Height() int
	BorderValue() T
	SetBorderValue(v T)
	At(x, y int) T
	Set(x, y int, v T) bool
	Allocate(width, height int) error
	Reset()
}

var (
	_ Map2D[float32] = (*Map[float32, core.Float32])(nil)
	_ Map2D[uint8]   = (*Map[uint8, core.Uint8])(nil)
)

// Generate allocates m to width x height and sets every cell to fn(x, y),
// row by row.
func Generate[T any](m Map2D[T], width, height int, fn func(x, y int) T) error {
	if err := m.Allocate(width, height); err != nil {
		return fmt.Errorf("grid: generate: %w", err)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.Set(x, y, fn(x, y))
		}
	}
	return nil
}

// Transform replaces every cell of m with fn applied to it.
func Transform[T any](m Map2D[T], fn func(v T) T) {
	w, h := m.Width(), m.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.Set(x, y, fn(m.At(x, y)))
		}
	}
}
