// Package grid provides a dense, bounds-checked 2D map generic over its
// scalar cell type.
//
// Cells are stored row-major at offset y*width + x. Reads outside the
// allocated bounds return the map's border value and never index past
// storage. Writes outside the bounds are dropped and reported by Set's
// boolean result.
//
// The numeric facts a map needs for allocation sizing come from a trait
// type parameter (see core.Traits), so Map[float32, core.Float32] and
// Map[uint8, core.Uint8] are resolved at compile time without any runtime
// type inspection.
//
// A Map is not safe for concurrent mutation. Pool is.
package grid
