package core

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of cell types a map can hold.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Float is the set of floating-point cell types.
type Float interface {
	constraints.Float
}

// Traits supplies per-type numeric facts for T. Implementations are
// zero-size types passed as a type parameter, so the facts are resolved
// at compile time.
type Traits[T Scalar] interface {
	// SizeBits returns the storage size of one T in bits.
	SizeBits() int
	// MaxValue returns the largest representable T.
	MaxValue() T
	// MinValue returns the smallest representable T. For floats this is
	// the most negative finite value.
	MinValue() T
}

// Trait types, one per supported cell type.
type (
	Float32 struct{}
	Float64 struct{}
	Int8    struct{}
	Int16   struct{}
	Int32   struct{}
	Int64   struct{}
	Uint8   struct{}
	Uint16  struct{}
	Uint32  struct{}
)

func (Float32) SizeBits() int { return 32 }
func (Float32) MaxValue() float32 { return math.MaxFloat32 }
func (Float32) MinValue() float32 { return -math.MaxFloat32 }
func (Float64) SizeBits() int { return 64 }
func (Float64) MaxValue() float64 { return math.MaxFloat64 }
func (Float64) MinValue() float64 { return -math.MaxFloat64 }
func (Int8) SizeBits() int { return 8 }
func (Int8) MaxValue() int8 { return math.MaxInt8 }
func (Int8) MinValue() int8 { return math.MinInt8 }
func (Int16) SizeBits() int { return 16 }
func (Int16) MaxValue() int16 { return math.MaxInt16 }
func (Int16) MinValue() int16 { return math.MinInt16 }
func (Int32) SizeBits() int { return 32 }
func (Int32) MaxValue() int32 { return math.MaxInt32 }
func (Int32) MinValue() int32 { return math.MinInt32 }
func (Int64) SizeBits() int { return 64 }
func (Int64) MaxValue() int64 { return math.MaxInt64 }
func (Int64) MinValue() int64 { return math.MinInt64 }
func (Uint8) SizeBits() int { return 8 }
func (Uint8) MaxValue() uint8 { return math.MaxUint8 }
func (Uint8) MinValue() uint8 { return 0 }
func (Uint16) SizeBits() int { return 16 }
func (Uint16) MaxValue() uint16 { return math.MaxUint16 }
func (Uint16) MinValue() uint16 { return 0 }
func (Uint32) SizeBits() int { return 32 }
func (Uint32) MaxValue() uint32 { return math.MaxUint32 }
func (Uint32) MinValue() uint32 { return 0 }

// MaxCells returns the largest cell count whose byte size still fits the
// addressable index range for a map of T.
func MaxCells[T Scalar, N Traits[T]]() int {
	var traits N
	bytes := traits.SizeBits() / 8
	if bytes < 1 {
		bytes = 1
	}
	return math.MaxInt / bytes
}

// CellCount returns width*height and whether it is within limit.
// The product is never formed when it would overflow.
func CellCount(width, height, limit int) (int, bool) {
	if width <= 0 || height <= 0 {
		return 0, false
	}
	if width > limit/height {
		return 0, false
	}
	return width * height, true
}
