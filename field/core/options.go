package core

// MapConfig defines construction settings shared by all map types.
type MapConfig[T Scalar] struct {
	BorderValue T
	// MaxWidth and MaxHeight bound Allocate when both are positive.
	MaxWidth  int
	MaxHeight int
}

// HasMaxDimension reports whether a dimension bound is enforced.
func (c MapConfig[T]) HasMaxDimension() bool {
	return c.MaxWidth > 0 && c.MaxHeight > 0
}

// MapOption mutates a MapConfig.
type MapOption[T Scalar] func(*MapConfig[T])

// DefaultMapConfig returns a zero border value and no dimension bound.
func DefaultMapConfig[T Scalar]() MapConfig[T] {
	return MapConfig[T]{}
}

// WithBorderValue sets the value returned for out-of-range reads.
func WithBorderValue[T Scalar](v T) MapOption[T] {
	return func(cfg *MapConfig[T]) {
		cfg.BorderValue = v
	}
}

// WithMaxDimension bounds width and height. Non-positive values are ignored.
func WithMaxDimension[T Scalar](width, height int) MapOption[T] {
	return func(cfg *MapConfig[T]) {
		if width > 0 && height > 0 {
			cfg.MaxWidth = width
			cfg.MaxHeight = height
		}
	}
}

// ApplyMapOptions applies zero or more options to the default config.
func ApplyMapOptions[T Scalar](opts ...MapOption[T]) MapConfig[T] {
	cfg := DefaultMapConfig[T]()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
