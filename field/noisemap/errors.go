package noisemap

import "errors"

// Errors returned by noisemap functions.
var (
	ErrDimensionMismatch = errors.New("noisemap: map dimensions differ")
	ErrEmptyMap          = errors.New("noisemap: map is empty")
)
