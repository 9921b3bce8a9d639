package grid

import "errors"

var (
	// ErrInvalidDimension is returned when a width or height is not positive.
	ErrInvalidDimension = errors.New("grid: width and height must be positive")
	// ErrAllocationLimitExceeded is returned when the requested cell count
	// exceeds the budget derived from the cell type's size, or when a
	// dimension exceeds the map's configured maximum.
	ErrAllocationLimitExceeded = errors.New("grid: allocation limit exceeded")
)
