// Package surface computes summary statistics over float maps: moments,
// extrema positions, energy and zero-level crossings, either in one call
// or streamed row by row.
package surface
