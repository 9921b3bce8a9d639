// Package noisemap provides the floating-point map specializations used to
// hold coherent-noise output: NoiseMap (float32) and HeightMap (float64).
//
// Both embed grid.Map, so bounds-checked access, border fallback, copying
// and allocation behave exactly as in package grid. On top of that they add
// the extrema scan (MinMax) and range normalization. HeightMap also offers
// SIMD-backed mask multiplication and a row power spectrum for checking a
// generator's frequency content.
package noisemap
