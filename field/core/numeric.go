package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [lo, hi].
func Clamp[T Scalar](value, lo, hi T) T {
	if lo > hi {
		lo, hi = hi, lo
	}

	if value < lo {
		return lo
	}

	if value > hi {
		return hi
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// Lerp returns the linear interpolation a + t*(b-a).
func Lerp[F Float](a, b, t F) F {
	return a + t*(b-a)
}
