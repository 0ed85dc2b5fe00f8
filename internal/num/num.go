// Package num provides small generic numeric helpers shared across ink.
package num

import "golang.org/x/exp/constraints"

// Clamp limits v to the inclusive range [lo, hi].
// If lo > hi the result is unspecified.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Abs returns the absolute value of x.
func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Lerp performs linear interpolation between a and b.
// t=0 returns a, t=1 returns b, intermediate values interpolate.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}
