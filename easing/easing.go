// Package easing remaps normalized progress and interpolates between ranges.
// Everything here is pure and total over the reals.
package easing

import "math"

// Func maps progress in [0,1] to eased progress. Results outside [0,1]
// overshoot the output range.
type Func func(x float64) float64

// Range is a closed numeric interval. From may be greater than To.
type Range struct {
	From, To float64
}

// Interpolate returns a function mapping x from in to out through easing.
//
// x is normalized against in (after clamping to in when clamp is set), eased,
// then mapped linearly onto out. Without clamp, the normalized value may leave
// [0,1] and is handed to easing as is. in must not have zero width.
func Interpolate(easing Func, in, out Range, clamp bool) func(x float64) float64 {
	lo, hi := min(in.From, in.To), max(in.From, in.To)
	return func(x float64) float64 {
		if clamp {
			x = math.Max(lo, math.Min(hi, x))
		}
		normalized := (x - in.From) / (in.To - in.From)
		eased := easing(normalized)
		return eased*(out.To-out.From) + out.From
	}
}

// Linear is the identity easing.
func Linear(x float64) float64 {
	return x
}

// EaseInOutCubic is 3x² − 2x³.
func EaseInOutCubic(x float64) float64 {
	return 3*x*x - 2*x*x*x
}

// EaseOutCubic is 1 − (1−x)³.
func EaseOutCubic(x float64) float64 {
	return 1 - math.Pow(1-x, 3)
}

// Logarithmic rises fast then flattens: ln(1 + (e−1)x), so 0→0 and 1→1.
func Logarithmic(x float64) float64 {
	return math.Log(1 + (math.E-1)*x)
}
