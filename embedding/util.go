package embedding

import "golang.org/x/exp/constraints"

// clamp restricts x to [lo, hi]. Generic over any ordered numeric type so
// both the float64 math in angular.go and any future integer bound share
// one implementation.
func clamp[T constraints.Ordered](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}

// sign returns -1 for negative x and +1 for x >= 0. Used to detect a
// gradient-sign flip between consecutive ascent iterations; the x >= 0
// convention is arbitrary and only matters relative to the previous call.
func sign(x float64) float64 {
	if x < 0 {
		return -1
	}

	return 1
}
