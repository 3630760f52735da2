package router

import (
	"math"

	"github.com/danieldanhe/hyperbolic-networks/embedding"
)

// HyperbolicDistance computes the native-disc hyperbolic distance between
// two embedded nodes via the hyperbolic law of cosines:
//
//	cosh(d) = cosh(r_a)*cosh(r_b) - sinh(r_a)*sinh(r_b)*cos(deltaTheta)
//
// evaluated in the equivalent form
//
//	cosh(d) = cosh(r_a - r_b) + 2*sinh(r_a)*sinh(r_b)*sin^2(deltaTheta/2)
//
// so that two coincident nodes give exactly 1 (distance 0) instead of a
// rounding residue. The right-hand side is still clamped to acosh's domain
// before taking the inverse.
func HyperbolicDistance(a, b embedding.EmbeddedNode) float64 {
	deltaTheta := angularDelta(a.Theta, b.Theta)
	s := math.Sin(deltaTheta / 2)
	coshD := math.Cosh(a.Radial-b.Radial) +
		2*math.Sinh(a.Radial)*math.Sinh(b.Radial)*s*s

	return math.Acosh(math.Max(1, coshD))
}

// angularDelta returns the shorter angular separation between two angles
// already in (-pi, pi], mirroring embedding's angle-wrapping convention.
func angularDelta(a, b float64) float64 {
	const twoPi = 2 * math.Pi
	d := math.Mod(a-b, twoPi)
	if d <= -math.Pi {
		d += twoPi
	} else if d > math.Pi {
		d -= twoPi
	}

	return math.Abs(d)
}
