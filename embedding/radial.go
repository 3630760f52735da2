package embedding

import (
	"math"

	"github.com/danieldanhe/hyperbolic-networks/netstats"
)

// AssignRadius converts hidden degrees into radial coordinates (§4.5):
// r(kappa) = R - 2*ln(kappa/kappa0). Higher hidden degree pulls a node
// closer to the disc's center.
func AssignRadius(kappas map[string]float64, stats netstats.NetworkStats) map[string]float64 {
	radii := make(map[string]float64, len(kappas))
	for id, kappa := range kappas {
		radii[id] = stats.R - 2*math.Log(kappa/stats.Kappa0)
	}

	return radii
}
