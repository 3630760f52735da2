package embedding_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danieldanhe/hyperbolic-networks/embedding"
	"github.com/danieldanhe/hyperbolic-networks/internal/testgraph"
	"github.com/danieldanhe/hyperbolic-networks/netstats"
)

func TestAssignRadius_FloorKappaGivesR(t *testing.T) {
	g := buildGraph(t, testgraph.Star(10))
	stats, err := netstats.Estimate(g)
	require.NoError(t, err)

	kappas := embedding.AssignKappa(g, stats)
	radii := embedding.AssignRadius(kappas, stats)

	for id, k := range kappas {
		if k == stats.Kappa0 {
			require.InDelta(t, stats.R, radii[id], 1e-9)
		}
	}
}

func TestAssignRadius_HigherKappaMeansSmallerRadius(t *testing.T) {
	g := buildGraph(t, testgraph.Star(20))
	stats, err := netstats.Estimate(g)
	require.NoError(t, err)

	kappas := embedding.AssignKappa(g, stats)
	radii := embedding.AssignRadius(kappas, stats)

	require.Less(t, radii["Center"], radii["1"])
	require.False(t, math.IsNaN(radii["Center"]))
}
