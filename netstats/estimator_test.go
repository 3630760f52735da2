package netstats_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danieldanhe/hyperbolic-networks/graph"
	"github.com/danieldanhe/hyperbolic-networks/internal/testgraph"
	"github.com/danieldanhe/hyperbolic-networks/netstats"
)

func buildGraph(t *testing.T, csv string) *graph.Graph {
	t.Helper()
	edges, err := graph.ParseEdges(strings.NewReader(csv))
	require.NoError(t, err)

	return graph.Build(edges)
}

func TestEstimate_Triangle(t *testing.T) {
	g := buildGraph(t, testgraph.Triangle())
	s, err := netstats.Estimate(g)
	require.NoError(t, err)
	require.Equal(t, 3, s.N)
	require.InDelta(t, 2.0, s.KBar, 1e-9)
	require.InDelta(t, 1.0, s.Clustering, 1e-9)
	require.InDelta(t, netstats.GammaMax, s.Gamma, 1e-9) // zero-spread tail => upper clamp
	require.Greater(t, s.Beta, 1.0)
	require.Greater(t, s.Kappa0, 0.0)
	require.False(t, math.IsNaN(s.R))
}

func TestEstimate_PathGraphBoundary(t *testing.T) {
	// S2: a path graph has zero clustering, which drives beta to exactly 1,
	// the boundary of §4.3/§7's `beta > 1` requirement. Resolved as
	// non-degenerate (see DESIGN.md) so downstream embedding can proceed.
	g := buildGraph(t, testgraph.Path(5))
	s, err := netstats.Estimate(g)
	require.NoError(t, err)
	require.InDelta(t, 0.0, s.Clustering, 1e-9)
	require.InDelta(t, 1.0, s.Beta, 1e-9)
	require.Greater(t, s.Kappa0, 0.0)
}

func TestEstimate_EmptyGraph(t *testing.T) {
	g := graph.Build(nil)
	s, err := netstats.Estimate(g)
	require.ErrorIs(t, err, netstats.ErrEmptyGraph)
	require.Equal(t, 0, s.N)
	require.True(t, math.IsNaN(s.KBar))
	require.True(t, math.IsNaN(s.R))
}

func TestEstimate_GammaClampedToRange(t *testing.T) {
	g := buildGraph(t, testgraph.Star(30))
	s, err := netstats.Estimate(g)
	require.NoError(t, err)
	require.GreaterOrEqual(t, s.Gamma, netstats.GammaMin)
	require.LessOrEqual(t, s.Gamma, netstats.GammaMax)
}

func TestEstimate_DegreeSumEqualsTwiceEdgeCount(t *testing.T) {
	g := buildGraph(t, testgraph.Cycle(6))
	sum := 0
	for _, id := range g.Nodes {
		sum += g.DegreeOf(id)
	}
	require.Equal(t, 12, sum) // C_6 has 6 edges
	s, err := netstats.Estimate(g)
	require.NoError(t, err)
	require.InDelta(t, float64(sum)/float64(g.N()), s.KBar, 1e-9)
}

func TestEstimate_ClusteringIsBounded(t *testing.T) {
	g := buildGraph(t, testgraph.RandomSparse(80, 0.15, 7))
	s, err := netstats.Estimate(g)
	if err != nil {
		require.ErrorIs(t, err, netstats.ErrDegenerateStats)
		return
	}
	require.GreaterOrEqual(t, s.Clustering, 0.0)
	require.LessOrEqual(t, s.Clustering, 1.0)
}
