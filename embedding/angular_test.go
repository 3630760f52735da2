package embedding_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danieldanhe/hyperbolic-networks/embedding"
	"github.com/danieldanhe/hyperbolic-networks/internal/testgraph"
	"github.com/danieldanhe/hyperbolic-networks/netstats"
)

func TestOptimizeAngles_TriangleAllInRange(t *testing.T) {
	g := buildGraph(t, testgraph.Triangle())
	stats, err := netstats.Estimate(g)
	require.NoError(t, err)
	kappas := embedding.AssignKappa(g, stats)

	thetas, err := embedding.OptimizeAngles(context.Background(), g, kappas, stats)
	require.NoError(t, err)
	require.Len(t, thetas, 3)
	for id, th := range thetas {
		require.GreaterOrEqualf(t, th, -math.Pi, "node %s", id)
		require.LessOrEqualf(t, th, math.Pi, "node %s", id)
	}
}

func TestOptimizeAngles_DeterministicForSameSeed(t *testing.T) {
	g := buildGraph(t, testgraph.RandomSparse(60, 0.1, 42))
	stats, err := netstats.Estimate(g)
	if err != nil {
		t.Skipf("degenerate stats for this fixture: %v", err)
	}
	kappas := embedding.AssignKappa(g, stats)

	a, err := embedding.OptimizeAngles(context.Background(), g, kappas, stats,
		embedding.WithSeed(7), embedding.WithK(10))
	require.NoError(t, err)
	b, err := embedding.OptimizeAngles(context.Background(), g, kappas, stats,
		embedding.WithSeed(7), embedding.WithK(10))
	require.NoError(t, err)

	require.Equal(t, a, b)
}

func TestOptimizeAngles_KLargerThanNPlacesEveryoneInPhase1(t *testing.T) {
	g := buildGraph(t, testgraph.Triangle())
	stats, err := netstats.Estimate(g)
	require.NoError(t, err)
	kappas := embedding.AssignKappa(g, stats)

	thetas, err := embedding.OptimizeAngles(context.Background(), g, kappas, stats,
		embedding.WithK(1000))
	require.NoError(t, err)
	require.Len(t, thetas, 3)
}

func TestOptimizeAngles_CanceledContext(t *testing.T) {
	g := buildGraph(t, testgraph.RandomSparse(50, 0.1, 3))
	stats, err := netstats.Estimate(g)
	if err != nil {
		t.Skipf("degenerate stats for this fixture: %v", err)
	}
	kappas := embedding.AssignKappa(g, stats)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = embedding.OptimizeAngles(ctx, g, kappas, stats, embedding.WithK(1))
	require.ErrorIs(t, err, embedding.ErrCanceled)
}

func TestOptimizeAngles_DualSolutionSearchDoesNotError(t *testing.T) {
	g := buildGraph(t, testgraph.Star(15))
	stats, err := netstats.Estimate(g)
	require.NoError(t, err)
	kappas := embedding.AssignKappa(g, stats)

	_, err = embedding.OptimizeAngles(context.Background(), g, kappas, stats,
		embedding.WithDualSolutionSearch(true))
	require.NoError(t, err)
}
