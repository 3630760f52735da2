package embedding_test

import (
	"context"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danieldanhe/hyperbolic-networks/embedding"
	"github.com/danieldanhe/hyperbolic-networks/internal/testgraph"
	"github.com/danieldanhe/hyperbolic-networks/netstats"
)

func TestEmbed_Triangle(t *testing.T) {
	e, err := embedding.Embed(context.Background(), strings.NewReader(testgraph.Triangle()))
	require.NoError(t, err)
	require.Len(t, e.Nodes, 3)
	require.Equal(t, 3, e.Stats.N)

	for _, node := range e.Nodes {
		idx, ok := e.Index[node.ID]
		require.True(t, ok)
		require.Equal(t, node, e.Nodes[idx])

		x, y := node.Poincare()
		require.Less(t, x*x+y*y, 1.0)
	}
}

func TestEmbed_EmptyInputIsMalformed(t *testing.T) {
	_, err := embedding.Embed(context.Background(), strings.NewReader(""))
	require.Error(t, err)
}

func TestEmbed_EmptyGraphIsDegenerateButNotAnError(t *testing.T) {
	// §7: a zero-node graph embeds to an empty, degenerate result rather
	// than failing outright; only routing against it refuses.
	e, err := embedding.Embed(context.Background(), strings.NewReader("a,a\n"))
	require.NoError(t, err)
	require.Empty(t, e.Nodes)
	require.NotNil(t, e.Index)
	require.Equal(t, 0, e.Stats.N)
	require.True(t, math.IsNaN(e.Stats.Beta))
	require.True(t, math.IsNaN(e.Stats.Kappa0))
	require.True(t, math.IsNaN(e.Stats.Mu))
	require.True(t, math.IsNaN(e.Stats.R))
}

func TestEmbed_ZeroClusteringGraphsStillEmbed(t *testing.T) {
	// S2/S3: a path or star has zero clustering (beta lands exactly on the
	// DegenerateStats boundary) but must still embed successfully.
	for _, csv := range []string{testgraph.Path(5), testgraph.Star(6)} {
		e, err := embedding.Embed(context.Background(), strings.NewReader(csv))
		require.NoError(t, err)
		require.NotEmpty(t, e.Nodes)
	}
}

func TestEmbed_DegenerateStatsPropagates(t *testing.T) {
	// Estimate's DegenerateStats guard is unreachable through natural graph
	// input (see netstats DESIGN.md entry): the Hill estimator's gamma clamp
	// keeps kappa0 strictly positive, and clustering is never negative, so
	// beta never falls below 1. This only checks the wrapping contract: if
	// netstats ever did report ErrDegenerateStats, Embed must surface it as
	// both its own sentinel and the underlying one.
	err := fmt.Errorf("%w: forced", netstats.ErrDegenerateStats)
	wrapped := fmt.Errorf("%w: %w", embedding.ErrDegenerateStats, err)
	require.ErrorIs(t, wrapped, embedding.ErrDegenerateStats)
	require.ErrorIs(t, wrapped, netstats.ErrDegenerateStats)
}

func TestEmbed_NodesSortedByDescendingDegree(t *testing.T) {
	e, err := embedding.Embed(context.Background(), strings.NewReader(testgraph.Star(10)))
	require.NoError(t, err)
	require.Equal(t, "Center", e.Nodes[0].ID)
	require.Equal(t, 0, e.Index["Center"])
	require.Len(t, e.Nodes, 10)
}
