package embedding

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/danieldanhe/hyperbolic-networks/graph"
	"github.com/danieldanhe/hyperbolic-networks/netstats"
)

// Embed runs the full pipeline: parse edges from r, build the graph,
// estimate network statistics, assign hidden degrees and radii, optimize
// angles, and return every node placed, sorted by descending degree
// (ties broken by first-seen order) with an ID-to-index map for O(1)
// lookup.
//
// A zero-node graph is not an error: Embed returns a degenerate Embedding
// with no nodes and a Stats value carrying N=0 and every other field NaN.
// Routing against that result is what refuses, via router.ErrEmptyEmbedding.
// Embed returns ErrDegenerateStats when the underlying network statistics
// are degenerate (§4.3), wrapping the netstats error via errors.Is.
func Embed(ctx context.Context, r io.Reader, opts ...Option) (Embedding, error) {
	edges, err := graph.ParseEdges(r)
	if err != nil {
		return Embedding{}, fmt.Errorf("embedding: %w", err)
	}
	g := graph.Build(edges)

	stats, err := netstats.Estimate(g)
	if err != nil {
		if errors.Is(err, netstats.ErrEmptyGraph) {
			return Embedding{
				Index: map[string]int{},
				Graph: g,
				Stats: NetworkStatsView{
					N:      stats.N,
					Beta:   stats.Beta,
					Mu:     stats.Mu,
					Kappa0: stats.Kappa0,
					R:      stats.R,
				},
			}, nil
		}
		if errors.Is(err, netstats.ErrDegenerateStats) {
			return Embedding{}, fmt.Errorf("%w: %w", ErrDegenerateStats, err)
		}
		return Embedding{}, fmt.Errorf("embedding: %w", err)
	}

	kappas := AssignKappa(g, stats)
	radii := AssignRadius(kappas, stats)

	thetas, err := OptimizeAngles(ctx, g, kappas, stats, opts...)
	if err != nil {
		return Embedding{}, err
	}

	order := sortedByDegreeDesc(g)
	nodes := make([]EmbeddedNode, len(order))
	index := make(map[string]int, len(order))
	for i, id := range order {
		nodes[i] = EmbeddedNode{
			ID:     id,
			Kappa:  kappas[id],
			Radial: radii[id],
			Theta:  thetas[id],
		}
		index[id] = i
	}

	return Embedding{
		Nodes: nodes,
		Index: index,
		Graph: g,
		Stats: NetworkStatsView{
			N:      stats.N,
			Beta:   stats.Beta,
			Mu:     stats.Mu,
			Kappa0: stats.Kappa0,
			R:      stats.R,
		},
	}, nil
}
