package embedding

import (
	"github.com/danieldanhe/hyperbolic-networks/graph"
	"github.com/danieldanhe/hyperbolic-networks/netstats"
)

// AssignKappa computes each node's hidden degree (§4.4):
// kappa = max(kappa0, degree - gamma/beta). This keeps every kappa at or
// above the population floor kappa0 even for low-degree nodes, matching
// the expected-degree model the connection probability is built on.
func AssignKappa(g *graph.Graph, stats netstats.NetworkStats) map[string]float64 {
	kappas := make(map[string]float64, len(g.Nodes))
	shift := stats.Gamma / stats.Beta

	for _, id := range g.Nodes {
		k := float64(g.DegreeOf(id)) - shift
		if k < stats.Kappa0 {
			k = stats.Kappa0
		}
		kappas[id] = k
	}

	return kappas
}
