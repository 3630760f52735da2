// Package hyperbolicnetworks embeds a network onto the hyperbolic disc and
// routes between its nodes using nothing but their geometric placement.
//
// The pipeline lives in four subpackages, run in this order:
//
//	graph/    — parses "source,target" edge text into an undirected Graph
//	netstats/ — estimates degree, clustering, tail exponent and the
//	            connection-probability constants the embedding needs
//	embedding/ — assigns every node a hidden degree, a radius and an angle
//	router/    — greedy bidirectional routing over the resulting placement
//
// embedding.Embed wires graph, netstats and embedding's own kappa/radius/
// angle stages into a single call; router.Route then walks the result.
package hyperbolicnetworks
