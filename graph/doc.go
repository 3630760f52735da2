// Package graph parses an edge-list text table into a canonical, undirected,
// self-loop-free, duplicate-free adjacency structure.
//
// graph is the leaf dependency of the embedding pipeline: it knows nothing
// about hyperbolic coordinates, likelihoods, or routing. It produces exactly
// three things a caller needs to go further — the distinct node IDs in
// first-seen order, a symmetric adjacency set, and a per-node degree count.
//
//	edge text --ParseEdges--> []Edge --Build--> *Graph{Nodes, Adj, Degree}
//
// Parsing tolerates malformed rows (skips them) but rejects unreadable
// input outright; building tolerates self-loops and duplicate edges (drops
// them) but never rejects a valid edge list, including the empty one.
package graph
