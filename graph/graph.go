package graph

// Graph is the canonical, undirected adjacency built from a parsed edge
// list. Once Build returns, a Graph is never mutated again — the embedding
// and routing packages downstream treat it as a read-only, shareable value.
//
// Invariants (enforced by Build, never by the caller):
//
//	v ∈ Adj[u] ⇔ u ∈ Adj[v]   (symmetric adjacency)
//	u ∉ Adj[u]                (no self-loops)
//	Degree[v] == len(Adj[v])  for every v
type Graph struct {
	// Nodes holds the distinct node IDs in first-seen order.
	Nodes []string
	// Adj maps a node ID to the set of its neighbor IDs.
	Adj map[string]map[string]struct{}
	// Degree maps a node ID to len(Adj[id]).
	Degree map[string]int
}

// Build consumes a parsed edge list and produces a deduplicated, symmetric
// Graph. Self-loops (Source == Target) are silently dropped. Parallel edges
// collapse via the set semantics of Adj. An empty edge list yields a Graph
// with zero nodes, which is legal (§7 EmptyGraph).
func Build(edges []Edge) *Graph {
	g := &Graph{
		Nodes:  make([]string, 0),
		Adj:    make(map[string]map[string]struct{}),
		Degree: make(map[string]int),
	}

	for _, e := range edges {
		if e.Source == e.Target {
			continue // self-loop, dropped
		}
		g.ensureNode(e.Source)
		g.ensureNode(e.Target)
		g.link(e.Source, e.Target)
		g.link(e.Target, e.Source)
	}

	for _, id := range g.Nodes {
		g.Degree[id] = len(g.Adj[id])
	}

	return g
}

// ensureNode registers id in Nodes (first-seen order) and Adj if not already
// present. A no-op for an id already known.
func (g *Graph) ensureNode(id string) {
	if _, ok := g.Adj[id]; ok {
		return
	}
	g.Nodes = append(g.Nodes, id)
	g.Adj[id] = make(map[string]struct{})
}

// link inserts to into from's neighbor set.
func (g *Graph) link(from, to string) {
	g.Adj[from][to] = struct{}{}
}

// N returns the number of distinct nodes.
func (g *Graph) N() int {
	return len(g.Nodes)
}

// NodeOrder returns the node IDs in first-seen order, the same order Embed
// uses before re-sorting by degree.
func (g *Graph) NodeOrder() []string {
	return g.Nodes
}

// HasEdge reports whether u and v are adjacent.
func (g *Graph) HasEdge(u, v string) bool {
	nbrs, ok := g.Adj[u]
	if !ok {
		return false
	}
	_, ok = nbrs[v]

	return ok
}

// DegreeOf returns the degree of id, or 0 if id is not in the graph.
func (g *Graph) DegreeOf(id string) int {
	return g.Degree[id]
}

// NeighborsOf returns the neighbor IDs of id in unspecified order, or nil if
// id is not in the graph.
func (g *Graph) NeighborsOf(id string) []string {
	nbrs, ok := g.Adj[id]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}

	return out
}
