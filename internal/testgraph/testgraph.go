// Package testgraph builds small, deterministic edge-CSV fixtures for tests
// and examples across the module — triangles, paths, stars, cycles, and
// sparse Erdős–Rényi-like random graphs, each emitted in the "source,target"
// text contract that graph.ParseEdges consumes.
//
// The constructors here are adapted from lvlath/builder's topology
// constructors (Path, Cycle, Star, RandomSparse): same deterministic vertex
// ordering and edge-emission order, same fail-fast parameter validation, but
// targeting a plain CSV writer instead of a *core.Graph, since this module's
// graph type is built exclusively from parsed edge text.
package testgraph

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// idFn generates a deterministic, decimal vertex label from a zero-based
// index, mirroring builder.DefaultIDFn.
func idFn(idx int) string {
	return strconv.Itoa(idx)
}

// csvBuilder accumulates "source,target" rows behind a fixed header, in
// emission order, matching the format graph.ParseEdges expects.
type csvBuilder struct {
	b strings.Builder
}

func newCSVBuilder() *csvBuilder {
	c := &csvBuilder{}
	c.b.WriteString("source,target\n")

	return c
}

func (c *csvBuilder) add(u, v string) {
	c.b.WriteString(u)
	c.b.WriteByte(',')
	c.b.WriteString(v)
	c.b.WriteByte('\n')
}

func (c *csvBuilder) String() string {
	return c.b.String()
}

// Path returns the edge-CSV text for the simple path P_n: 0-1-2-...-(n-1).
// Panics if n < 2 — these helpers build fixtures for tests, where a bad
// parameter is a programmer error, not recoverable input.
func Path(n int) string {
	if n < 2 {
		panic(fmt.Sprintf("testgraph.Path: n=%d < 2", n))
	}
	c := newCSVBuilder()
	for i := 1; i < n; i++ {
		c.add(idFn(i-1), idFn(i))
	}

	return c.String()
}

// Cycle returns the edge-CSV text for the simple cycle C_n: 0-1-...-(n-1)-0.
// Panics if n < 3.
func Cycle(n int) string {
	if n < 3 {
		panic(fmt.Sprintf("testgraph.Cycle: n=%d < 3", n))
	}
	c := newCSVBuilder()
	for i := 0; i < n; i++ {
		c.add(idFn(i), idFn((i+1)%n))
	}

	return c.String()
}

// Star returns the edge-CSV text for the star K_{1,n-1}: a hub labeled
// "Center" connected to n-1 leaves "1".."n-1". Panics if n < 2.
func Star(n int) string {
	if n < 2 {
		panic(fmt.Sprintf("testgraph.Star: n=%d < 2", n))
	}
	c := newCSVBuilder()
	for i := 1; i < n; i++ {
		c.add("Center", idFn(i))
	}

	return c.String()
}

// Triangle returns the edge-CSV text for the 3-cycle A-B-C-A, the canonical
// S1 fixture of the routing contract.
func Triangle() string {
	return "source,target\nA,B\nB,C\nC,A\n"
}

// Complete returns the edge-CSV text for the complete graph K_n: every pair
// of the n vertices 0..n-1 is connected. Panics if n < 2.
func Complete(n int) string {
	if n < 2 {
		panic(fmt.Sprintf("testgraph.Complete: n=%d < 2", n))
	}
	c := newCSVBuilder()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			c.add(idFn(i), idFn(j))
		}
	}

	return c.String()
}

// RandomSparse returns edge-CSV text for an Erdős–Rényi-like graph over n
// vertices, including each of the C(n,2) possible undirected edges
// independently with probability p, sampled from a deterministic RNG seeded
// by seed. Panics if n < 1 or p is outside [0,1].
//
// Trial order is fixed (i ascending, then j ascending, i<j), so the same
// (n, p, seed) always produces byte-identical output.
func RandomSparse(n int, p float64, seed int64) string {
	if n < 1 {
		panic(fmt.Sprintf("testgraph.RandomSparse: n=%d < 1", n))
	}
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("testgraph.RandomSparse: p=%.6f not in [0,1]", p))
	}
	rng := rand.New(rand.NewSource(seed))
	c := newCSVBuilder()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				c.add(idFn(i), idFn(j))
			}
		}
	}

	return c.String()
}

// DisconnectedPair returns the edge-CSV text for two isolated edges A-B and
// C-D that share no node, the canonical S4 fixture for routing-failure
// tests.
func DisconnectedPair() string {
	return "source,target\nA,B\nC,D\n"
}
