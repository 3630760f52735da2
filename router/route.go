package router

import (
	"fmt"
	"math"
	"sort"

	"github.com/danieldanhe/hyperbolic-networks/embedding"
)

// Route finds a bidirectional greedy geometric path from source to target
// over e.Graph, using e's placement to judge progress. A forward pointer
// starts at source and always hops toward target; a backward pointer
// starts at target and always hops toward source. Each iteration attempts
// one forward hop then one backward hop; a hop moves to whichever
// unvisited-by-that-side neighbor is hyperbolically closest to that side's
// fixed goal. After every hop, the newly reached node is checked against
// the opposite side's visited set — a hit stitches the two path fragments
// into the returned path. A side with no unvisited neighbor stalls;
// routing fails once both sides have stalled in the same iteration.
//
// source == target short-circuits to a trivial one-node path.
func Route(e embedding.Embedding, source, target string) (RoutingResult, error) {
	if len(e.Nodes) == 0 {
		return RoutingResult{}, ErrEmptyEmbedding
	}

	srcNode, err := nodeOf(e, source)
	if err != nil {
		return RoutingResult{}, err
	}
	tgtNode, err := nodeOf(e, target)
	if err != nil {
		return RoutingResult{}, err
	}

	direct := HyperbolicDistance(srcNode, tgtNode)

	if source == target {
		return RoutingResult{
			Path: []string{source}, ForwardPath: []string{source}, BackwardPath: []string{target}, MeetingNode: source,
			Success: true, Hops: 0, Distance: 0, Stretch: 1,
		}, nil
	}

	w := &walk{
		e:            e,
		source:       source,
		target:       target,
		forwardPath:  []string{source},
		backwardPath: []string{target},
		visitedF:     map[string]int{source: 0},
		visitedB:     map[string]int{target: 0},
	}

	maxIterations := len(e.Nodes) + 1
	for i := 0; i < maxIterations; i++ {
		if path, forwardPath, backwardPath, meet, ok := w.step(); ok {
			traveled := pathLength(e, path)
			stretch := math.NaN()
			if direct > 0 {
				stretch = traveled / direct
			}
			return RoutingResult{
				Path: path, ForwardPath: forwardPath, BackwardPath: backwardPath, MeetingNode: meet,
				Success: true, Hops: len(path) - 1, Distance: traveled, Stretch: stretch,
			}, nil
		}
		if w.forwardStalled && w.backwardStalled {
			break
		}
	}

	return RoutingResult{Success: false, Distance: direct, Stretch: math.NaN()}, nil
}

// walk holds one Route call's bidirectional search state.
type walk struct {
	e                                embedding.Embedding
	source, target                   string
	forwardPath, backwardPath        []string
	visitedF, visitedB               map[string]int // node ID -> index in its path
	forwardStalled, backwardStalled  bool
}

// step attempts one forward hop then one backward hop, returning the
// stitched path, each side's walk up to the meeting node, and the meeting
// node itself, as soon as either hop meets the opposite side.
func (w *walk) step() (path, forwardPath, backwardPath []string, meet string, ok bool) {
	if !w.forwardStalled {
		cur := w.forwardPath[len(w.forwardPath)-1]
		nxt, hopOK := bestNeighbor(w.e, cur, w.target, w.visitedF)
		if !hopOK {
			w.forwardStalled = true
		} else {
			w.visitedF[nxt] = len(w.forwardPath)
			w.forwardPath = append(w.forwardPath, nxt)
			if k, hit := w.visitedB[nxt]; hit {
				bp := w.backwardPath[:k+1]
				return stitchForwardMeet(w.forwardPath, w.backwardPath, k), w.forwardPath, bp, nxt, true
			}
		}
	}

	if !w.backwardStalled {
		cur := w.backwardPath[len(w.backwardPath)-1]
		nxt, hopOK := bestNeighbor(w.e, cur, w.source, w.visitedB)
		if !hopOK {
			w.backwardStalled = true
		} else {
			w.visitedB[nxt] = len(w.backwardPath)
			w.backwardPath = append(w.backwardPath, nxt)
			if k, hit := w.visitedF[nxt]; hit {
				fp := w.forwardPath[:k+1]
				return stitchBackwardMeet(w.forwardPath, w.backwardPath, k), fp, w.backwardPath, nxt, true
			}
		}
	}

	return nil, nil, nil, "", false
}

// stitchForwardMeet builds the full path when the forward pointer's latest
// hop landed on backwardPath[k].
func stitchForwardMeet(forwardPath, backwardPath []string, k int) []string {
	out := make([]string, 0, len(forwardPath)+k)
	out = append(out, forwardPath...)
	for i := k - 1; i >= 0; i-- {
		out = append(out, backwardPath[i])
	}

	return out
}

// stitchBackwardMeet builds the full path when the backward pointer's
// latest hop landed on forwardPath[k].
func stitchBackwardMeet(forwardPath, backwardPath []string, k int) []string {
	out := make([]string, 0, k+1+len(backwardPath))
	out = append(out, forwardPath[:k+1]...)
	for i := len(backwardPath) - 2; i >= 0; i-- {
		out = append(out, backwardPath[i])
	}

	return out
}

// pathLength sums the hyperbolic distance between consecutive path nodes.
func pathLength(e embedding.Embedding, path []string) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		a, _ := nodeOf(e, path[i-1])
		b, _ := nodeOf(e, path[i])
		total += HyperbolicDistance(a, b)
	}

	return total
}

// nodeOf resolves id to its embedded node, or ErrNodeNotInEmbedding.
func nodeOf(e embedding.Embedding, id string) (embedding.EmbeddedNode, error) {
	idx, ok := e.Index[id]
	if !ok {
		return embedding.EmbeddedNode{}, fmt.Errorf("%w: %s", ErrNodeNotInEmbedding, id)
	}

	return e.Nodes[idx], nil
}

// bestNeighbor returns the neighbor of from, excluding anything already in
// visited, hyperbolically closest to goal. Candidates are ranked by
// (distance, ID) so the choice is deterministic regardless of the
// underlying map's iteration order. Returns ok=false if from has no
// unvisited neighbor.
func bestNeighbor(e embedding.Embedding, from, goal string, visited map[string]int) (string, bool) {
	goalNode, _ := nodeOf(e, goal)

	type candidate struct {
		id   string
		dist float64
	}
	var candidates []candidate
	for _, nb := range e.Graph.NeighborsOf(from) {
		if _, seen := visited[nb]; seen {
			continue
		}
		nbNode, _ := nodeOf(e, nb)
		candidates = append(candidates, candidate{nb, HyperbolicDistance(nbNode, goalNode)})
	}
	if len(candidates) == 0 {
		return "", false
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		return candidates[i].id < candidates[j].id
	})

	return candidates[0].id, true
}
