package embedding

import (
	"context"
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/danieldanhe/hyperbolic-networks/graph"
	"github.com/danieldanhe/hyperbolic-networks/netstats"
)

// probEps floors and ceils the connection probability away from 0 and 1 so
// its log never blows up.
const probEps = 1e-10

// OptimizeAngles assigns every node an angular coordinate (§4.6). The
// highest-degree cfg.K nodes ("anchors") are placed by gradient ascent on
// their local log-likelihood against every other anchor, swept cfg.Rounds
// times; every remaining node is then placed once, in descending-degree
// order and in batches of cfg.BatchSize, at the circular mean of whichever
// of its neighbors are already placed (or a random angle if none are).
//
// ctx is checked between phase-1 rounds and phase-2 batches; a canceled
// context returns ErrCanceled with no partial map.
func OptimizeAngles(ctx context.Context, g *graph.Graph, kappas map[string]float64, stats netstats.NetworkStats, opts ...Option) (map[string]float64, error) {
	cfg := DefaultOptions()
	for _, o := range opts {
		o(&cfg)
	}

	n := g.N()
	theta := make(map[string]float64, n)
	if n == 0 {
		return theta, nil
	}

	order := sortedByDegreeDesc(g)

	k := cfg.K
	if k > n {
		k = n
	}
	anchors := order[:k]
	tail := order[k:]

	for i, id := range anchors {
		theta[id] = normalizeAngle(-math.Pi + 2*math.Pi*float64(i)/float64(k))
	}

	nf := float64(n)
	for round := 0; round < cfg.Rounds; round++ {
		select {
		case <-ctx.Done():
			return nil, ErrCanceled
		default:
		}

		for _, id := range anchors {
			theta[id] = ascend(id, theta, anchors, kappas, g, nf, stats.Mu, stats.Beta, cfg)
		}
	}

	rngIso := deriveRNG(cfg.Seed, streamIsolatedPlacement)
	for i := 0; i < len(tail); i += cfg.BatchSize {
		select {
		case <-ctx.Done():
			return nil, ErrCanceled
		default:
		}

		end := i + cfg.BatchSize
		if end > len(tail) {
			end = len(tail)
		}
		for _, id := range tail[i:end] {
			theta[id] = placeByCircularMean(id, g, theta, rngIso)
		}
	}

	return theta, nil
}

// sortedByDegreeDesc returns node IDs ordered by descending degree, ties
// broken by first-seen order (g.Nodes is already in that order, and
// SliceStable preserves it for equal keys).
func sortedByDegreeDesc(g *graph.Graph) []string {
	order := make([]string, len(g.Nodes))
	copy(order, g.Nodes)

	sort.SliceStable(order, func(i, j int) bool {
		return g.DegreeOf(order[i]) > g.DegreeOf(order[j])
	})

	return order
}

// placeByCircularMean assigns id the circular mean of its already-placed
// neighbors' angles, or a random angle if it has none. Neighbors are summed
// in ID order so the result does not depend on map iteration order.
func placeByCircularMean(id string, g *graph.Graph, theta map[string]float64, rng *rand.Rand) float64 {
	neighbors := g.NeighborsOf(id)
	sort.Strings(neighbors)
	sins := make([]float64, 0, len(neighbors))
	coss := make([]float64, 0, len(neighbors))
	for _, nb := range neighbors {
		t, ok := theta[nb]
		if !ok {
			continue
		}
		sins = append(sins, math.Sin(t))
		coss = append(coss, math.Cos(t))
	}

	if len(sins) == 0 {
		return randomAngle(rng)
	}

	return normalizeAngle(math.Atan2(floats.Sum(sins), floats.Sum(coss)))
}

// ascend runs phase-1 gradient ascent for a single anchor, starting from
// its current angle, and optionally reruns from the antipodal angle when
// dual-solution search is enabled, keeping whichever converged solution has
// the higher local log-likelihood.
func ascend(id string, theta map[string]float64, anchors []string, kappas map[string]float64, g *graph.Graph, n, mu, beta float64, cfg Options) float64 {
	start := theta[id]
	best := runAscent(id, start, theta, anchors, kappas, g, n, mu, beta, cfg.Tolerance)

	if !cfg.DualSolutionSearch {
		return best
	}

	altStart := normalizeAngle(start + math.Pi)
	alt := runAscent(id, altStart, theta, anchors, kappas, g, n, mu, beta, cfg.Tolerance)

	if likelihoodAt(id, alt, theta, anchors, kappas, g, n, mu, beta) >
		likelihoodAt(id, best, theta, anchors, kappas, g, n, mu, beta) {
		return alt
	}

	return best
}

// runAscent performs one gradient-ascent walk starting at start, tracking
// and returning the best angle seen (highest local log-likelihood), per
// the stopping rules in §4.6: |gradient| < tol, or a clamped step under
// 0.1*tol for more than smallStepStreakLimit consecutive iterations, or
// maxAscentIterations reached.
func runAscent(id string, start float64, theta map[string]float64, anchors []string, kappas map[string]float64, g *graph.Graph, n, mu, beta, tol float64) float64 {
	cur := start
	bestTheta := start
	bestL := likelihoodAt(id, start, theta, anchors, kappas, g, n, mu, beta)

	lr := initialLearningRate
	havePrevGrad := false
	prevGrad := 0.0
	smallStreak := 0

	for iter := 0; iter < maxAscentIterations; iter++ {
		grad := gradientAt(id, cur, theta, anchors, kappas, g, n, mu, beta)
		if math.Abs(grad) < tol {
			break
		}

		if havePrevGrad && sign(grad) != sign(prevGrad) {
			lr = clamp(lr/2, minLearningRate, maxLearningRate)
		}

		step := clamp(lr*grad, -stepClamp, stepClamp)
		cur = normalizeAngle(cur + step)

		l := likelihoodAt(id, cur, theta, anchors, kappas, g, n, mu, beta)
		if l > bestL {
			bestL = l
			bestTheta = cur
		}

		if math.Abs(step) < 0.1*tol {
			smallStreak++
			if smallStreak > smallStepStreakLimit {
				break
			}
		} else {
			smallStreak = 0
		}

		prevGrad = grad
		havePrevGrad = true
	}

	return bestTheta
}

// likelihoodAt computes node id's local log-likelihood at angle thetaI
// against every other anchor, under the connection-probability model
// p_ij = 1/(chi_ij^beta + 1).
func likelihoodAt(id string, thetaI float64, theta map[string]float64, anchors []string, kappas map[string]float64, g *graph.Graph, n, mu, beta float64) float64 {
	kappaI := kappas[id]

	var l float64
	for _, j := range anchors {
		if j == id {
			continue
		}

		deltaTheta := math.Abs(normalizeAngle(thetaI - theta[j]))
		chi := n * deltaTheta / (2 * math.Pi * mu * kappaI * kappas[j])
		p := clamp(1/(math.Pow(chi, beta)+1), probEps, 1-probEps)

		if g.HasEdge(id, j) {
			l += math.Log(p)
		} else {
			l += math.Log(1 - p)
		}
	}

	return l
}

// gradientAt computes d(likelihoodAt)/d(thetaI) analytically: the chain
// rule through chi_ij and p_ij. The angular distance
// deltaTheta_ij = |normalize(thetaI - thetaJ)| already picks the shorter
// arc, so its derivative sign matches the sign of the normalized
// difference itself — this is the "reversed sign past the pi wraparound"
// rule stated in §4.6, expressed without a separate branch.
func gradientAt(id string, thetaI float64, theta map[string]float64, anchors []string, kappas map[string]float64, g *graph.Graph, n, mu, beta float64) float64 {
	kappaI := kappas[id]

	var sum float64
	for _, j := range anchors {
		if j == id {
			continue
		}

		d := normalizeAngle(thetaI - theta[j])
		deltaTheta := math.Abs(d)
		dSign := 1.0
		if d < 0 {
			dSign = -1.0
		}

		kappaJ := kappas[j]
		denom := 2 * math.Pi * mu * kappaI * kappaJ
		chi := n * deltaTheta / denom
		p := clamp(1/(math.Pow(chi, beta)+1), probEps, 1-probEps)

		dChiDTheta := dSign * n / denom
		dPdChi := -beta * math.Pow(chi, beta-1) / math.Pow(math.Pow(chi, beta)+1, 2)

		var dLdP float64
		if g.HasEdge(id, j) {
			dLdP = 1 / p
		} else {
			dLdP = -1 / (1 - p)
		}

		sum += dLdP * dPdChi * dChiDTheta
	}

	return sum
}
