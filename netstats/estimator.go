package netstats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/danieldanhe/hyperbolic-networks/graph"
)

// Estimate computes NetworkStats for g (§4.3). It returns ErrEmptyGraph for
// a zero-node graph (alongside a stats value with N=0 and every other field
// NaN) and ErrDegenerateStats when the derived beta or kappa0 fall outside
// the domain the rest of the pipeline requires.
func Estimate(g *graph.Graph, opts ...Option) (NetworkStats, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.N()
	if n == 0 {
		return NetworkStats{
			N: 0, KBar: math.NaN(), Gamma: math.NaN(), Clustering: math.NaN(),
			Beta: math.NaN(), Kappa0: math.NaN(), Mu: math.NaN(), R: math.NaN(),
			DegreeHeterogeneity: math.NaN(),
		}, ErrEmptyGraph
	}

	degrees := make([]float64, n)
	for i, id := range g.Nodes {
		degrees[i] = float64(g.Degree[id])
	}

	kBar := stat.Mean(degrees, nil)
	gamma := hillGamma(degrees)
	clustering := averageClustering(g, cfg.SampleSize)
	heterogeneity := degreeHeterogeneity(degrees, kBar)

	beta := 1 + betaClusteringSlope*clustering
	kappa0 := kBar * (gamma - 2) / (gamma - 1)
	mu := beta / (2 * math.Pi * kBar * math.Sin(math.Pi/beta))
	r := 2 * math.Log(float64(n)/(math.Pi*mu*kappa0*kappa0))

	stats := NetworkStats{
		N: n, KBar: kBar, Gamma: gamma, Clustering: clustering,
		Beta: beta, Kappa0: kappa0, Mu: mu, R: r,
		DegreeHeterogeneity: heterogeneity,
	}

	// §4.3 requires beta > 1 and kappa0 > 0. A zero-clustering graph (any
	// tree, including the S2 path and S3 star scenarios) drives beta to
	// exactly 1 rather than below it — treated here as the boundary case's
	// non-degenerate side, see DESIGN.md for the Open Question this
	// resolves. beta < 1 cannot occur (clustering is never negative), so
	// this only guards kappa0.
	if beta < 1 || kappa0 <= 0 {
		return stats, ErrDegenerateStats
	}

	return stats, nil
}

// hillGamma implements the Hill-style tail-exponent estimator (§4.3):
// filter out zero degrees, sort descending, take the top tailFraction of
// that list (never fewer than minTailSize, or all of it if smaller), and
// fit gamma = 1 + n/sum(ln(k/kMin)) over the tail. Clamped to
// [GammaMin, GammaMax]; a zero-sum tail (every tail value equals kMin)
// returns the upper clamp, since the fit is undefined there.
func hillGamma(degrees []float64) float64 {
	nonzero := make([]float64, 0, len(degrees))
	for _, d := range degrees {
		if d > 0 {
			nonzero = append(nonzero, d)
		}
	}
	if len(nonzero) == 0 {
		return GammaMax
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(nonzero)))

	tailLen := int(float64(len(nonzero)) * tailFraction)
	if tailLen < minTailSize {
		tailLen = minTailSize
	}
	if tailLen > len(nonzero) {
		tailLen = len(nonzero)
	}
	tail := nonzero[:tailLen]
	kMin := tail[len(tail)-1]

	var sum float64
	for _, k := range tail {
		sum += math.Log(k / kMin)
	}
	if sum == 0 {
		return GammaMax
	}

	gamma := 1 + float64(len(tail))/sum

	return clamp(gamma, GammaMin, GammaMax)
}

// averageClustering implements the sampled local-clustering estimator
// (§4.3): for each of up to sampleSize nodes, in input order, count the
// fraction of neighbor-pairs that are themselves adjacent. Nodes with fewer
// than two neighbors are skipped and do not count toward the average; an
// average over zero qualifying nodes is 0.
func averageClustering(g *graph.Graph, sampleSize int) float64 {
	limit := sampleSize
	if limit > len(g.Nodes) {
		limit = len(g.Nodes)
	}

	var total float64
	var counted int
	for _, v := range g.Nodes[:limit] {
		neighbors := g.NeighborsOf(v)
		if len(neighbors) < 2 {
			continue
		}

		var possible, triangles int
		for i := 0; i < len(neighbors); i++ {
			for j := i + 1; j < len(neighbors); j++ {
				possible++
				if g.HasEdge(neighbors[i], neighbors[j]) {
					triangles++
				}
			}
		}

		total += float64(triangles) / float64(possible)
		counted++
	}

	if counted == 0 {
		return 0
	}

	return total / float64(counted)
}

// degreeHeterogeneity reports std(degree)/mean(degree), the heterogeneity
// indicator original-source's network generator (see
// original_source/generate-points/index.py) used alongside clustering to
// characterize a graph. Returns 0 when kBar is 0 (an edgeless graph has no
// degree spread to speak of).
func degreeHeterogeneity(degrees []float64, kBar float64) float64 {
	if kBar == 0 {
		return 0
	}

	return stat.StdDev(degrees, nil) / kBar
}

// clamp restricts x to [lo, hi].
func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}
