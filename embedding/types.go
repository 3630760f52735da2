package embedding

import (
	"math"

	"github.com/danieldanhe/hyperbolic-networks/graph"
)

// EmbeddedNode is one node's placement on the hyperbolic disc.
type EmbeddedNode struct {
	ID     string
	Kappa  float64 // hidden degree
	Radial float64 // r
	Theta  float64 // angular coordinate, in (-pi, pi]
}

// Poincare projects the node's native-disc coordinates (r, theta) onto the
// Poincare disc model, returning Cartesian (x, y) with x^2+y^2 < 1. This is
// a presentation convenience carried over from original-source's plotting
// support (see original_source/poincare-model/index.py); the routing and
// optimization math elsewhere in this package operates entirely in native
// (r, theta) coordinates.
func (n EmbeddedNode) Poincare() (x, y float64) {
	rho := math.Tanh(n.Radial / 2)
	return rho * math.Cos(n.Theta), rho * math.Sin(n.Theta)
}

// Embedding is the full output of Embed: every node placed, the adjacency
// it was placed on, and the network statistics the placement was derived
// from.
type Embedding struct {
	Nodes []EmbeddedNode
	Index map[string]int // node ID -> position in Nodes
	Graph *graph.Graph
	Stats NetworkStatsView
}

// NetworkStatsView is the subset of netstats.NetworkStats the embedding and
// router packages need downstream, copied in rather than imported so that
// router does not need to depend on netstats directly.
type NetworkStatsView struct {
	N      int
	Beta   float64
	Mu     float64
	Kappa0 float64
	R      float64
}

const (
	// defaultK is the number of high-degree anchor nodes phase 1 optimizes
	// directly, per §9's stricter historical variant.
	defaultK = 500

	// defaultRounds is how many full sweeps phase 1 makes over the anchor
	// set.
	defaultRounds = 6

	// defaultTolerance is the phase-1 gradient-ascent stopping tolerance.
	defaultTolerance = 2e-4

	// defaultBatchSize bounds how many phase-2 nodes are placed between
	// cancellation checks.
	defaultBatchSize = 100

	// initialLearningRate, minLearningRate and maxLearningRate bound the
	// adaptive step size used inside a single node's gradient ascent.
	initialLearningRate = 0.1
	minLearningRate     = 0.001
	maxLearningRate     = 0.2

	// stepClamp bounds a single gradient-ascent step in radians.
	stepClamp = 0.1

	// maxAscentIterations caps a single node's phase-1 ascent.
	maxAscentIterations = 100

	// smallStepStreakLimit: an ascent stops once the clamped step stays
	// below 0.1*tolerance for more than this many consecutive iterations.
	smallStepStreakLimit = 5
)

// Options configures OptimizeAngles (and, through it, Embed).
type Options struct {
	// K is the number of highest-degree nodes placed by phase-1 gradient
	// ascent. Must be > 0.
	K int

	// Rounds is the number of full sweeps phase 1 makes over the anchor
	// set. Must be > 0.
	Rounds int

	// Tolerance is the phase-1 gradient-ascent stopping tolerance. Must be
	// > 0.
	Tolerance float64

	// BatchSize bounds how many phase-2 nodes are placed between
	// cancellation checks. Must be > 0.
	BatchSize int

	// Seed drives the only random draw OptimizeAngles makes: the angle of a
	// phase-2 node with no already-placed neighbor. Tail nodes receive no
	// random initial angle before phase 2. Zero selects a fixed default
	// seed rather than a time-based one.
	Seed int64

	// DualSolutionSearch, when true, reruns each phase-1 ascent from the
	// antipodal starting angle and keeps whichever of the two converged
	// solutions has the higher local log-likelihood (§9, optional
	// strengthening of the anchor search).
	DualSolutionSearch bool
}

// Option is a functional option for OptimizeAngles.
type Option func(*Options)

// DefaultOptions returns the optimizer's default configuration:
// K=500, Rounds=6, Tolerance=2e-4, BatchSize=100, Seed=0 (deterministic
// default), DualSolutionSearch=false.
func DefaultOptions() Options {
	return Options{
		K:                  defaultK,
		Rounds:             defaultRounds,
		Tolerance:          defaultTolerance,
		BatchSize:          defaultBatchSize,
		Seed:               0,
		DualSolutionSearch: false,
	}
}

// WithK overrides the anchor-set size. Panics if k <= 0.
func WithK(k int) Option {
	return func(o *Options) {
		if k <= 0 {
			panic("embedding: WithK requires k > 0")
		}
		o.K = k
	}
}

// WithRounds overrides the number of phase-1 sweeps. Panics if rounds <= 0.
func WithRounds(rounds int) Option {
	return func(o *Options) {
		if rounds <= 0 {
			panic("embedding: WithRounds requires rounds > 0")
		}
		o.Rounds = rounds
	}
}

// WithTolerance overrides the phase-1 stopping tolerance. Panics if
// tol <= 0.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			panic("embedding: WithTolerance requires tol > 0")
		}
		o.Tolerance = tol
	}
}

// WithBatchSize overrides the phase-2 cancellation-check granularity.
// Panics if size <= 0.
func WithBatchSize(size int) Option {
	return func(o *Options) {
		if size <= 0 {
			panic("embedding: WithBatchSize requires size > 0")
		}
		o.BatchSize = size
	}
}

// WithSeed overrides the deterministic RNG seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithDualSolutionSearch enables the antipodal-restart strengthening of the
// phase-1 anchor search.
func WithDualSolutionSearch(enabled bool) Option {
	return func(o *Options) {
		o.DualSolutionSearch = enabled
	}
}

// normalizeAngle reduces theta to (-pi, pi].
func normalizeAngle(theta float64) float64 {
	const twoPi = 2 * math.Pi
	theta = math.Mod(theta, twoPi)
	if theta <= -math.Pi {
		theta += twoPi
	} else if theta > math.Pi {
		theta -= twoPi
	}

	return theta
}
