package netstats

import "errors"

// Sentinel errors returned by Estimate.
var (
	// ErrEmptyGraph indicates the graph has zero nodes. Estimate still
	// returns a NetworkStats with N=0 and every other field NaN alongside
	// this error, so callers that only care about N can ignore it.
	ErrEmptyGraph = errors.New("netstats: graph has no nodes")

	// ErrDegenerateStats indicates the derived beta < 1 or kappa0 <= 0,
	// either of which makes the connection-probability model undefined.
	// beta == 1 (zero clustering) is accepted. Embedding cannot proceed
	// past this point.
	ErrDegenerateStats = errors.New("netstats: degenerate statistics (beta<1 or kappa0<=0)")
)
