package embedding

import "errors"

var (
	// ErrDegenerateStats wraps a netstats.ErrDegenerateStats failure so
	// callers can errors.Is against a single package's sentinel without
	// importing netstats directly.
	ErrDegenerateStats = errors.New("embedding: network stats are degenerate")

	// ErrCanceled is returned when the caller's context is canceled at a
	// phase boundary (§5: between rounds in phase 1, between batches in
	// phase 2).
	ErrCanceled = errors.New("embedding: canceled")
)
