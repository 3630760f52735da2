package graph

import "errors"

// Sentinel errors returned by the graph package.
var (
	// ErrMalformedInput indicates the edge text has no lines at all (not even
	// a header), so there is nothing to parse, or is not valid UTF-8.
	ErrMalformedInput = errors.New("graph: malformed input, expected at least a header line")
)
