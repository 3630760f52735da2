package router

// RoutingResult is the outcome of a single Route call.
type RoutingResult struct {
	// Path is the sequence of node IDs from source to target, inclusive.
	// Empty when Success is false.
	Path []string

	// ForwardPath is the source-side pointer's walk, from source up to and
	// including MeetingNode. Empty when Success is false.
	ForwardPath []string

	// BackwardPath is the target-side pointer's walk, from target up to and
	// including MeetingNode. Empty when Success is false.
	BackwardPath []string

	// MeetingNode is the node where the two pointers met (or, for an
	// immediate-adjacency finish, the endpoint one pointer hopped onto).
	// Empty string when Success is false.
	MeetingNode string

	// Success reports whether one pointer landed on a node the other had
	// already visited before both pointers stalled.
	Success bool

	// Hops is len(Path)-1; zero for a source==target request.
	Hops int

	// Distance is the path's total hyperbolic length: the sum of
	// HyperbolicDistance between consecutive Path nodes. On failure, no
	// path exists, so this instead reports the direct hyperbolic distance
	// between source and target (see DESIGN.md).
	Distance float64

	// Stretch is the ratio of Distance to the direct hyperbolic distance
	// between source and target. 1 for a source==target request; NaN when
	// routing failed.
	Stretch float64
}
