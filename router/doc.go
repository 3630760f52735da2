// Package router computes hyperbolic distances between embedded nodes and
// finds greedy geometric paths between them.
//
// Route walks two pointers inward from the source and the target,
// alternating hops, each one moving to whichever unvisited neighbor lands
// closest (in hyperbolic distance) to the opposite endpoint: the forward
// pointer toward the target, the backward pointer toward the source. The
// walk succeeds once one pointer lands on a node the other has already
// visited, and fails once neither pointer has an unvisited neighbor left.
package router
