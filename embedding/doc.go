// Package embedding places every node of a parsed graph onto the
// hyperbolic disc: a radial coordinate derived from the node's hidden
// degree, and an angular coordinate found by local log-likelihood
// maximization under the network's inferred connection-probability model.
//
// The pipeline runs in three stages, each its own file: kappa.go assigns
// hidden degrees, radial.go turns those into radii, and angular.go runs the
// two-phase angular optimizer (gradient ascent over a bounded anchor set,
// then streaming circular-mean placement for everyone else). driver.go
// wires the three stages plus netstats.Estimate into a single Embed call.
package embedding
