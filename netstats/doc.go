// Package netstats derives the aggregate numbers the hyperbolic embedding
// is built from: mean degree, a Hill-style tail exponent of the degree
// distribution, sampled average local clustering, and the closed-form
// derived quantities (β, μ, κ₀, R) that parameterize the rest of the
// pipeline.
//
// Estimate is the package's single entry point; everything else is a
// private helper of that computation. The estimators here are pragmatic
// heuristics tuned for embedding quality, not a rigorous statistical
// inference procedure.
package netstats
