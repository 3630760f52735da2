package router_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danieldanhe/hyperbolic-networks/embedding"
	"github.com/danieldanhe/hyperbolic-networks/router"
)

func TestHyperbolicDistance_SameNodeIsZero(t *testing.T) {
	a := embedding.EmbeddedNode{ID: "A", Radial: 3.2, Theta: 0.7}
	require.InDelta(t, 0.0, router.HyperbolicDistance(a, a), 1e-9)
}

func TestHyperbolicDistance_Symmetric(t *testing.T) {
	a := embedding.EmbeddedNode{ID: "A", Radial: 2.5, Theta: 0.1}
	b := embedding.EmbeddedNode{ID: "B", Radial: 4.1, Theta: -1.9}
	require.InDelta(t, router.HyperbolicDistance(a, b), router.HyperbolicDistance(b, a), 1e-9)
}

func TestHyperbolicDistance_GrowsWithAngularSeparation(t *testing.T) {
	a := embedding.EmbeddedNode{ID: "A", Radial: 5, Theta: 0}
	near := embedding.EmbeddedNode{ID: "N", Radial: 5, Theta: 0.1}
	far := embedding.EmbeddedNode{ID: "F", Radial: 5, Theta: 3.0}
	require.Less(t, router.HyperbolicDistance(a, near), router.HyperbolicDistance(a, far))
}

func TestHyperbolicDistance_NeverNegative(t *testing.T) {
	a := embedding.EmbeddedNode{ID: "A", Radial: 0.01, Theta: 3.14}
	b := embedding.EmbeddedNode{ID: "B", Radial: 0.01, Theta: -3.14}
	require.GreaterOrEqual(t, router.HyperbolicDistance(a, b), 0.0)
}
