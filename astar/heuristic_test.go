package astar_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/navpath/astar"
)

func TestHeuristics(t *testing.T) {
	a := mgl64.Vec3{1, 2, 3}
	b := mgl64.Vec3{4, -2, 3}

	assert.Equal(t, 7.0, astar.Manhattan(a, b))
	assert.Equal(t, 7.0, astar.Manhattan(b, a))
	assert.InDelta(t, 5.0, astar.Euclidean(a, b), 1e-12)
	assert.Zero(t, astar.Zero(a, b))
	assert.Equal(t, 21.0, astar.Weighted(astar.Manhattan, 3)(a, b))
	assert.Zero(t, astar.Manhattan(a, a))
}

func TestHeuristicByName(t *testing.T) {
	for _, name := range []string{"manhattan", "L1", " Euclidean ", "l2", "zero", "none"} {
		h, err := astar.HeuristicByName(name)
		require.NoError(t, err, name)
		require.NotNil(t, h, name)
	}

	h, err := astar.HeuristicByName("chebyshev")
	require.ErrorIs(t, err, astar.ErrUnknownHeuristic)
	require.Nil(t, h)
}
