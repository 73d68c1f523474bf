package astar_test

import (
	"fmt"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/navpath/navgraph"
)

// lineGraph lays ids out on the x axis, one unit apart, linking each to the next.
func lineGraph(t testing.TB, ids ...string) *navgraph.Graph {
	t.Helper()
	g := navgraph.NewGraph()
	for i, id := range ids {
		require.NoError(t, g.AddNode(id, mgl64.Vec3{float64(i), 0, 0}))
	}
	for i := 0; i+1 < len(ids); i++ {
		require.NoError(t, g.AddEdge(ids[i], ids[i+1]))
	}
	return g
}

// asciiGraph builds a 4-connected unit grid from rows where '#' is blocked
// and any other rune is walkable. Node IDs are "x,y"; positions lie on the
// x/z plane.
func asciiGraph(t testing.TB, rows ...string) *navgraph.Graph {
	t.Helper()
	g := navgraph.NewGraph()
	open := func(x, y int) bool {
		return y >= 0 && y < len(rows) && x >= 0 && x < len(rows[y]) && rows[y][x] != '#'
	}
	for y, row := range rows {
		for x := range row {
			if open(x, y) {
				require.NoError(t, g.AddNode(cellID(x, y), mgl64.Vec3{float64(x), 0, float64(y)}))
			}
		}
	}
	for y, row := range rows {
		for x := range row {
			if !open(x, y) {
				continue
			}
			if open(x+1, y) {
				require.NoError(t, g.AddEdge(cellID(x, y), cellID(x+1, y)))
			}
			if open(x, y+1) {
				require.NoError(t, g.AddEdge(cellID(x, y), cellID(x, y+1)))
			}
		}
	}
	return g
}

func cellID(x, y int) string { return fmt.Sprintf("%d,%d", x, y) }

// requireValidRoute checks endpoints and that every step follows an edge.
func requireValidRoute(t *testing.T, g *navgraph.Graph, route []string, start, goal string) {
	t.Helper()
	require.NotEmpty(t, route)
	require.Equal(t, start, route[0])
	require.Equal(t, goal, route[len(route)-1])
	for i := 0; i+1 < len(route); i++ {
		require.Contains(t, g.Neighbors(route[i]), route[i+1], "step %d: %s→%s is not an edge", i, route[i], route[i+1])
	}
}
