package pathfinder_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/navpath/astar"
	"github.com/katalvlaran/navpath/gridgraph"
	"github.com/katalvlaran/navpath/pathfinder"
)

func mazePathfinder(t *testing.T, opts ...pathfinder.Option) (*pathfinder.Pathfinder, *gridgraph.GridGraph) {
	t.Helper()
	gg, err := gridgraph.FromRows([]string{
		"........",
		".######.",
		".#....#.",
		".#.##.#.",
		".#.#..#.",
		".#.#.##.",
		"...#....",
	}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	g, err := gg.ToNavGraph()
	require.NoError(t, err)
	return pathfinder.New(g, opts...), gg
}

func TestRouteBatch_MatchesRoute(t *testing.T) {
	p, gg := mazePathfinder(t, pathfinder.WithMaxConcurrency(3))
	ctx := context.Background()

	var reqs []pathfinder.Request
	for _, goal := range [][2]int{{7, 0}, {4, 4}, {2, 6}, {0, 0}, {3, 0}} {
		reqs = append(reqs, pathfinder.Request{
			Start: pathfinder.AtNode(gg.NodeID(0, 6)),
			Goal:  pathfinder.AtNode(gg.NodeID(goal[0], goal[1])),
		})
	}
	reqs = append(reqs, pathfinder.Request{Start: pathfinder.AtNode("nowhere"), Goal: pathfinder.AtNode("0,0")})

	got, err := p.RouteBatch(ctx, reqs)
	require.NoError(t, err)
	require.Len(t, got, len(reqs))
	for i, req := range reqs {
		require.Equal(t, p.Route(ctx, req.Start, req.Goal), got[i], "request %d", i)
	}
	require.Equal(t, astar.StatusUnresolved, got[len(got)-1].Status)
}

func TestRouteBatch_DuplicatesDoNotShareRoutes(t *testing.T) {
	p, gg := mazePathfinder(t)
	req := pathfinder.Request{
		Start: pathfinder.AtNode(gg.NodeID(0, 0)),
		Goal:  pathfinder.AtNode(gg.NodeID(4, 4)),
	}
	reqs := make([]pathfinder.Request, 32)
	for i := range reqs {
		reqs[i] = req
	}

	got, err := p.RouteBatch(context.Background(), reqs)
	require.NoError(t, err)
	want := slicesClone(got[0].Route)
	for i := range got {
		require.Equal(t, want, got[i].Route, "request %d", i)
	}

	got[0].Route[0] = "mutated"
	for i := 1; i < len(got); i++ {
		require.NotEqual(t, "mutated", got[i].Route[0], "request %d shares its route", i)
	}
}

func TestRouteBatch_Canceled(t *testing.T) {
	p, _ := mazePathfinder(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := p.RouteBatch(ctx, []pathfinder.Request{
		{Start: pathfinder.AtNode("0,0"), Goal: pathfinder.AtNode("7,6")},
	})
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, got)
}

func TestRouteBatch_Empty(t *testing.T) {
	p, _ := mazePathfinder(t)
	got, err := p.RouteBatch(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestRouteBatch_LogsBatchID(t *testing.T) {
	logger, buf := captureLogger()
	p, _ := mazePathfinder(t, pathfinder.WithLogger(logger))

	_, err := p.RouteBatch(context.Background(), []pathfinder.Request{
		{Start: pathfinder.AtNode("0,0"), Goal: pathfinder.AtNode("missing")},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var warned bool
	for _, l := range lines {
		if strings.Contains(l, "level=WARN") {
			warned = true
			require.Contains(t, l, "batch_id=")
			require.Contains(t, l, "request=0")
		}
	}
	require.True(t, warned)
}

func slicesClone(s []string) []string { return append([]string(nil), s...) }
