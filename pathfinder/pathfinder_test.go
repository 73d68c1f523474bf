package pathfinder_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/navpath/astar"
	"github.com/katalvlaran/navpath/gridgraph"
	"github.com/katalvlaran/navpath/navgraph"
	"github.com/katalvlaran/navpath/pathfinder"
)

// line builds A–B–C–D–E on the x axis, one cell apart.
func line(t *testing.T) *navgraph.Graph {
	t.Helper()
	g := navgraph.NewGraph()
	ids := []string{"A", "B", "C", "D", "E"}
	for i, id := range ids {
		require.NoError(t, g.AddNode(id, mgl64.Vec3{float64(i), 0, 0}))
	}
	for i := 0; i+1 < len(ids); i++ {
		require.NoError(t, g.AddEdge(ids[i], ids[i+1]))
	}
	return g
}

func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func TestResolve(t *testing.T) {
	p := pathfinder.New(line(t))

	cases := []struct {
		name   string
		marker pathfinder.Marker
		want   string
		ok     bool
	}{
		{"ExactID", pathfinder.AtNode("C"), "C", true},
		{"UnknownID", pathfinder.AtNode("Z"), "", false},
		{"Empty", pathfinder.Marker{}, "", false},
		{"WithinTolerance", pathfinder.AtPosition(mgl64.Vec3{1.2, 0, 0.3}), "B", true},
		{"OnNode", pathfinder.AtPosition(mgl64.Vec3{4, 0, 0}), "E", true},
		{"AtToleranceIsOutside", pathfinder.AtPosition(mgl64.Vec3{4, 1, 0}), "", false},
		{"FarAway", pathfinder.AtPosition(mgl64.Vec3{100, 0, 0}), "", false},
		{"TieGoesToGraphOrder", pathfinder.AtPosition(mgl64.Vec3{2.5, 0, 0}), "C", true},
		{"IDBeatsPosition", pathfinder.AtNodeOrPosition("A", mgl64.Vec3{4, 0, 0}), "A", true},
		{"UnknownIDFallsBack", pathfinder.AtNodeOrPosition("Z", mgl64.Vec3{3.1, 0, 0}), "D", true},
		{"NegativeCoordinates", pathfinder.AtPosition(mgl64.Vec3{-0.4, -0.2, 0}), "A", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := p.Resolve(tc.marker)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestRoute_StartWithinToleranceOfB(t *testing.T) {
	p := pathfinder.New(line(t))

	res := p.Route(context.Background(), pathfinder.AtPosition(mgl64.Vec3{1.3, 0, -0.2}), pathfinder.AtNode("E"))
	require.Equal(t, astar.StatusSucceeded, res.Status)
	require.Equal(t, []string{"B", "C", "D", "E"}, res.Route)
}

func TestRoute_LineScenarios(t *testing.T) {
	p := pathfinder.New(line(t), pathfinder.WithHeuristic(astar.Zero, true))
	ctx := context.Background()

	require.Equal(t, []string{"A", "B", "C", "D", "E"}, p.Route(ctx, pathfinder.AtNode("A"), pathfinder.AtNode("E")).Route)
	require.Equal(t, []string{"A", "B", "C"}, p.Route(ctx, pathfinder.AtNode("A"), pathfinder.AtNode("C")).Route)
	require.Equal(t, []string{"D"}, p.Route(ctx, pathfinder.AtNode("D"), pathfinder.AtNode("D")).Route)
}

func TestRoute_UnresolvedIsWarned(t *testing.T) {
	logger, buf := captureLogger()
	p := pathfinder.New(line(t), pathfinder.WithLogger(logger))

	res := p.Route(context.Background(), pathfinder.AtPosition(mgl64.Vec3{50, 0, 0}), pathfinder.AtNode("E"))
	require.Equal(t, astar.StatusUnresolved, res.Status)
	require.Empty(t, res.Route)
	require.False(t, res.Found())

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "start_resolved=false")
	assert.Contains(t, out, "goal_resolved=true")
}

func TestRoute_DisjointIsExhausted(t *testing.T) {
	gg, err := gridgraph.FromRows([]string{"..#.."}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	g, err := gg.ToNavGraph()
	require.NoError(t, err)

	res := pathfinder.New(g).Route(context.Background(), pathfinder.AtNode("0,0"), pathfinder.AtNode("4,0"))
	require.Equal(t, astar.StatusExhausted, res.Status)
	require.Empty(t, res.Route)
}

func TestRoute_NilGraph(t *testing.T) {
	logger, _ := captureLogger()
	p := pathfinder.New(nil, pathfinder.WithLogger(logger))

	_, ok := p.Resolve(pathfinder.AtNode("A"))
	require.False(t, ok)
	require.Zero(t, p.Tolerance())

	res := p.Route(context.Background(), pathfinder.AtNode("A"), pathfinder.AtNode("B"))
	require.Equal(t, astar.StatusUnresolved, res.Status)

	_, _, ok = p.DefaultEndpoints()
	require.False(t, ok)
}

func TestRebuildIndex(t *testing.T) {
	p := pathfinder.New(line(t))
	require.Equal(t, uint64(1), p.Generation())
	require.Equal(t, 1.0, p.Tolerance())

	opts := gridgraph.DefaultGridOptions()
	opts.CellSize = 4
	gg, err := gridgraph.FromRows([]string{"...", "..."}, opts)
	require.NoError(t, err)
	g, err := gg.ToNavGraph()
	require.NoError(t, err)

	p.RebuildIndex(g)
	require.Equal(t, uint64(2), p.Generation())
	require.Equal(t, 4.0, p.Tolerance())

	_, ok := p.Resolve(pathfinder.AtNode("A"))
	require.False(t, ok, "nodes of the old graph are gone")

	id, ok := p.Resolve(pathfinder.AtPosition(mgl64.Vec3{6.5, 0, 2.5}))
	require.True(t, ok)
	require.Equal(t, "2,1", id)
}

func TestWithTolerance(t *testing.T) {
	p := pathfinder.New(line(t), pathfinder.WithTolerance(0.25))
	require.Equal(t, 0.25, p.Tolerance())

	_, ok := p.Resolve(pathfinder.AtPosition(mgl64.Vec3{1.3, 0, 0}))
	require.False(t, ok)
	id, ok := p.Resolve(pathfinder.AtPosition(mgl64.Vec3{1.2, 0, 0}))
	require.True(t, ok)
	require.Equal(t, "B", id)
}

func TestDefaultEndpoints(t *testing.T) {
	p := pathfinder.New(line(t))
	start, goal, ok := p.DefaultEndpoints()
	require.True(t, ok)
	require.Equal(t, "A", start.ID)
	require.Equal(t, "E", goal.ID)
	require.Equal(t, mgl64.Vec3{4, 0, 0}, goal.Position)

	res := p.Route(context.Background(), start, goal)
	require.Len(t, res.Route, 5)
}

func TestSearchOptionsArePassedThrough(t *testing.T) {
	var settled []string
	p := pathfinder.New(line(t),
		pathfinder.WithMaxIterations(2),
		pathfinder.WithSearchOptions(astar.WithOnSettle(func(id string, _ float64) { settled = append(settled, id) })),
	)

	res := p.Route(context.Background(), pathfinder.AtNode("A"), pathfinder.AtNode("E"))
	require.Equal(t, astar.StatusExhausted, res.Status)
	require.Equal(t, []string{"A", "B"}, settled)
}

func TestMarkerString(t *testing.T) {
	assert.Equal(t, "A", pathfinder.AtNode("A").String())
	assert.Equal(t, "(1, 2.5, 0)", pathfinder.AtPosition(mgl64.Vec3{1, 2.5, 0}).String())
	assert.Equal(t, "A@(1, 0, 0)", pathfinder.AtNodeOrPosition("A", mgl64.Vec3{1, 0, 0}).String())
}

func TestOptions_Invalid(t *testing.T) {
	require.PanicsWithValue(t, pathfinder.ErrBadTolerance.Error(), func() { pathfinder.WithTolerance(0) })
	require.PanicsWithValue(t, pathfinder.ErrBadConcurrency.Error(), func() { pathfinder.WithMaxConcurrency(-1) })
	require.PanicsWithValue(t, astar.ErrBadMaxIterations.Error(), func() { pathfinder.WithMaxIterations(0) })

	o := pathfinder.DefaultOptions()
	pathfinder.WithHeuristic(nil, false)(&o)
	assert.NotNil(t, o.Heuristic)
	assert.False(t, o.Admissible)
	assert.Positive(t, o.MaxConcurrency)
}
