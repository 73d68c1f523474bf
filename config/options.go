package config

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/navpath/astar"
	"github.com/katalvlaran/navpath/follow"
	"github.com/katalvlaran/navpath/gridgraph"
	"github.com/katalvlaran/navpath/pathfinder"
)

// HeuristicFunc returns the configured heuristic, weighted if Weight is set.
func (c SearchConfig) HeuristicFunc() (astar.Heuristic, error) {
	h, err := astar.HeuristicByName(c.Heuristic)
	if err != nil {
		return nil, err
	}
	if c.Weight > 0 && c.Weight != 1 {
		h = astar.Weighted(h, c.Weight)
	}
	return h, nil
}

// PathfinderOptions converts the search and resolver sections. g is needed
// for distance edge costs.
func (c Config) PathfinderOptions(g astar.Graph, logger *slog.Logger) ([]pathfinder.Option, error) {
	h, err := c.Search.HeuristicFunc()
	if err != nil {
		return nil, err
	}
	opts := []pathfinder.Option{
		pathfinder.WithHeuristic(h, c.Search.Admissible),
		pathfinder.WithMaxIterations(c.Search.MaxIterations),
		pathfinder.WithLogger(logger),
	}
	if c.Resolver.Tolerance > 0 {
		opts = append(opts, pathfinder.WithTolerance(c.Resolver.Tolerance))
	}
	if c.Resolver.MaxConcurrency > 0 {
		opts = append(opts, pathfinder.WithMaxConcurrency(c.Resolver.MaxConcurrency))
	}
	if c.Search.EdgeCost == "distance" {
		opts = append(opts, pathfinder.WithSearchOptions(astar.WithEdgeCost(astar.DistanceCost(g))))
	}
	return opts, nil
}

// FollowOptions converts the follow section.
func (c Config) FollowOptions(logger *slog.Logger) []follow.Option {
	return []follow.Option{
		follow.WithArrivalRadius(c.Follow.ArrivalRadius),
		follow.WithLogger(logger),
	}
}

// GridOptions converts the grid section.
func (c GridConfig) GridOptions() gridgraph.GridOptions {
	opts := gridgraph.DefaultGridOptions()
	opts.CellSize = c.CellSize
	opts.WalkableThreshold = c.WalkableThreshold
	opts.Origin = mgl64.Vec3(c.Origin)
	if c.Connectivity == 8 {
		opts.Conn = gridgraph.Conn8
	}
	return opts
}
