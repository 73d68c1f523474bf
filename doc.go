// Package navpath is a grid-map route planner: it turns walkable grids into
// navigation graphs and finds routes across them with an A*-style search
// that stays usable with non-admissible heuristics.
//
// The module is organized into small packages:
//
//	navgraph/    positioned nodes and their neighbor relation, thread-safe
//	astar/       the search engine: heuristics, frontier, route reconstruction
//	pathfinder/  resolves markers (IDs or world positions) to nodes, runs
//	             single and batched queries, traces and meters them
//	gridgraph/   grid → navgraph generation, region analysis, wall bridging
//	follow/      walks a route node by node for a moving agent
//	config/      YAML configuration and conversion into package options
//
// Quick start:
//
//	gg, _ := gridgraph.FromRows([]string{
//		"....#....",
//		"....#....",
//		".........",
//	}, gridgraph.DefaultGridOptions())
//	g, _ := gg.ToNavGraph()
//
//	p := pathfinder.New(g)
//	res := p.Route(ctx, pathfinder.AtNode("0,0"), pathfinder.AtPosition(mgl64.Vec3{8, 0, 2}))
//	if res.Found() {
//		fmt.Println(res.Route)
//	}
//
// Search outcomes are reported through astar.Status rather than errors:
// an endpoint that does not resolve yields StatusUnresolved, an unreachable
// goal or an exhausted iteration budget yields StatusExhausted. Only a
// corrupted predecessor chain panics.
//
// The cmd/navpath command runs the same queries from scenario files.
package navpath
