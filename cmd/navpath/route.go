package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/navpath/astar"
	"github.com/katalvlaran/navpath/gridgraph"
	"github.com/katalvlaran/navpath/navgraph"
	"github.com/katalvlaran/navpath/pathfinder"
)

type routeFlags struct {
	from, to string
	verify   bool
}

func newRouteCmd(a *app) *cobra.Command {
	var f routeFlags
	cmd := &cobra.Command{
		Use:   "route <scenario.yaml>",
		Short: "Run the scenario's route queries",
		Long: `Run the route queries of a scenario file and print one line per query.

Without --from/--to the scenario's start/goal and queries are used; a scenario
with none of them routes from the first to the last walkable cell.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRoute(cmd, args[0], f)
		},
	}
	cmd.Flags().StringVar(&f.from, "from", "", "start node ID (x,y)")
	cmd.Flags().StringVar(&f.to, "to", "", "goal node ID (x,y)")
	cmd.Flags().BoolVar(&f.verify, "verify", false, "compare each route with the minimum hop count")
	cmd.MarkFlagsRequiredTogether("from", "to")
	return cmd
}

func (a *app) runRoute(cmd *cobra.Command, path string, f routeFlags) error {
	s, gg, g, err := a.loadMap(path)
	if err != nil {
		return err
	}
	opts, err := a.cfg.PathfinderOptions(g, a.logger)
	if err != nil {
		return err
	}
	p := pathfinder.New(g, opts...)

	var reqs []pathfinder.Request
	switch {
	case f.from != "":
		reqs = []pathfinder.Request{{Start: pathfinder.AtNode(f.from), Goal: pathfinder.AtNode(f.to)}}
	default:
		reqs = s.Requests()
	}
	if len(reqs) == 0 {
		start, goal, ok := p.DefaultEndpoints()
		if !ok {
			return fmt.Errorf("%s: map has no walkable cells", path)
		}
		reqs = []pathfinder.Request{{Start: start, Goal: goal}}
	}

	results, err := p.RouteBatch(cmd.Context(), reqs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, res := range results {
		printResult(out, reqs[i], res)
		if f.verify && res.Found() {
			printVerification(out, g, res)
		}
		if res.Status == astar.StatusExhausted {
			printBridge(out, p, gg, reqs[i])
		}
	}
	return nil
}

func printResult(w io.Writer, req pathfinder.Request, res astar.Result) {
	fmt.Fprintf(w, "%s -> %s: %s", req.Start, req.Goal, res.Status)
	if res.Found() {
		fmt.Fprintf(w, " hops=%d cost=%g iterations=%d route=%s",
			len(res.Route)-1, res.Cost, res.Iterations, strings.Join(res.Route, " "))
	} else {
		fmt.Fprintf(w, " iterations=%d", res.Iterations)
	}
	fmt.Fprintln(w)
}

func printVerification(w io.Writer, g *navgraph.Graph, res astar.Result) {
	start, goal := res.Route[0], res.Route[len(res.Route)-1]
	shortest := g.Hops(start)[goal]
	if hops := len(res.Route) - 1; hops == shortest {
		fmt.Fprintf(w, "  verify: minimal (%d hops)\n", shortest)
	} else {
		fmt.Fprintf(w, "  verify: %d hops, minimum is %d\n", hops, shortest)
	}
}

// printBridge explains an exhausted query whose endpoints lie in different
// regions by listing the fewest blocked cells that would join them.
func printBridge(w io.Writer, p *pathfinder.Pathfinder, gg *gridgraph.GridGraph, req pathfinder.Request) {
	from, okFrom := p.Resolve(req.Start)
	to, okTo := p.Resolve(req.Goal)
	if !okFrom || !okTo {
		return
	}
	fx, fy, _ := gg.ParseNodeID(from)
	tx, ty, _ := gg.ParseNodeID(to)

	comps := gg.ConnectedComponents()
	src, dst := gg.ComponentOf(comps, fx, fy), gg.ComponentOf(comps, tx, ty)
	if src < 0 || dst < 0 {
		return
	}
	if src == dst {
		fmt.Fprintln(w, "  same region: iteration cap reached")
		return
	}
	path, cost, err := gg.Bridge(comps, src, dst)
	if err != nil {
		return
	}
	cells := make([]string, 0, cost)
	for _, idx := range gg.Blocked(path) {
		cells = append(cells, gg.NodeID(gg.Coordinate(idx)))
	}
	fmt.Fprintf(w, "  different regions: clear %d cell(s): %s\n", cost, strings.Join(cells, " "))
}
