package astar

import (
	"fmt"
	"slices"
)

// reconstruct walks prev from goal back to start and returns the route in
// start→goal order. A route never holds more than limit nodes; a longer or
// dangling chain means the search state is corrupt, and reconstruct panics
// with ErrBrokenPredecessorChain instead of looping or guessing.
func reconstruct(prev map[string]string, start, goal string, limit int) []string {
	route := []string{goal}
	for cur := goal; cur != start; {
		p, ok := prev[cur]
		if !ok {
			panic(fmt.Errorf("%w: %q has no predecessor", ErrBrokenPredecessorChain, cur))
		}
		route = append(route, p)
		if len(route) > limit {
			panic(fmt.Errorf("%w: more than %d nodes between %q and %q",
				ErrBrokenPredecessorChain, limit, start, goal))
		}
		cur = p
	}
	slices.Reverse(route)

	return route
}
