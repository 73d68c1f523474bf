// Package astar implements a cost-plus-heuristic route search over a
// positioned connectivity graph that stays well-defined when the heuristic
// is not admissible.
//
// Overview:
//
//   - Search expands nodes in increasing f = g + h order, where g is the
//     accumulated edge cost from the start and h estimates the remaining cost
//     between node positions.
//   - The frontier is an insertion-sorted list: the lowest f sits at the tail
//     and is popped from there. Among equal f values the most recently
//     inserted node pops first.
//   - Every rediscovery of an unsettled node overwrites its g, f and
//     predecessor, even if the new cost is worse, and queues another entry
//     for it. Earlier entries stay where they were; when one of them pops
//     after the node was closed, the node is expanded again.
//
// Termination:
//
//   - Admissible heuristic (WithHeuristic(h, true), the default): the search
//     succeeds as soon as the goal is popped.
//   - Non-admissible heuristic (WithHeuristic(h, false)): once the goal has
//     been settled, the search succeeds on the first pop after which no node
//     left in the frontier has a g lower than the goal's g. The route may be
//     sub-optimal; it is never improvable by what is still queued.
//   - The frontier empties, or MaxIterations pops (default 1000) happen
//     without success: StatusExhausted.
//
// Results and errors:
//
//   - Search never returns an error. An empty Route together with a Status
//     tells the caller what happened: StatusExhausted (no route) or
//     StatusUnresolved (an endpoint is not in the graph).
//   - A predecessor chain that does not lead back to the start within
//     Graph.Len() steps indicates corrupted state. Search panics with
//     ErrBrokenPredecessorChain rather than return a wrong route.
//   - Option constructors panic on invalid arguments (ErrBadMaxIterations).
//
// Heuristics:
//
//   - Manhattan (default): L1 distance over x, y and z.
//   - Euclidean: straight-line distance.
//   - Zero: always 0; turns the search into uniform-cost search.
//   - Weighted(h, w): scales another heuristic, usually non-admissibly.
//
// Concurrency:
//
//   - Each Search call owns its state. Concurrent searches over the same
//     Graph are safe as long as the graph is not mutated meanwhile.
//   - Search runs to completion; there is no cancellation. Callers that need
//     it run the search in their own goroutine and discard the result.
//
// Observability:
//
//   - Prometheus: navpath_search_total{status}, navpath_search_iterations,
//     navpath_search_duration_seconds (registered on the default registry).
//   - WithOnDiscover / WithOnSettle expose the frontier and closed set as they
//     change, for debug visualisation.
//
// Complexity:
//
//   - Time:  O(I · (d + F)) where I ≤ MaxIterations pops, d = node degree and
//     F = frontier length (insertion is linear).
//   - Space: O(V) for the score, predecessor and closed maps, plus one
//     frontier entry per discovery.
package astar
