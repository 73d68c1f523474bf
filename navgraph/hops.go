package navgraph

import "fmt"

// Hops returns the minimum number of edges from start to every node reachable
// from it, following the neighbor relation (breadth-first).
// start maps to 0; unreachable nodes are absent.
// Panics with ErrNodeNotFound if start is not in the graph.
//
// Complexity: O(V + E) time, O(V) memory.
func (g *Graph) Hops(start string) map[string]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[start]; !ok {
		panic(fmt.Errorf("%w: %q", ErrNodeNotFound, start))
	}

	depth := make(map[string]int, len(g.order))
	depth[start] = 0
	queue := []string{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nbr := range g.adjacency[cur] {
			if _, seen := depth[nbr]; seen {
				continue
			}
			depth[nbr] = depth[cur] + 1
			queue = append(queue, nbr)
		}
	}

	return depth
}
