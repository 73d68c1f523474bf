package gridgraph

// Bridge finds the fewest blocked cells to clear so that component srcComp
// connects to component dstComp, as identified by ConnectedComponents().
// It returns the row-major cell indices from a srcComp cell to a dstComp cell,
// both included, and the number of blocked cells on that path.
//
// The search runs in layers: layer k holds every cell reachable by clearing
// exactly k walls. Each layer is flooded through walkable cells first, and the
// blocked cells it touches seed layer k+1. The first dstComp cell popped ends
// the search, so the returned cost is minimal.
//
// Memory: O(W·H) for costs and predecessors.
func (gg *GridGraph) Bridge(comps [][]int, srcComp, dstComp int) (path []int, cost int, err error) {
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	isDst := make([]bool, gg.Width*gg.Height)
	for _, i := range comps[dstComp] {
		isDst[i] = true
	}

	walls := make([]int, len(isDst))
	prev := make([]int, len(isDst))
	for i := range walls {
		walls[i] = -1
		prev[i] = -1
	}

	layer := make([]int, 0, len(comps[srcComp]))
	for _, i := range comps[srcComp] {
		walls[i] = 0
		layer = append(layer, i)
	}

	offsets := gg.NeighborOffsets()
	for k := 0; len(layer) > 0; k++ {
		var next []int
		for qi := 0; qi < len(layer); qi++ {
			u := layer[qi]
			if isDst[u] {
				return gg.bridgePath(prev, u), k, nil
			}
			ux, uy := gg.Coordinate(u)
			for _, d := range offsets {
				vx, vy := ux+d[0], uy+d[1]
				if !gg.InBounds(vx, vy) {
					continue
				}
				v := gg.index(vx, vy)
				if walls[v] >= 0 {
					continue
				}
				prev[v] = u
				if gg.Walkable(vx, vy) {
					walls[v] = k
					layer = append(layer, v)
				} else {
					walls[v] = k + 1
					next = append(next, v)
				}
			}
		}
		layer = next
	}
	return nil, 0, ErrNoPath
}

// bridgePath follows prev from end back to a source cell.
func (gg *GridGraph) bridgePath(prev []int, end int) []int {
	var path []int
	for at := end; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Blocked returns the cells of path that are not walkable, in path order.
func (gg *GridGraph) Blocked(path []int) []int {
	var out []int
	for _, i := range path {
		if !gg.Walkable(gg.Coordinate(i)) {
			out = append(out, i)
		}
	}
	return out
}
