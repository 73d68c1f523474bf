package gridgraph

// ConnectedComponents finds all contiguous regions of walkable cells
// according to gg.Conn connectivity.
// Returns a slice of components in row-major order of their first cell; each
// component is a slice of cell indices (row-major) in BFS order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	total := gg.Width * gg.Height
	seen := make([]bool, total)
	var comps [][]int
	offsets := gg.NeighborOffsets()

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Walkable(x, y) {
				continue
			}
			i0 := gg.index(x, y)
			if seen[i0] {
				continue
			}
			// BFS to collect component
			queue := []int{i0}
			seen[i0] = true
			var comp []int

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				comp = append(comp, u)
				ux, uy := gg.Coordinate(u)
				for _, d := range offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.Walkable(vx, vy) {
						continue
					}
					vi := gg.index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, comp)
		}
	}
	return comps
}

// ComponentOf returns the index into ConnectedComponents of the component
// holding cell (x,y), or -1 if the cell is blocked or out of bounds.
func (gg *GridGraph) ComponentOf(comps [][]int, x, y int) int {
	if !gg.Walkable(x, y) {
		return -1
	}
	target := gg.index(x, y)
	for ci, comp := range comps {
		for _, i := range comp {
			if i == target {
				return ci
			}
		}
	}
	return -1
}

// ComponentNodeIDs converts components into navgraph node IDs.
func (gg *GridGraph) ComponentNodeIDs(comps [][]int) [][]string {
	out := make([][]string, len(comps))
	for ci, comp := range comps {
		ids := make([]string, len(comp))
		for k, i := range comp {
			ids[k] = gg.NodeID(gg.Coordinate(i))
		}
		out[ci] = ids
	}
	return out
}
