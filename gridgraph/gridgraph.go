package gridgraph

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/navpath/navgraph"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs and ErrBadCellSize if
// opts.CellSize is not positive.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	if opts.CellSize <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadCellSize, opts.CellSize)
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:             w,
		Height:            h,
		CellValues:        cells,
		Conn:              opts.Conn,
		WalkableThreshold: opts.WalkableThreshold,
		CellSize:          opts.CellSize,
		Origin:            opts.Origin,
		neighborOffsets:   offsets,
	}, nil
}

// From2D builds a GridGraph with DefaultGridOptions and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn
	return NewGridGraph(values, opts)
}

// FromRows builds a GridGraph from text rows: '#' marks a blocked cell and
// any other rune a walkable one.
func FromRows(rows []string, opts GridOptions) (*GridGraph, error) {
	values := make([][]int, len(rows))
	for y, row := range rows {
		values[y] = make([]int, 0, len(row))
		for _, r := range row {
			v := opts.WalkableThreshold
			if r == '#' {
				v = opts.WalkableThreshold - 1
			}
			values[y] = append(values[y], v)
		}
	}
	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Walkable reports whether (x,y) is in bounds and at or above WalkableThreshold.
func (gg *GridGraph) Walkable(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.WalkableThreshold
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Should be used in all adjacency traversals to avoid branching.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// NodeID formats the navgraph node identifier for cell (x,y).
func (gg *GridGraph) NodeID(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}

// ParseNodeID is the inverse of NodeID. Only the exact form NodeID produces
// for an in-bounds cell is accepted.
func (gg *GridGraph) ParseNodeID(id string) (x, y int, ok bool) {
	xs, ys, found := strings.Cut(id, ",")
	if !found {
		return 0, 0, false
	}
	x, errX := strconv.Atoi(xs)
	y, errY := strconv.Atoi(ys)
	if errX != nil || errY != nil || gg.NodeID(x, y) != id {
		return 0, 0, false
	}
	return x, y, gg.InBounds(x, y)
}

// Position returns the world position of the center of cell (x,y).
func (gg *GridGraph) Position(x, y int) mgl64.Vec3 {
	return gg.Origin.Add(mgl64.Vec3{float64(x) * gg.CellSize, 0, float64(y) * gg.CellSize})
}

// CellAt returns the cell whose center is nearest to p on the X/Z plane.
// ok is false if that cell lies outside the grid.
func (gg *GridGraph) CellAt(p mgl64.Vec3) (x, y int, ok bool) {
	d := p.Sub(gg.Origin)
	x = int(math.Round(d.X() / gg.CellSize))
	y = int(math.Round(d.Z() / gg.CellSize))
	return x, y, gg.InBounds(x, y)
}

// ToNavGraph converts the walkable cells into an undirected *navgraph.Graph.
// Nodes are added in row-major order; each walkable cell is linked to every
// walkable neighbor according to gg.Conn, in NeighborOffsets order.
// The graph's cell size is gg.CellSize.
// Complexity: O(W×H×d) time and memory.
func (gg *GridGraph) ToNavGraph() (*navgraph.Graph, error) {
	g := navgraph.NewGraph(navgraph.WithCellSize(gg.CellSize))
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Walkable(x, y) {
				continue
			}
			if err := g.AddNode(gg.NodeID(x, y), gg.Position(x, y)); err != nil {
				return nil, err
			}
		}
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Walkable(x, y) {
				continue
			}
			uID := gg.NodeID(x, y)
			for _, d := range gg.NeighborOffsets() {
				nx, ny := x+d[0], y+d[1]
				if !gg.Walkable(nx, ny) {
					continue
				}
				if err := g.AddEdge(uID, gg.NodeID(nx, ny)); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
