package gridgraph

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no bridge exists between two components.
	ErrNoPath = errors.New("gridgraph: no path between specified components")
	// ErrBadCellSize indicates a non-positive cell size.
	ErrBadCellSize = errors.New("gridgraph: cell size must be positive")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridOptions contains tunable parameters for grid analysis and graph generation.
type GridOptions struct {
	// WalkableThreshold specifies the minimum cell value considered walkable.
	WalkableThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// CellSize is the world distance between neighboring cell centers.
	CellSize float64
	// Origin is the world position of cell (0,0). Grid x runs along the
	// world X axis and grid y along the world Z axis.
	Origin mgl64.Vec3
}

// DefaultGridOptions returns a GridOptions with default settings:
// WalkableThreshold=1 (values ≥1 are walkable), Conn=Conn4, CellSize=1,
// Origin at the world origin.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		WalkableThreshold: 1,
		Conn:              Conn4,
		CellSize:          1,
	}
}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the original input value.
// The remaining fields are copied from GridOptions during construction.
// neighborOffsets is precomputed for efficient adjacency lookups.
type GridGraph struct {
	Width, Height     int
	CellValues        [][]int
	Conn              Connectivity
	WalkableThreshold int
	CellSize          float64
	Origin            mgl64.Vec3
	neighborOffsets   [][2]int
}
