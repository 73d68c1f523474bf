package navgraph

import (
	"errors"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// Sentinel errors for graph construction and lookup.
var (
	// ErrEmptyNodeID indicates that a node was added with an empty ID.
	ErrEmptyNodeID = errors.New("navgraph: node ID is empty")

	// ErrDuplicateNode indicates that a node ID is already present.
	ErrDuplicateNode = errors.New("navgraph: duplicate node ID")

	// ErrNodeNotFound indicates that an operation referenced a node that is not in the graph.
	ErrNodeNotFound = errors.New("navgraph: node not found")

	// ErrSelfLoop indicates an edge from a node to itself.
	ErrSelfLoop = errors.New("navgraph: self-loop not allowed")

	// ErrBadCellSize indicates a non-positive cell size.
	ErrBadCellSize = errors.New("navgraph: cell size must be positive")
)

// DefaultCellSize is the cell size of a graph built without WithCellSize.
const DefaultCellSize = 1.0

// Node is a single location in the graph.
// Two nodes are the same node iff their IDs are equal; positions are data.
type Node struct {
	ID       string
	Position mgl64.Vec3
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCellSize sets the generation cell size of the graph.
// Panics with ErrBadCellSize if size <= 0.
func WithCellSize(size float64) GraphOption {
	if size <= 0 {
		panic(ErrBadCellSize.Error())
	}
	return func(g *Graph) { g.cellSize = size }
}

// WithDirected makes AddEdge insert one-way edges only.
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// Graph is an ordered set of positioned nodes with a neighbor relation.
//
// order keeps insertion order so enumeration (Nodes) and neighbor lists are
// deterministic; searches over the same graph therefore return the same route.
type Graph struct {
	mu sync.RWMutex // guards every field below

	cellSize float64
	directed bool

	order     []string            // node IDs in insertion order
	nodes     map[string]*Node    // node ID → Node
	adjacency map[string][]string // node ID → ordered neighbor IDs
	edges     int                 // number of adjacency entries
}

// NewGraph creates an empty, undirected Graph with DefaultCellSize.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		cellSize:  DefaultCellSize,
		nodes:     make(map[string]*Node),
		adjacency: make(map[string][]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
