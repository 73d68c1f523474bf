package navgraph

import (
	"fmt"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// AddNode inserts a node at pos.
//
// Returns ErrEmptyNodeID for id == "" and ErrDuplicateNode if id is present.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string, pos mgl64.Vec3) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, id)
	}
	g.order = append(g.order, id)
	g.nodes[id] = &Node{ID: id, Position: pos}
	g.adjacency[id] = nil

	return nil
}

// AddEdge links from → to, and also to → from unless the graph is directed.
// Adding an existing edge again is a no-op, so neighbor lists never hold duplicates.
//
// Returns ErrNodeNotFound if an endpoint is missing, ErrSelfLoop if from == to.
// Complexity: O(d) where d is the degree of the endpoints.
func (g *Graph) AddEdge(from, to string) error {
	if from == to {
		return fmt.Errorf("%w: %q", ErrSelfLoop, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[from]; !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, from)
	}
	if _, ok := g.nodes[to]; !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, to)
	}

	g.link(from, to)
	if !g.directed {
		g.link(to, from)
	}

	return nil
}

// link appends to to the adjacency of from unless already present.
// Caller must hold g.mu for writing.
func (g *Graph) link(from, to string) {
	if slices.Contains(g.adjacency[from], to) {
		return
	}
	g.adjacency[from] = append(g.adjacency[from], to)
	g.edges++
}

// HasNode reports whether id is a node of the graph.
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[id]
	return ok
}

// Node returns the node with the given id.
func (g *Graph) Node(id string) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// Position returns the position of node id.
// Panics with ErrNodeNotFound if id is not in the graph.
func (g *Graph) Position(id string) mgl64.Vec3 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		panic(fmt.Errorf("%w: %q", ErrNodeNotFound, id))
	}
	return n.Position
}

// Neighbors returns the neighbor IDs of id in insertion order.
// The returned slice is a copy; callers may keep or modify it.
// Panics with ErrNodeNotFound if id is not in the graph.
func (g *Graph) Neighbors(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		panic(fmt.Errorf("%w: %q", ErrNodeNotFound, id))
	}
	return slices.Clone(nbrs)
}

// Nodes returns every node in insertion order.
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, len(g.order))
	for i, id := range g.order {
		out[i] = *g.nodes[id]
	}
	return out
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns the number of directed adjacency entries.
// An undirected edge counts twice.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// CellSize returns the generation cell size.
func (g *Graph) CellSize() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cellSize
}

// Directed reports whether AddEdge inserts one-way edges.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}
