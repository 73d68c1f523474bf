package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/navpath/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ToNavGraph
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_ToNavGraph generates a navigation graph from text rows.
// '#' cells are blocked and produce no node.
func ExampleGridGraph_ToNavGraph() {
	gg, _ := gridgraph.FromRows([]string{
		"...",
		".#.",
	}, gridgraph.DefaultGridOptions())

	g, _ := gg.ToNavGraph()
	fmt.Println("nodes:", g.Len())
	fmt.Println("neighbors of 1,0:", g.Neighbors("1,0"))
	fmt.Println("hops 0,1→2,1:", g.Hops("0,1")["2,1"])

	// Output:
	// nodes: 5
	// neighbors of 1,0: [0,0 2,0]
	// hops 0,1→2,1: 4
}

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_ConnectedComponents identifies walkable regions.
// Scenario:
//
//   - Grid values: 0 = blocked, 1,2,3 = walkable terrain kinds
//   - Conn4: 4-directional adjacency (N/E/S/W)
//   - The 3 at (0,2) touches (0,1), so only two regions remain.
func ExampleGridGraph_ConnectedComponents() {
	grid := [][]int{
		{0, 1, 1, 0, 2},
		{1, 1, 0, 2, 2},
		{3, 0, 2, 2, 0},
	}
	gg, _ := gridgraph.From2D(grid, gridgraph.Conn4)

	comps := gg.ConnectedComponents()
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d:", i)
		for _, idx := range comp {
			x, y := gg.Coordinate(idx)
			fmt.Printf(" (%d,%d)", x, y)
		}
		fmt.Println()
	}

	// Output:
	// components: 2
	// component 0: (1,0) (2,0) (1,1) (0,1) (0,2)
	// component 1: (4,0) (4,1) (3,1) (3,2) (2,2)
}

////////////////////////////////////////////////////////////////////////////////
// Example: Bridge
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_Bridge finds the walls to clear between two regions.
func ExampleGridGraph_Bridge() {
	gg, _ := gridgraph.FromRows([]string{
		"..#..",
		"..#..",
		"..#..",
	}, gridgraph.DefaultGridOptions())

	comps := gg.ConnectedComponents()
	path, cost, _ := gg.Bridge(comps, 0, 1)

	fmt.Printf("clear %d cell(s):", cost)
	for _, idx := range gg.Blocked(path) {
		x, y := gg.Coordinate(idx)
		fmt.Printf(" (%d,%d)", x, y)
	}
	fmt.Println()
	// Output:
	// clear 1 cell(s): (2,0)
}
