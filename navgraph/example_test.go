package navgraph_test

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/navpath/navgraph"
)

// ExampleGraph builds a small square of waypoints.
//
//	A───B
//	│   │
//	C───D
func ExampleGraph() {
	g := navgraph.NewGraph(navgraph.WithCellSize(2))
	_ = g.AddNode("A", mgl64.Vec3{0, 0, 0})
	_ = g.AddNode("B", mgl64.Vec3{2, 0, 0})
	_ = g.AddNode("C", mgl64.Vec3{0, 0, 2})
	_ = g.AddNode("D", mgl64.Vec3{2, 0, 2})
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("A", "C")
	_ = g.AddEdge("B", "D")
	_ = g.AddEdge("C", "D")

	fmt.Println("nodes:", g.Len())
	fmt.Println("neighbors of A:", g.Neighbors("A"))
	fmt.Println("hops A→D:", g.Hops("A")["D"])

	// Output:
	// nodes: 4
	// neighbors of A: [B C]
	// hops A→D: 2
}
