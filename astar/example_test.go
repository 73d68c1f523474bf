package astar_test

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/katalvlaran/navpath/astar"
	"github.com/katalvlaran/navpath/navgraph"
)

// ExampleSearch routes along a five-node corridor.
func ExampleSearch() {
	g := navgraph.NewGraph()
	for i, id := range []string{"A", "B", "C", "D", "E"} {
		_ = g.AddNode(id, mgl64.Vec3{float64(i), 0, 0})
	}
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")
	_ = g.AddEdge("C", "D")
	_ = g.AddEdge("D", "E")

	res := astar.Search(g, "A", "E")
	fmt.Println(res.Status, res.Route, res.Cost)

	res = astar.Search(g, "A", "Z")
	fmt.Println(res.Status, len(res.Route))
	// Output:
	// succeeded [A B C D E] 4
	// unresolved 0
}
