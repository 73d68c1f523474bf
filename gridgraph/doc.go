// Package gridgraph turns a 2D grid of walkable and blocked cells into a
// navigation graph, and analyses the grid's connectivity.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable WalkableThreshold.
//   - ToNavGraph emits a *navgraph.Graph: one node per walkable cell, with ID
//     "x,y" and a world position derived from CellSize and Origin, and one
//     undirected edge per pair of neighboring walkable cells.
//   - ConnectedComponents identifies the walkable regions.
//   - Bridge computes the fewest blocked cells to clear so that two regions
//     connect, by flooding one wall-count layer at a time.
//
// Why:
//
//   - Level maps: generate the node graph the route search runs on.
//   - Diagnostics: explain an exhausted search by showing that start and goal
//     lie in different regions, and what it would take to join them.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - Bridge:              O(W×H×d), Memory: O(W×H).
//   - ToNavGraph:          O(W×H×d), Memory: O(W×H×d).
//
// Options:
//
//   - GridOptions.WalkableThreshold: minimum value considered walkable.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//   - GridOptions.CellSize, GridOptions.Origin: world placement of cells.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCellSize: CellSize is not positive.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no bridge exists between the specified components.
package gridgraph
