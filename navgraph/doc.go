// Package navgraph defines the positioned connectivity graph that route
// searches run on.
//
// What:
//
//   - Node: an opaque string identity paired with a 3D position (mgl64.Vec3).
//   - Graph: an ordered collection of Nodes plus a neighbor relation.
//     The relation may be symmetric (default) or directed (WithDirected).
//   - CellSize: the spacing the graph was generated with; query adapters use it
//     as the tolerance when snapping world positions onto nodes.
//
// Lifecycle:
//
//  1. Create with NewGraph(opts...).
//  2. Populate with AddNode / AddEdge (usually done by a generator such as gridgraph).
//  3. Hand the finished graph to readers (astar.Search, pathfinder.New).
//
// Searches assume the graph is frozen while they run. All methods are guarded
// by a sync.RWMutex, so concurrent reads are safe; mutating a graph that has
// in-flight searches is the caller's responsibility to avoid.
//
// Errors:
//
//   - ErrEmptyNodeID:   AddNode called with "".
//   - ErrDuplicateNode: AddNode called twice with the same ID.
//   - ErrNodeNotFound:  AddEdge endpoint missing. Neighbors and Position panic
//     with this error for unknown IDs; asking for a node that is not in the
//     graph is a programming error, not a runtime condition.
//   - ErrSelfLoop:      AddEdge with from == to.
//   - ErrBadCellSize:   WithCellSize with a non-positive value (panics).
//
// Complexity:
//
//   - AddNode, HasNode, Node, Position: O(1).
//   - AddEdge: O(d) duplicate check, d = degree of the source node.
//   - Neighbors: O(d) copy.
//   - Hops: O(V + E).
package navgraph
