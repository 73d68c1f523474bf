// Package pathfinder maps caller-supplied markers onto graph nodes and runs
// route searches between them.
//
// A Marker names a node by ID, by world position, or both. Resolve prefers
// an exact ID match and otherwise falls back to the nearest node lying
// strictly closer than the tolerance (by default the graph's cell size).
// Equidistant candidates resolve to the node added to the graph first.
//
// Route resolves both endpoints and hands them to astar.Search. An endpoint
// that cannot be resolved is a lookup failure: it is logged as a warning and
// reported as an empty route with astar.StatusUnresolved, never as an error.
//
// The graph is treated as frozen between RebuildIndex calls. Callers that
// regenerate or mutate the graph call RebuildIndex afterwards; in-flight
// queries keep using the snapshot they started with.
//
// RouteBatch fans independent queries out over a bounded worker group.
// Identical queries that are in flight at the same time against the same
// index generation run once and share the result. The only error it returns
// is the caller's context error.
//
// Observability: each Route emits an OpenTelemetry span and records latency
// and status metrics through the global meter provider.
package pathfinder
