// Package pathfind implements single-pair shortest-path search over a
// citygraph.Graph.
//
// Two algorithms share one output contract:
//
//   - Dijkstra: label-setting relaxation over cumulative blended edge cost,
//     using a min-heap with lazy decrease-key (stale entries are skipped when
//     popped). The search terminates as soon as the target is settled.
//   - AStar: identical relaxation mechanics, but the priority key adds a
//     straight-line haversine heuristic to the tentative cost. The heuristic
//     converts the remaining crow-flight distance into an estimated time at a
//     fixed 15 km/h cycling speed and blends the two through the same
//     distance/time weights as the edge cost. The traffic weight is excluded:
//     traffic cannot be estimated from geometry alone. On representative
//     inputs AStar settles no more nodes than Dijkstra for the same query.
//
// Both return a PathResult on success and ErrNoPath when the target cannot
// be settled; "no path" is always distinguishable from the valid one-node
// path produced when start == end. Endpoints missing from the graph surface
// as ErrNodeNotFound.
//
// Complexity of both searches: O((V + E) log V) time, O(V + E) space.
//
// The package also provides Reachable, a hop-bounded breadth-first sweep for
// lightweight network analysis, and KShortestPaths, an alternative-route
// entry point that currently yields at most the single best path (see its
// doc comment).
package pathfind
