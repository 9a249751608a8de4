// Package placement selects bike-station locations on a citygraph.Graph and
// evaluates the quality of a selection.
//
// Three independent heuristics are provided:
//
//   - Greedy: repeatedly adds the candidate node that maximizes the coverage
//     fraction, starting from an optional pre-existing station set. Ties go
//     to the first maximal candidate in ascending node-ID order. O(stations ×
//     remaining × nodes) — acceptable on city graphs of a few dozen nodes;
//     the dominant cost center if the graph ever grows.
//   - Cluster: seeded Lloyd's-style centroid clustering in the raw lon/lat
//     plane, with each centroid snapped to the real graph node nearest the
//     cluster mean. Determinism is contractual: the same seed on the same
//     graph reproduces the same station set (default seed 42).
//   - Demand: descending-demand ranking with a qualification threshold,
//     padded from the next-highest-demand nodes when too few qualify.
//
// All three silently return fewer (or all) nodes when the graph is smaller
// than the request; an undersized graph is a documented degenerate input,
// not an error.
//
// SuggestConnections proposes — without mutating the graph — new edges for
// stations with too few direct in-network links. Evaluate reports coverage
// and inter-station spacing/connectivity metrics. SetDemandByDensity is the
// one mutating operation in the engine: it overwrites node demand in place
// from caller-supplied density seed points.
package placement
