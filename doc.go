// Package veloplan computes shortest bike routes and candidate bike-station
// locations over a small, static, weighted city graph.
//
// 🚲 What is veloplan?
//
//	An in-memory route-finding and station-placement engine:
//		• citygraph/ — weighted city network: nodes, directed weighted edges,
//		  haversine geometry, blended distance/time/traffic edge costs
//		• pathfind/  — single-pair shortest paths: Dijkstra (label-setting)
//		  and A* (heuristic-guided), plus a hop-bounded reachability sweep
//		• placement/ — station-placement heuristics: greedy coverage,
//		  seeded centroid clustering, demand ranking, and their evaluation
//		• dataset/   — the bundled demo city network
//		• export/    — CSV and GeoJSON snapshots for external tooling
//
// The engine is single-threaded and synchronous: every query runs to
// completion on the calling goroutine and returns immutable result values.
// Missing nodes, unreachable targets, and undersized graphs surface as
// sentinel values or sentinel errors, never as panics.
//
// The cmd/veloplan CLI drives the same call surface as the HTTP dashboard
// backend under internal/server; both are thin consumers of the packages
// above.
package veloplan
