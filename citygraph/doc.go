// Package citygraph defines the weighted city-network model used by the
// route-finding and station-placement packages.
//
// A Graph maps node IDs to location attributes (name, WGS84-style lat/lon,
// station flag, capacity, demand) and to ordered adjacency lists of outgoing
// weighted edges. Each edge carries a distance (km), a travel time (minutes)
// and a multiplicative traffic factor; the blended per-edge cost is
//
//	cost = wd·distance + wt·time + wtr·(time·traffic)
//
// where the traffic factor inflates only the time term, never the distance.
//
// A "bidirectional" connection is stored as two independent edge records.
// Nothing enforces that the two directions stay symmetric: edges added later
// with different weights may legally diverge, which can produce asymmetric
// routing costs between the same pair of nodes.
//
// Lookups against unknown IDs never fail hard: node lookup reports ok=false,
// neighbor listing returns an empty slice, and geographic distance returns
// +Inf. Use Reachable to test the distance sentinel instead of comparing
// against infinity at call sites.
package citygraph
