// Package citygraph - the Graph aggregate and its operations.
package citygraph

import (
	"math"
	"sort"
)

// Graph is the in-memory city network: a node table plus per-node ordered
// adjacency lists of outgoing edges.
//
// The Graph is not safe for concurrent mutation; the engine is
// single-threaded by design and every operation runs to completion on the
// calling goroutine.
type Graph struct {
	nodes map[string]*Node  // node ID → node
	adj   map[string][]Edge // node ID → outgoing edges, in insertion order
}

// NewGraph creates an empty city graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		adj:   make(map[string][]Edge),
	}
}

// EdgeOption configures a single AddEdge call.
type EdgeOption func(*edgeConfig)

type edgeConfig struct {
	oneWay  bool
	traffic float64
}

// OneWay suppresses the reverse edge record, producing a directed-only
// connection.
func OneWay() EdgeOption {
	return func(c *edgeConfig) { c.oneWay = true }
}

// WithTraffic sets the traffic factor for the connection
// (1.0 = free flow). Applies to both directions of a bidirectional add.
func WithTraffic(factor float64) EdgeOption {
	return func(c *edgeConfig) { c.traffic = factor }
}

// AddNode inserts n into the node table, overwriting any existing node with
// the same ID. The node's adjacency list is preserved across overwrites.
func (g *Graph) AddNode(n Node) {
	stored := n
	g.nodes[n.ID] = &stored
	if _, ok := g.adj[n.ID]; !ok {
		g.adj[n.ID] = []Edge{}
	}
}

// AddEdge appends an edge from→to with the given distance (km) and time
// (minutes). Unless OneWay is supplied, an independent reverse record to→from
// with identical weights is appended as well; the two records may diverge if
// later adds use different weights.
//
// Endpoints are not required to exist in the node table yet.
func (g *Graph) AddEdge(from, to string, distanceKm, timeMin float64, opts ...EdgeOption) {
	cfg := edgeConfig{traffic: 1.0}
	for _, opt := range opts {
		opt(&cfg)
	}

	g.adj[from] = append(g.adj[from], Edge{To: to, Distance: distanceKm, Time: timeMin, Traffic: cfg.traffic})
	if !cfg.oneWay {
		g.adj[to] = append(g.adj[to], Edge{To: from, Distance: distanceKm, Time: timeMin, Traffic: cfg.traffic})
	}
}

// Node looks up a node by ID. The second return is false when the ID is
// unknown; the lookup never panics. The returned pointer aliases graph
// storage: callers may flip IsStation or Capacity in place after placement.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// HasNode reports whether id is present in the node table.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Neighbors returns the outgoing edges of id in insertion order.
// Unknown IDs yield an empty slice. The returned slice is a copy; mutating
// it does not affect the graph.
func (g *Graph) Neighbors(id string) []Edge {
	edges := g.adj[id]
	out := make([]Edge, len(edges))
	copy(out, edges)
	return out
}

// NodeIDs returns all node IDs in ascending order. The sorted order is the
// canonical deterministic iteration order for every algorithm in the engine.
// Complexity: O(V log V).
func (g *Graph) NodeIDs() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Nodes returns all nodes ordered by ascending ID.
func (g *Graph) Nodes() []*Node {
	ids := g.NodeIDs()
	out := make([]*Node, len(ids))
	for i, id := range ids {
		out[i] = g.nodes[id]
	}
	return out
}

// Stations returns the nodes currently flagged as stations, ordered by
// ascending ID.
func (g *Graph) Stations() []*Node {
	var out []*Node
	for _, n := range g.Nodes() {
		if n.IsStation {
			out = append(out, n)
		}
	}
	return out
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the total number of edge records. A bidirectional
// connection counts as 2.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, edges := range g.adj {
		total += len(edges)
	}
	return total
}

// Distance returns the great-circle distance in kilometers between two nodes
// by ID. If either ID is unknown the sentinel +Inf is returned; test it with
// Reachable rather than doing arithmetic on the result.
func (g *Graph) Distance(aID, bID string) float64 {
	a, okA := g.nodes[aID]
	b, okB := g.nodes[bID]
	if !okA || !okB {
		return math.Inf(1)
	}
	return HaversineDistance(a.Point(), b.Point())
}

// Reachable reports whether d is a finite distance, i.e. not the +Inf
// "absent/unreachable" sentinel produced by Distance and propagated by the
// search and placement code.
func Reachable(d float64) bool {
	return !math.IsInf(d, 1)
}
