// Package citygraph - node, edge and cost-weight value types.
package citygraph

import "github.com/paulmach/orb"

// Node is a location in the city network: an intersection, a point of
// interest, or a bike station.
//
// Lat/Lon are degrees on a WGS84-like plane; no projection correction is
// applied. Capacity is a bike count and is meaningful only when IsStation is
// true. Demand is a non-negative relative score (default 0) assigned by the
// placement package's density model; it is comparable between nodes but is
// not a probability.
type Node struct {
	// ID uniquely identifies this node within its Graph.
	ID string

	// Name is the human-readable display name.
	Name string

	// Lat is the latitude in degrees.
	Lat float64

	// Lon is the longitude in degrees.
	Lon float64

	// IsStation marks this node as a bike station.
	IsStation bool

	// Capacity is the number of bikes the station can hold.
	Capacity int

	// Demand is the estimated relative demand at this location.
	Demand float64
}

// Point returns the node position as an orb.Point (lon, lat order).
func (n *Node) Point() orb.Point {
	return orb.Point{n.Lon, n.Lat}
}

// Edge is a directed weighted arc to another node.
//
// Edges live in the adjacency list of their source node; the reverse
// direction, if any, is a separate Edge record owned by the destination.
type Edge struct {
	// To is the destination node ID. The model does not require the
	// destination to exist in the node table; lookups against a missing
	// destination degrade to sentinel values downstream.
	To string

	// Distance is the edge length in kilometers (> 0).
	Distance float64

	// Time is the free-flow travel time in minutes (> 0).
	Time float64

	// Traffic is a multiplicative factor on travel time
	// (1.0 = free flow, 2.0 = double time). Conventionally ≥ 1.
	Traffic float64
}

// WeightedCost blends the edge's factors into a single scalar cost:
//
//	w.Distance·Distance + w.Time·Time + w.Traffic·(Time·Traffic)
//
// The traffic term scales time only; distance is never traffic-inflated.
func (e Edge) WeightedCost(w CostWeights) float64 {
	return w.Distance*e.Distance + w.Time*e.Time + w.Traffic*(e.Time*e.Traffic)
}

// CostWeights are the blending coefficients for WeightedCost.
//
// Any non-negative floats are valid; the model does not require them to sum
// to 1 and callers must not assume normalization. The zero value yields a
// zero cost for every edge — use DefaultCostWeights for the conventional
// blend.
type CostWeights struct {
	Distance float64 // coefficient on edge distance (km)
	Time     float64 // coefficient on free-flow time (min)
	Traffic  float64 // coefficient on traffic-inflated time (min)
}

// DefaultCostWeights returns the conventional blend (0.4, 0.4, 0.2).
// The defaults belong to the caller boundary: algorithms receive explicit
// weights and apply no implicit defaults of their own.
func DefaultCostWeights() CostWeights {
	return CostWeights{Distance: 0.4, Time: 0.4, Traffic: 0.2}
}
