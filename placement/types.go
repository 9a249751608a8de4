// Package placement - optimizer handle, result types and defaults.
package placement

import (
	"math/rand"

	"github.com/veloplan/veloplan/citygraph"
)

const (
	// DefaultCoverageRadiusKm is the walking radius used by Evaluate and the
	// conventional default for the coverage-driven heuristics.
	DefaultCoverageRadiusKm = 0.5

	// DefaultClusterSeed seeds the clustering RNG when no override is given.
	// The seed is part of the public contract: reruns with the same seed on
	// the same graph return the same station set.
	DefaultClusterSeed int64 = 42

	// DefaultMaxIterations caps Lloyd's iterations as a fallback when the
	// representatives never stabilize.
	DefaultMaxIterations = 100

	// densityRadiusKm bounds the influence of a density seed point; nodes
	// beyond it keep demand 0 from that seed.
	densityRadiusKm = 2.0
)

// Optimizer runs placement heuristics against a graph snapshot. Only
// SetDemandByDensity mutates the graph; every other method is a pure query.
type Optimizer struct {
	g *citygraph.Graph
}

// NewOptimizer wraps g for station-placement queries.
func NewOptimizer(g *citygraph.Graph) *Optimizer {
	return &Optimizer{g: g}
}

// EdgeSuggestion is a proposed new connection between two stations.
// Suggestions are advisory; nothing is added to the graph.
type EdgeSuggestion struct {
	From string
	To   string
}

// DensityArea is a demand seed point: a position with a relative density
// weight, typically a downtown block, a transit hub, or a campus.
type DensityArea struct {
	Lat     float64
	Lon     float64
	Density float64
}

// Metrics reports the quality of a station selection.
//
// The pairwise-distance and connectivity fields are all zero when fewer than
// two stations are selected; the single-station case is degenerate by
// contract, not an error.
type Metrics struct {
	// Coverage is the fraction of graph nodes within
	// DefaultCoverageRadiusKm of some selected station.
	Coverage float64

	// AvgStationDistance is the mean pairwise haversine distance (km)
	// among selected stations.
	AvgStationDistance float64

	// MinStationDistance is the smallest pairwise distance (km).
	MinStationDistance float64

	// MaxStationDistance is the largest pairwise distance (km).
	MaxStationDistance float64

	// AvgConnectionsPerStation is the mean count of direct edges from a
	// selected station to other selected stations.
	AvgConnectionsPerStation float64
}

// ClusterOption tunes ClusterPlacement.
type ClusterOption func(*clusterConfig)

type clusterConfig struct {
	seed          int64
	maxIterations int
}

// WithSeed overrides the clustering RNG seed. Seed 0 falls back to
// DefaultClusterSeed so that the zero value never silently produces a
// time-dependent stream.
func WithSeed(seed int64) ClusterOption {
	return func(c *clusterConfig) {
		if seed != 0 {
			c.seed = seed
		}
	}
}

// WithMaxIterations overrides the Lloyd's iteration cap. Non-positive values
// are ignored.
func WithMaxIterations(n int) ClusterOption {
	return func(c *clusterConfig) {
		if n > 0 {
			c.maxIterations = n
		}
	}
}

// rngFromSeed returns the deterministic RNG stream for a clustering run.
// Same seed ⇒ identical stream across runs and platforms.
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
