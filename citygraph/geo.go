// Package citygraph - spherical and planar geometry helpers.
package citygraph

import (
	"math"

	"github.com/paulmach/orb"
)

const (
	// earthRadiusKm is the Earth radius used by the haversine formula.
	earthRadiusKm = 6371.0

	pi180 = math.Pi / 180.0
)

// degreesToRadians converts degrees to radians.
func degreesToRadians(d float64) float64 {
	return d * pi180
}

// HaversineDistance returns the great-circle distance in kilometers between
// two points given in (lon, lat) degrees.
//
// Properties relied upon throughout the engine: the distance is non-negative,
// zero for identical points, and symmetric in its arguments even though
// stored graph edges need not be.
func HaversineDistance(p, q orb.Point) float64 {
	lat1 := degreesToRadians(p.Lat())
	lat2 := degreesToRadians(q.Lat())
	dLat := degreesToRadians(q.Lat() - p.Lat())
	dLon := degreesToRadians(q.Lon() - p.Lon())

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Asin(math.Sqrt(a))

	return earthRadiusKm * c
}

// PlanarDistance returns the Euclidean distance between two points treating
// raw lon/lat degrees as X/Y. The clustering heuristic assigns nodes to
// centroids in this planar metric, not the spherical one.
func PlanarDistance(p, q orb.Point) float64 {
	dx := p.Lon() - q.Lon()
	dy := p.Lat() - q.Lat()
	return math.Sqrt(dx*dx + dy*dy)
}

// MeanPoint returns the arithmetic mean of pts in the raw lon/lat plane.
// Returns the zero point for an empty input.
func MeanPoint(pts []orb.Point) orb.Point {
	if len(pts) == 0 {
		return orb.Point{}
	}
	var sumLon, sumLat float64
	for _, p := range pts {
		sumLon += p.Lon()
		sumLat += p.Lat()
	}
	n := float64(len(pts))
	return orb.Point{sumLon / n, sumLat / n}
}
