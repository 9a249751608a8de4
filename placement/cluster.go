// Package placement - seeded centroid clustering.
package placement

import (
	"github.com/paulmach/orb"

	"github.com/veloplan/veloplan/citygraph"
)

// ClusterPlacement partitions the graph's nodes into numStations clusters in
// the raw lon/lat plane and returns one representative node per cluster.
//
// Mechanics (Lloyd's algorithm, node-snapped):
//
//  1. Initial centroids are numStations distinct nodes drawn from the
//     graph's sorted node order by a deterministic seeded RNG.
//  2. Every node is assigned to the nearest centroid by planar Euclidean
//     distance on raw lat/lon (not haversine; at city scale the plane is
//     close enough and the original metric is part of the contract).
//  3. Each cluster re-centers on its coordinate mean, then snaps to the
//     real cluster member nearest that mean — centroids are always real
//     graph nodes, never synthetic points. Empty clusters keep their
//     previous centroid unchanged.
//  4. Iterate until no representative changes, or the iteration cap.
//
// A graph with fewer nodes than numStations returns all node IDs. The same
// seed on the same graph reproduces the same result byte for byte.
func (o *Optimizer) ClusterPlacement(numStations int, opts ...ClusterOption) []string {
	cfg := clusterConfig{seed: DefaultClusterSeed, maxIterations: DefaultMaxIterations}
	for _, opt := range opts {
		opt(&cfg)
	}

	nodes := o.g.Nodes()
	if len(nodes) <= numStations {
		ids := make([]string, len(nodes))
		for i, n := range nodes {
			ids[i] = n.ID
		}
		return ids
	}
	if numStations < 1 {
		return []string{}
	}

	rng := rngFromSeed(cfg.seed)
	perm := rng.Perm(len(nodes))
	centroids := make([]*citygraph.Node, numStations)
	for i := 0; i < numStations; i++ {
		centroids[i] = nodes[perm[i]]
	}

	for iter := 0; iter < cfg.maxIterations; iter++ {
		// Assignment: nearest centroid in the planar metric; ties keep the
		// lowest cluster index.
		clusters := make([][]*citygraph.Node, numStations)
		for _, n := range nodes {
			best := 0
			bestDist := citygraph.PlanarDistance(n.Point(), centroids[0].Point())
			for i := 1; i < numStations; i++ {
				d := citygraph.PlanarDistance(n.Point(), centroids[i].Point())
				if d < bestDist {
					bestDist = d
					best = i
				}
			}
			clusters[best] = append(clusters[best], n)
		}

		// Re-center and snap each cluster to its member nearest the mean.
		converged := true
		next := make([]*citygraph.Node, numStations)
		for i, cluster := range clusters {
			if len(cluster) == 0 {
				next[i] = centroids[i]
				continue
			}

			pts := make([]orb.Point, len(cluster))
			for j, n := range cluster {
				pts[j] = n.Point()
			}
			mean := citygraph.MeanPoint(pts)

			closest := cluster[0]
			closestDist := citygraph.PlanarDistance(closest.Point(), mean)
			for _, n := range cluster[1:] {
				if d := citygraph.PlanarDistance(n.Point(), mean); d < closestDist {
					closestDist = d
					closest = n
				}
			}

			next[i] = closest
			if closest.ID != centroids[i].ID {
				converged = false
			}
		}

		centroids = next
		if converged {
			break
		}
	}

	ids := make([]string, numStations)
	for i, c := range centroids {
		ids[i] = c.ID
	}
	return ids
}
