// Package placement - demand ranking and the density demand model.
package placement

import (
	"sort"

	"github.com/paulmach/orb"

	"github.com/veloplan/veloplan/citygraph"
)

// DemandPlacement ranks all nodes by descending demand and selects up to
// numStations of those at or above demandThreshold. When too few qualify,
// the selection is padded with the next-highest-demand remaining nodes
// regardless of threshold, until numStations is reached or the graph runs
// out of nodes. Equal demand breaks ties by ascending node ID so reruns are
// deterministic.
func (o *Optimizer) DemandPlacement(numStations int, demandThreshold float64) []string {
	if numStations < 1 {
		return []string{}
	}

	ranked := o.g.Nodes() // ascending ID, the stable tie-break base
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Demand > ranked[j].Demand
	})

	var selected []string
	for _, n := range ranked {
		if len(selected) == numStations {
			return selected
		}
		if n.Demand >= demandThreshold {
			selected = append(selected, n.ID)
		}
	}

	// Pad from the remaining highest-demand nodes below the threshold.
	for _, n := range ranked {
		if len(selected) == numStations {
			break
		}
		if n.Demand < demandThreshold {
			selected = append(selected, n.ID)
		}
	}

	return selected
}

// SetDemandByDensity overwrites every node's demand in place from the given
// density seed points. For each node, each seed within densityRadiusKm
// contributes density/(1+d²) where d is the haversine distance in km; the
// node keeps the maximum contribution, or 0 when every seed is out of range.
//
// The decay is an inverse-square model, not a normalized distribution:
// resulting demands are comparable to each other, not absolute
// probabilities. This is the engine's only graph-mutating algorithm —
// treat it as a visible side effect, not a query.
func (o *Optimizer) SetDemandByDensity(areas []DensityArea) {
	for _, n := range o.g.Nodes() {
		maxDemand := 0.0
		for _, a := range areas {
			d := citygraph.HaversineDistance(n.Point(), orb.Point{a.Lon, a.Lat})
			if d >= densityRadiusKm {
				continue
			}
			if local := a.Density / (1 + d*d); local > maxDemand {
				maxDemand = local
			}
		}
		n.Demand = maxDemand
	}
}
