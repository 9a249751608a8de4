// Package placement - coverage metric and greedy selection.
package placement

import "github.com/veloplan/veloplan/citygraph"

// Coverage returns the fraction of graph nodes that lie within maxDistance
// kilometers (straight-line) of at least one member of stationIDs.
// An empty graph has coverage 0. Unknown station IDs contribute nothing:
// their distance to every node is the +Inf sentinel.
//
// Complexity: O(V × |stationIDs|).
func (o *Optimizer) Coverage(stationIDs []string, maxDistance float64) float64 {
	total := o.g.NodeCount()
	if total == 0 {
		return 0.0
	}

	covered := 0
	for _, id := range o.g.NodeIDs() {
		for _, sid := range stationIDs {
			d := o.g.Distance(id, sid)
			if citygraph.Reachable(d) && d <= maxDistance {
				covered++
				break
			}
		}
	}

	return float64(covered) / float64(total)
}

// GreedyPlacement selects station locations by marginal coverage: starting
// from the existing set, it repeatedly adds the remaining node that
// maximizes Coverage at maxCoverageDistance until numStations are selected
// or candidates run out. Candidates are scanned in ascending node-ID order
// and the first maximal candidate wins ties, so results are deterministic.
//
// If the existing set already meets or exceeds numStations it is returned
// unchanged (copied). The graph is never mutated; callers flag the returned
// IDs as stations themselves.
func (o *Optimizer) GreedyPlacement(numStations int, existing []string, maxCoverageDistance float64) []string {
	selected := make([]string, len(existing))
	copy(selected, existing)

	chosen := make(map[string]bool, len(selected))
	for _, id := range selected {
		chosen[id] = true
	}

	var remaining []string
	for _, id := range o.g.NodeIDs() {
		if !chosen[id] {
			remaining = append(remaining, id)
		}
	}

	for len(selected) < numStations && len(remaining) > 0 {
		bestIdx := -1
		bestCoverage := -1.0

		trial := make([]string, len(selected)+1)
		copy(trial, selected)
		for i, candidate := range remaining {
			trial[len(selected)] = candidate
			cov := o.Coverage(trial, maxCoverageDistance)
			if cov > bestCoverage {
				bestCoverage = cov
				bestIdx = i
			}
		}

		selected = append(selected, remaining[bestIdx])
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	return selected
}
