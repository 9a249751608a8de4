// Package placement - connectivity repair suggestions and evaluation.
package placement

import "sort"

// SuggestConnections proposes new edges for stations with fewer than
// minConnections direct in-network links. For each such station, the nearest
// not-yet-connected other stations (haversine distance ascending, ties by ID)
// are suggested until the minimum is met or candidates run out.
//
// The graph is not mutated: the caller decides whether to build the
// suggested connections.
func (o *Optimizer) SuggestConnections(stationIDs []string, minConnections int) []EdgeSuggestion {
	inNetwork := make(map[string]bool, len(stationIDs))
	for _, id := range stationIDs {
		inNetwork[id] = true
	}

	var suggestions []EdgeSuggestion

	for _, sid := range stationIDs {
		connected := make(map[string]bool)
		current := 0
		for _, e := range o.g.Neighbors(sid) {
			connected[e.To] = true
			if inNetwork[e.To] {
				current++
			}
		}
		if current >= minConnections {
			continue
		}

		type candidate struct {
			dist float64
			id   string
		}
		var candidates []candidate
		for _, other := range stationIDs {
			if other == sid || connected[other] {
				continue
			}
			candidates = append(candidates, candidate{dist: o.g.Distance(sid, other), id: other})
		}
		sort.Slice(candidates, func(i, j int) bool {
			if candidates[i].dist != candidates[j].dist {
				return candidates[i].dist < candidates[j].dist
			}
			return candidates[i].id < candidates[j].id
		})

		needed := minConnections - current
		if needed > len(candidates) {
			needed = len(candidates)
		}
		for _, c := range candidates[:needed] {
			suggestions = append(suggestions, EdgeSuggestion{From: sid, To: c.id})
		}
	}

	return suggestions
}

// Evaluate reports placement quality for the given station set: coverage at
// DefaultCoverageRadiusKm, pairwise spacing, and mean in-network degree.
//
// With fewer than two stations the spacing and connectivity fields are all
// zero — the degenerate single-station (or empty) selection divides by
// nothing and is not an error.
func (o *Optimizer) Evaluate(stationIDs []string) Metrics {
	m := Metrics{
		Coverage: o.Coverage(stationIDs, DefaultCoverageRadiusKm),
	}
	if len(stationIDs) == 0 {
		return m
	}

	if len(stationIDs) > 1 {
		var dists []float64
		for i, a := range stationIDs {
			for _, b := range stationIDs[i+1:] {
				dists = append(dists, o.g.Distance(a, b))
			}
		}

		sum := 0.0
		m.MinStationDistance = dists[0]
		m.MaxStationDistance = dists[0]
		for _, d := range dists {
			sum += d
			if d < m.MinStationDistance {
				m.MinStationDistance = d
			}
			if d > m.MaxStationDistance {
				m.MaxStationDistance = d
			}
		}
		m.AvgStationDistance = sum / float64(len(dists))
	}

	inNetwork := make(map[string]bool, len(stationIDs))
	for _, id := range stationIDs {
		inNetwork[id] = true
	}
	total := 0
	for _, sid := range stationIDs {
		for _, e := range o.g.Neighbors(sid) {
			if inNetwork[e.To] {
				total++
			}
		}
	}
	if len(stationIDs) > 1 {
		m.AvgConnectionsPerStation = float64(total) / float64(len(stationIDs))
	}

	return m
}
