// Package pathfind - alternative-route entry point.
package pathfind

import (
	"errors"

	"github.com/veloplan/veloplan/citygraph"
)

// KShortestPaths returns up to k alternative routes from start to end,
// cheapest first.
//
// Known incompleteness, kept deliberately: loopless alternative enumeration
// is not implemented, so the slice currently contains at most the single
// best path found by Dijkstra. k is advisory and only its sign is checked;
// callers must not assume k distinct routes come back.
// TODO: enumerate loopless alternatives via Yen's deviation algorithm once
// the dashboard grows a route-comparison view that consumes more than one.
//
// A disconnected pair yields an empty slice and no error; endpoint and graph
// validation errors propagate as from Dijkstra.
func (f *Finder) KShortestPaths(start, end string, k int, w citygraph.CostWeights) ([]*PathResult, error) {
	if k < 1 {
		return nil, nil
	}

	best, err := f.Dijkstra(start, end, w)
	if err != nil {
		if errors.Is(err, ErrNoPath) {
			return []*PathResult{}, nil
		}
		return nil, err
	}

	return []*PathResult{best}, nil
}
