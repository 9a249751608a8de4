// Package pathfind - label-setting (Dijkstra) search.
package pathfind

import (
	"container/heap"

	"github.com/veloplan/veloplan/citygraph"
)

// Dijkstra finds the minimum blended-cost path from start to end under the
// given cost weights.
//
// Behavior:
//
//   - start == end returns a one-node path with zero totals before the
//     relaxation loop is entered.
//   - The search settles nodes in increasing tentative cost and terminates
//     as soon as end is popped from the heap, not merely reached.
//   - Stale heap entries (cost recorded at push time worse than the best
//     known cost now) are skipped and do not count as settle events.
//   - A target that is never popped means the nodes are disconnected:
//     ErrNoPath.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func (f *Finder) Dijkstra(start, end string, w citygraph.CostWeights) (*PathResult, error) {
	if err := f.checkEndpoints(start, end); err != nil {
		return nil, err
	}
	if start == end {
		return selfPath(start), nil
	}

	// Best-known tentative cost, cumulative distance/time, and predecessor
	// per reached node ID.
	costs := map[string]float64{start: 0}
	dists := map[string]float64{start: 0}
	times := map[string]float64{start: 0}
	prev := make(map[string]string)

	pq := costHeap{{id: start}}
	heap.Init(&pq)

	explored := 0

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(queueItem)
		cur := item.id

		// Lazy decrease-key: a cheaper entry for cur has been settled or
		// pushed since this one; drop it.
		if best, ok := costs[cur]; ok && item.cost > best {
			continue
		}

		explored++

		if cur == end {
			return &PathResult{
				Path:          reconstructPath(prev, start, end),
				TotalDistance: dists[end],
				TotalTime:     times[end],
				TotalCost:     item.cost,
				NodesExplored: explored,
			}, nil
		}

		for _, edge := range f.g.Neighbors(cur) {
			next := edge.To
			newCost := item.cost + edge.WeightedCost(w)

			if best, seen := costs[next]; seen && newCost >= best {
				continue
			}
			costs[next] = newCost
			dists[next] = dists[cur] + edge.Distance
			times[next] = times[cur] + edge.Time*edge.Traffic
			prev[next] = cur
			heap.Push(&pq, queueItem{id: next, priority: newCost, cost: newCost})
		}
	}

	return nil, ErrNoPath
}

// checkEndpoints validates the finder and the query endpoints.
func (f *Finder) checkEndpoints(start, end string) error {
	if f == nil || f.g == nil {
		return ErrNilGraph
	}
	if !f.g.HasNode(start) || !f.g.HasNode(end) {
		return ErrNodeNotFound
	}
	return nil
}
