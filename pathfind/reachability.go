// Package pathfind - hop-bounded breadth-first reachability sweep.
package pathfind

// Reachable performs a breadth-first sweep from start, bounded by maxDepth
// hops, and returns one discovered path per reachable node ID (including
// start itself, mapped to its one-node path).
//
// The returned paths are shortest by hop count only, not by weighted cost;
// the sweep exists for lightweight network analysis, not routing. Nodes are
// expanded in discovery order and never revisited once enqueued, so the
// recorded path for a node is the first one found.
//
// maxDepth must be positive; ErrBadMaxDepth otherwise.
func (f *Finder) Reachable(start string, maxDepth int) (map[string][]string, error) {
	if f == nil || f.g == nil {
		return nil, ErrNilGraph
	}
	if maxDepth < 1 {
		return nil, ErrBadMaxDepth
	}
	if !f.g.HasNode(start) {
		return nil, ErrNodeNotFound
	}

	type sweepItem struct {
		id    string
		depth int
	}

	paths := map[string][]string{start: {start}}
	visited := map[string]bool{start: true}
	queue := []sweepItem{{id: start}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur.depth >= maxDepth {
			continue
		}

		for _, edge := range f.g.Neighbors(cur.id) {
			next := edge.To
			if visited[next] {
				continue
			}
			visited[next] = true

			base := paths[cur.id]
			path := make([]string, len(base), len(base)+1)
			copy(path, base)
			paths[next] = append(path, next)

			queue = append(queue, sweepItem{id: next, depth: cur.depth + 1})
		}
	}

	return paths, nil
}
