// Package pathfind - result types, sentinel errors and the shared heap.
package pathfind

import (
	"errors"

	"github.com/veloplan/veloplan/citygraph"
)

// Sentinel errors returned by the search entry points.
var (
	// ErrNilGraph is returned when the finder was built around a nil graph.
	ErrNilGraph = errors.New("pathfind: graph is nil")

	// ErrNodeNotFound is returned when a query endpoint is absent from the
	// graph's node table.
	ErrNodeNotFound = errors.New("pathfind: node not found in graph")

	// ErrNoPath is returned when the target exists but cannot be reached
	// from the start. It is an expected, recoverable signal — never confuse
	// it with the valid one-node path produced when start == end.
	ErrNoPath = errors.New("pathfind: no path between nodes")

	// ErrBadMaxDepth is returned by Reachable for a non-positive hop bound.
	ErrBadMaxDepth = errors.New("pathfind: max depth must be positive")
)

// PathResult is the outcome of a successful search. It is immutable once
// returned; its lifetime is a single call.
type PathResult struct {
	// Path is the ordered node-ID sequence from start to end inclusive.
	// Length 1 when start == end.
	Path []string

	// TotalDistance is the summed edge distance along Path, in kilometers.
	TotalDistance float64

	// TotalTime is the summed traffic-inflated travel time along Path,
	// in minutes.
	TotalTime float64

	// TotalCost is the accumulated blended cost that drove the search.
	TotalCost float64

	// NodesExplored counts settle events during the search. It is a
	// search-effort metric, not a correctness value.
	NodesExplored int
}

// Finder runs shortest-path queries against a fixed graph snapshot.
// It never mutates the graph it is given.
type Finder struct {
	g *citygraph.Graph
}

// NewFinder wraps g for querying.
func NewFinder(g *citygraph.Graph) *Finder {
	return &Finder{g: g}
}

// queueItem is a heap entry: a node ID with its priority key and the
// tentative cost recorded when the entry was pushed. Under lazy decrease-key
// an entry is stale once a cheaper cost for the same node has been recorded.
type queueItem struct {
	id       string
	priority float64 // heap ordering key: cost for Dijkstra, cost+heuristic for A*
	cost     float64 // tentative blended cost at push time
}

// costHeap is a min-heap of queueItem ordered by priority ascending.
type costHeap []queueItem

func (h costHeap) Len() int            { return len(h) }
func (h costHeap) Less(i, j int) bool  { return h[i].priority < h[j].priority }
func (h costHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *costHeap) Push(x interface{}) { *h = append(*h, x.(queueItem)) }
func (h *costHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// reconstructPath walks predecessor links from end back to start and
// reverses the result. If the reconstructed chain is not rooted at start the
// predecessor map is corrupt; the defensive contract is to return an empty
// path rather than a misleading one. Unreachable in correct operation.
func reconstructPath(prev map[string]string, start, end string) []string {
	path := []string{end}
	cur := end
	for {
		p, ok := prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	if path[0] != start {
		return []string{}
	}
	return path
}

// selfPath is the shared start == end fast path: a one-node path with zero
// distance, time and cost, produced before either relaxation loop runs.
func selfPath(start string) *PathResult {
	return &PathResult{
		Path:          []string{start},
		NodesExplored: 1,
	}
}
