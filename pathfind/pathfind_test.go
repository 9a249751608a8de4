package pathfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veloplan/veloplan/citygraph"
	"github.com/veloplan/veloplan/pathfind"
)

const epsilon = 1e-9

// lineCity builds N0—N1—N2—N3—N4 in a straight line, every connection
// bidirectional with distance 0.5 km, time 4.0 min, free-flow traffic.
func lineCity() *citygraph.Graph {
	g := citygraph.NewGraph()
	ids := []string{"N0", "N1", "N2", "N3", "N4"}
	for i, id := range ids {
		g.AddNode(citygraph.Node{ID: id, Name: id, Lat: 40.75, Lon: -74.0 + 0.006*float64(i)})
	}
	for i := 0; i < len(ids)-1; i++ {
		g.AddEdge(ids[i], ids[i+1], 0.5, 4.0)
	}
	return g
}

// branchCity builds a west-east main line S—M—E with a cheap northward
// detour M—D1—D2 that a label-setting search settles eagerly but a guided
// search deprioritizes.
func branchCity() *citygraph.Graph {
	g := citygraph.NewGraph()
	g.AddNode(citygraph.Node{ID: "S", Lat: 40.750, Lon: -74.000})
	g.AddNode(citygraph.Node{ID: "M", Lat: 40.750, Lon: -73.994})
	g.AddNode(citygraph.Node{ID: "E", Lat: 40.750, Lon: -73.988})
	g.AddNode(citygraph.Node{ID: "D1", Lat: 40.756, Lon: -73.994})
	g.AddNode(citygraph.Node{ID: "D2", Lat: 40.762, Lon: -73.994})
	g.AddEdge("S", "M", 0.5, 4.0)
	g.AddEdge("M", "E", 0.5, 4.0)
	g.AddEdge("M", "D1", 0.3, 2.0)
	g.AddEdge("D1", "D2", 0.3, 2.0)
	return g
}

func TestDijkstra_LineCityEndToEnd(t *testing.T) {
	g := lineCity()
	f := pathfind.NewFinder(g)
	w := citygraph.DefaultCostWeights()

	res, err := f.Dijkstra("N0", "N4", w)
	require.NoError(t, err)
	assert.Equal(t, []string{"N0", "N1", "N2", "N3", "N4"}, res.Path)
	assert.InDelta(t, 2.0, res.TotalDistance, epsilon)
	assert.InDelta(t, 16.0, res.TotalTime, epsilon)
	// Cost follows the blend formula: 0.4·2.0 + 0.4·16.0 + 0.2·16.0.
	assert.InDelta(t, 0.4*2.0+0.4*16.0+0.2*16.0, res.TotalCost, epsilon)
}

func TestDijkstra_CostEqualsSumOfEdgeCosts(t *testing.T) {
	g := branchCity()
	f := pathfind.NewFinder(g)
	w := citygraph.CostWeights{Distance: 0.7, Time: 0.2, Traffic: 0.1}

	res, err := f.Dijkstra("S", "E", w)
	require.NoError(t, err)
	require.NotEmpty(t, res.Path)
	assert.Equal(t, "S", res.Path[0])
	assert.Equal(t, "E", res.Path[len(res.Path)-1])

	var want float64
	for i := 0; i < len(res.Path)-1; i++ {
		for _, e := range g.Neighbors(res.Path[i]) {
			if e.To == res.Path[i+1] {
				want += e.WeightedCost(w)
				break
			}
		}
	}
	assert.InDelta(t, want, res.TotalCost, epsilon)
}

func TestSearch_SelfPath(t *testing.T) {
	g := lineCity()
	f := pathfind.NewFinder(g)
	w := citygraph.DefaultCostWeights()

	for name, search := range map[string]func(string, string, citygraph.CostWeights) (*pathfind.PathResult, error){
		"dijkstra": f.Dijkstra,
		"astar":    f.AStar,
	} {
		res, err := search("N2", "N2", w)
		require.NoError(t, err, name)
		assert.Equal(t, []string{"N2"}, res.Path, name)
		assert.Zero(t, res.TotalDistance, name)
		assert.Zero(t, res.TotalTime, name)
		assert.Zero(t, res.TotalCost, name)
	}
}

func TestSearch_NoPathToIsolatedNode(t *testing.T) {
	g := lineCity()
	g.AddNode(citygraph.Node{ID: "ISO", Lat: 40.8, Lon: -73.9})
	f := pathfind.NewFinder(g)
	w := citygraph.DefaultCostWeights()

	res, err := f.Dijkstra("N0", "ISO", w)
	assert.ErrorIs(t, err, pathfind.ErrNoPath)
	assert.Nil(t, res)

	res, err = f.AStar("N0", "ISO", w)
	assert.ErrorIs(t, err, pathfind.ErrNoPath)
	assert.Nil(t, res)
}

func TestSearch_UnknownEndpoint(t *testing.T) {
	f := pathfind.NewFinder(lineCity())
	w := citygraph.DefaultCostWeights()

	_, err := f.Dijkstra("N0", "NOPE", w)
	assert.ErrorIs(t, err, pathfind.ErrNodeNotFound)
	_, err = f.AStar("NOPE", "N0", w)
	assert.ErrorIs(t, err, pathfind.ErrNodeNotFound)
}

func TestAStar_MatchesDijkstraCost(t *testing.T) {
	g := branchCity()
	f := pathfind.NewFinder(g)
	w := citygraph.DefaultCostWeights()

	dj, err := f.Dijkstra("S", "E", w)
	require.NoError(t, err)
	as, err := f.AStar("S", "E", w)
	require.NoError(t, err)

	assert.Equal(t, dj.Path, as.Path)
	assert.InDelta(t, dj.TotalCost, as.TotalCost, epsilon)
	assert.InDelta(t, dj.TotalDistance, as.TotalDistance, epsilon)
	assert.InDelta(t, dj.TotalTime, as.TotalTime, epsilon)
}

func TestAStar_ExploresNoMoreThanDijkstra(t *testing.T) {
	g := branchCity()
	f := pathfind.NewFinder(g)
	w := citygraph.DefaultCostWeights()

	dj, err := f.Dijkstra("S", "E", w)
	require.NoError(t, err)
	as, err := f.AStar("S", "E", w)
	require.NoError(t, err)

	assert.LessOrEqual(t, as.NodesExplored, dj.NodesExplored,
		"guided search must settle no more nodes than label-setting search")
}

func TestReachable_DepthBound(t *testing.T) {
	f := pathfind.NewFinder(lineCity())

	paths, err := f.Reachable("N0", 2)
	require.NoError(t, err)

	assert.Len(t, paths, 3)
	assert.Equal(t, []string{"N0"}, paths["N0"])
	assert.Equal(t, []string{"N0", "N1"}, paths["N1"])
	assert.Equal(t, []string{"N0", "N1", "N2"}, paths["N2"])
	_, beyond := paths["N3"]
	assert.False(t, beyond, "nodes beyond the hop bound must not appear")
}

func TestReachable_Validation(t *testing.T) {
	f := pathfind.NewFinder(lineCity())

	_, err := f.Reachable("N0", 0)
	assert.ErrorIs(t, err, pathfind.ErrBadMaxDepth)
	_, err = f.Reachable("NOPE", 3)
	assert.ErrorIs(t, err, pathfind.ErrNodeNotFound)
}

func TestKShortestPaths_SingleResultContract(t *testing.T) {
	g := branchCity()
	f := pathfind.NewFinder(g)
	w := citygraph.DefaultCostWeights()

	// k is advisory: at most one path comes back today.
	results, err := f.KShortestPaths("S", "E", 5, w)
	require.NoError(t, err)
	require.Len(t, results, 1)

	best, err := f.Dijkstra("S", "E", w)
	require.NoError(t, err)
	assert.Equal(t, best.Path, results[0].Path)
	assert.InDelta(t, best.TotalCost, results[0].TotalCost, epsilon)
}

func TestKShortestPaths_Disconnected(t *testing.T) {
	g := lineCity()
	g.AddNode(citygraph.Node{ID: "ISO", Lat: 40.8, Lon: -73.9})
	f := pathfind.NewFinder(g)

	results, err := f.KShortestPaths("N0", "ISO", 3, citygraph.DefaultCostWeights())
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.NotNil(t, results)
}
