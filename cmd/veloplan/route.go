package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/veloplan/veloplan/citygraph"
	"github.com/veloplan/veloplan/pathfind"
)

func newRouteCmd(app *appContext) *cobra.Command {
	var (
		algorithm      string
		distanceWeight float64
		timeWeight     float64
		trafficWeight  float64
	)

	cmd := &cobra.Command{
		Use:   "route FROM TO",
		Short: "Find the cheapest route between two intersections",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			weights := app.cfg.CostWeights()
			if cmd.Flags().Changed("distance-weight") {
				weights.Distance = distanceWeight
			}
			if cmd.Flags().Changed("time-weight") {
				weights.Time = timeWeight
			}
			if cmd.Flags().Changed("traffic-weight") {
				weights.Traffic = trafficWeight
			}

			finder := pathfind.NewFinder(app.graph)

			var (
				result *pathfind.PathResult
				err    error
			)
			switch algorithm {
			case "dijkstra":
				result, err = finder.Dijkstra(args[0], args[1], weights)
			case "astar":
				result, err = finder.AStar(args[0], args[1], weights)
			default:
				return fmt.Errorf("unknown algorithm %q (want dijkstra or astar)", algorithm)
			}
			if err != nil {
				return err
			}

			if app.jsonOut {
				return printJSON(result)
			}
			printRoute(app.graph, algorithm, result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "dijkstra", "search algorithm: dijkstra or astar")
	cmd.Flags().Float64Var(&distanceWeight, "distance-weight", 0, "override the distance weight")
	cmd.Flags().Float64Var(&timeWeight, "time-weight", 0, "override the time weight")
	cmd.Flags().Float64Var(&trafficWeight, "traffic-weight", 0, "override the traffic weight")
	return cmd
}

func printRoute(g *citygraph.Graph, algorithm string, res *pathfind.PathResult) {
	names := make([]string, 0, len(res.Path))
	for _, id := range res.Path {
		if n, ok := g.Node(id); ok && n.Name != "" {
			names = append(names, fmt.Sprintf("%s (%s)", n.Name, id))
			continue
		}
		names = append(names, id)
	}

	fmt.Printf("Route (%s):\n", algorithm)
	fmt.Printf("  %s\n", strings.Join(names, "\n  → "))
	fmt.Printf("\nDistance:       %.2f km\n", res.TotalDistance)
	fmt.Printf("Time:           %.1f min\n", res.TotalTime)
	fmt.Printf("Cost:           %.3f\n", res.TotalCost)
	fmt.Printf("Nodes explored: %d\n", res.NodesExplored)
}
