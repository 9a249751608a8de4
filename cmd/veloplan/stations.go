package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veloplan/veloplan/dataset"
	"github.com/veloplan/veloplan/placement"
)

func newStationsCmd(app *appContext) *cobra.Command {
	var (
		strategy  string
		count     int
		radius    float64
		threshold float64
		minConn   int
		seed      int64
	)

	cmd := &cobra.Command{
		Use:   "stations",
		Short: "Plan station locations and evaluate the layout",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				count = app.cfg.Placement.NumStations
			}
			if !cmd.Flags().Changed("radius") {
				radius = app.cfg.Placement.CoverageRadiusKm
			}
			if !cmd.Flags().Changed("threshold") {
				threshold = app.cfg.Placement.DemandThreshold
			}
			if !cmd.Flags().Changed("min-connections") {
				minConn = app.cfg.Placement.MinConnections
			}
			if seed == 0 {
				seed = app.cfg.Placement.ClusterSeed
			}

			opt := placement.NewOptimizer(app.graph)
			opt.SetDemandByDensity(dataset.DefaultDensityAreas())

			var stations []string
			switch strategy {
			case "greedy":
				stations = opt.GreedyPlacement(count, nil, radius)
			case "cluster":
				stations = opt.ClusterPlacement(count,
					placement.WithSeed(seed),
					placement.WithMaxIterations(app.cfg.Placement.ClusterMaxIterations),
				)
			case "demand":
				stations = opt.DemandPlacement(count, threshold)
			default:
				return fmt.Errorf("unknown strategy %q (want greedy, cluster or demand)", strategy)
			}

			coverage := opt.Coverage(stations, radius)
			metrics := opt.Evaluate(stations)
			suggestions := opt.SuggestConnections(stations, minConn)

			if app.jsonOut {
				return printJSON(map[string]interface{}{
					"strategy":              strategy,
					"stations":              stations,
					"coverage":              coverage,
					"metrics":               metrics,
					"suggested_connections": suggestions,
				})
			}

			fmt.Printf("Strategy: %s\n\nStations (%d):\n", strategy, len(stations))
			for _, id := range stations {
				name := id
				if n, ok := app.graph.Node(id); ok && n.Name != "" {
					name = fmt.Sprintf("%-8s %s", id, n.Name)
				}
				fmt.Printf("  %s\n", name)
			}
			fmt.Printf("\nCoverage:                 %.1f%%\n", coverage*100)
			fmt.Printf("Avg station distance:     %.2f km\n", metrics.AvgStationDistance)
			fmt.Printf("Min station distance:     %.2f km\n", metrics.MinStationDistance)
			fmt.Printf("Max station distance:     %.2f km\n", metrics.MaxStationDistance)
			fmt.Printf("Avg connections/station:  %.2f\n", metrics.AvgConnectionsPerStation)
			if len(suggestions) > 0 {
				fmt.Printf("\nSuggested connections:\n")
				for _, s := range suggestions {
					fmt.Printf("  %s ↔ %s\n", s.From, s.To)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&strategy, "strategy", "s", "greedy", "placement strategy: greedy, cluster or demand")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of stations to place (default from config)")
	cmd.Flags().Float64Var(&radius, "radius", 0, "coverage radius in km")
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "demand threshold for the demand strategy")
	cmd.Flags().IntVar(&minConn, "min-connections", 0, "minimum connections per station")
	cmd.Flags().Int64Var(&seed, "seed", 0, "clustering seed")
	return cmd
}
