package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/veloplan/veloplan/pathfind"
)

func newNetworkCmd(app *appContext) *cobra.Command {
	var (
		from  string
		depth int
	)

	cmd := &cobra.Command{
		Use:   "network",
		Short: "Summarize the city network, optionally with a reachability sweep",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("depth") {
				depth = app.cfg.Search.MaxDepth
			}

			summary := map[string]interface{}{
				"nodes": app.graph.NodeCount(),
				"edges": app.graph.EdgeCount(),
			}

			var reachable map[string][]string
			if from != "" {
				finder := pathfind.NewFinder(app.graph)
				var err error
				reachable, err = finder.Reachable(from, depth)
				if err != nil {
					return err
				}
				summary["reachable_from"] = from
				summary["max_depth"] = depth
				summary["reachable"] = reachable
			}

			if app.jsonOut {
				return printJSON(summary)
			}

			fmt.Printf("Nodes: %d\nEdge records: %d\n", app.graph.NodeCount(), app.graph.EdgeCount())
			if from == "" {
				return nil
			}

			ids := make([]string, 0, len(reachable))
			for id := range reachable {
				ids = append(ids, id)
			}
			sort.Strings(ids)

			fmt.Printf("\nReachable from %s within %d hops (%d nodes):\n", from, depth, len(ids))
			for _, id := range ids {
				fmt.Printf("  %-8s via %v\n", id, reachable[id])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "reachable", "", "list nodes reachable from this ID")
	cmd.Flags().IntVar(&depth, "depth", 0, "hop limit for the reachability sweep")
	return cmd
}
