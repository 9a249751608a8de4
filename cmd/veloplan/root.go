package main

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/veloplan/veloplan/citygraph"
	"github.com/veloplan/veloplan/dataset"
	"github.com/veloplan/veloplan/internal/config"
)

type appContext struct {
	cfg   *config.Config
	graph *citygraph.Graph
	log   *slog.Logger

	jsonOut bool
}

func newRootCmd() *cobra.Command {
	app := &appContext{}
	var cfgPath string

	root := &cobra.Command{
		Use:           "veloplan",
		Short:         "Bike-share route finding and station placement",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			app.cfg = cfg
			app.graph = dataset.SampleCity()
			app.log = slog.New(slog.NewTextHandler(os.Stderr, nil))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().BoolVar(&app.jsonOut, "json", false, "emit machine-readable JSON instead of tables")

	root.AddCommand(
		newRouteCmd(app),
		newStationsCmd(app),
		newNetworkCmd(app),
		newExportCmd(app),
		newServeCmd(app),
	)
	return root
}

// printJSON writes v to stdout with stable indentation.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
