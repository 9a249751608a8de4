package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veloplan/veloplan/export"
)

func newExportCmd(app *appContext) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:       "export {csv|geojson}",
		Short:     "Write a network snapshot to a file",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"csv", "geojson"},
		RunE: func(_ *cobra.Command, args []string) error {
			switch args[0] {
			case "csv":
				if out == "" {
					out = "network.csv"
				}
				if err := export.ExportCSV(app.graph, out); err != nil {
					return err
				}
			case "geojson":
				if out == "" {
					out = "network.geojson"
				}
				if err := export.ExportGeoJSON(app.graph, out); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown format %q (want csv or geojson)", args[0])
			}
			app.log.Info("snapshot written", "format", args[0], "file", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (defaults to network.<format>)")
	return cmd
}
