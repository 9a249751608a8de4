// Package export - two-section CSV snapshot.
package export

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/veloplan/veloplan/citygraph"
)

// WriteCSV writes the node section followed by the edge section of g to w.
// Node rows carry ID, name, position, station flag, capacity and demand;
// edge rows carry source, destination, distance (km), time (min) and traffic
// factor. The sections are separated by an empty row.
func WriteCSV(g *citygraph.Graph, w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Node Data"}); err != nil {
		return errors.Wrap(err, "write node section header")
	}
	if err := cw.Write([]string{"ID", "Name", "Latitude", "Longitude", "Is Station", "Capacity", "Demand"}); err != nil {
		return errors.Wrap(err, "write node column header")
	}
	for _, n := range g.Nodes() {
		row := []string{
			n.ID,
			n.Name,
			formatFloat(n.Lat),
			formatFloat(n.Lon),
			strconv.FormatBool(n.IsStation),
			strconv.Itoa(n.Capacity),
			formatFloat(n.Demand),
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "write node row %s", n.ID)
		}
	}

	if err := cw.Write([]string{}); err != nil {
		return errors.Wrap(err, "write section separator")
	}

	if err := cw.Write([]string{"Edge Data"}); err != nil {
		return errors.Wrap(err, "write edge section header")
	}
	if err := cw.Write([]string{"Source", "Destination", "Distance (km)", "Time (min)", "Traffic Factor"}); err != nil {
		return errors.Wrap(err, "write edge column header")
	}
	for _, id := range g.NodeIDs() {
		for _, e := range g.Neighbors(id) {
			row := []string{
				id,
				e.To,
				formatFloat(e.Distance),
				formatFloat(e.Time),
				formatFloat(e.Traffic),
			}
			if err := cw.Write(row); err != nil {
				return errors.Wrapf(err, "write edge row %s→%s", id, e.To)
			}
		}
	}

	cw.Flush()
	return errors.Wrap(cw.Error(), "flush csv")
}

// ExportCSV writes the CSV snapshot of g to the named file, creating or
// truncating it.
func ExportCSV(g *citygraph.Graph, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "create %s", filename)
	}
	if err := WriteCSV(g, f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "close %s", filename)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
