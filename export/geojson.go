// Package export - GeoJSON snapshot for map layers.
package export

import (
	"io"
	"os"

	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"

	"github.com/veloplan/veloplan/citygraph"
)

// FeatureCollection converts g into a GeoJSON FeatureCollection: one Point
// feature per node (properties: id, name, is_station, capacity, demand) and
// one LineString feature per edge record (properties: source, destination,
// distance_km, time_min, traffic).
//
// Edge records whose endpoints are missing from the node table have no
// geometry and are skipped rather than failing the export.
func FeatureCollection(g *citygraph.Graph) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, n := range g.Nodes() {
		f := geojson.NewPointFeature([]float64{n.Lon, n.Lat})
		f.SetProperty("id", n.ID)
		f.SetProperty("name", n.Name)
		f.SetProperty("is_station", n.IsStation)
		f.SetProperty("capacity", n.Capacity)
		f.SetProperty("demand", n.Demand)
		fc.AddFeature(f)
	}

	for _, id := range g.NodeIDs() {
		from, ok := g.Node(id)
		if !ok {
			continue
		}
		for _, e := range g.Neighbors(id) {
			to, ok := g.Node(e.To)
			if !ok {
				continue
			}
			f := geojson.NewLineStringFeature([][]float64{
				{from.Lon, from.Lat},
				{to.Lon, to.Lat},
			})
			f.SetProperty("source", id)
			f.SetProperty("destination", e.To)
			f.SetProperty("distance_km", e.Distance)
			f.SetProperty("time_min", e.Time)
			f.SetProperty("traffic", e.Traffic)
			fc.AddFeature(f)
		}
	}

	return fc
}

// WriteGeoJSON marshals the FeatureCollection of g to w.
func WriteGeoJSON(g *citygraph.Graph, w io.Writer) error {
	b, err := FeatureCollection(g).MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "marshal feature collection")
	}
	_, err = w.Write(b)
	return errors.Wrap(err, "write geojson")
}

// ExportGeoJSON writes the GeoJSON snapshot of g to the named file, creating
// or truncating it.
func ExportGeoJSON(g *citygraph.Graph, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "create %s", filename)
	}
	if err := WriteGeoJSON(g, f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "close %s", filename)
}
