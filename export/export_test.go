package export_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veloplan/veloplan/citygraph"
	"github.com/veloplan/veloplan/dataset"
	"github.com/veloplan/veloplan/export"
)

func TestWriteCSV_TwoSections(t *testing.T) {
	g := dataset.SampleCity()

	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(g, &buf))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "Node Data\n"))
	assert.Contains(t, out, "ID,Name,Latitude,Longitude,Is Station,Capacity,Demand")
	assert.Contains(t, out, "Edge Data")
	assert.Contains(t, out, "Source,Destination,Distance (km),Time (min),Traffic Factor")

	// 1 section title + 1 header + 16 nodes, then 1 section title +
	// 1 header + 54 edge records; the blank separator row is skipped by
	// the reader.
	r := csv.NewReader(strings.NewReader(out))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 18+56)
}

func TestWriteCSV_Deterministic(t *testing.T) {
	g := dataset.SampleCity()

	var a, b bytes.Buffer
	require.NoError(t, export.WriteCSV(g, &a))
	require.NoError(t, export.WriteCSV(g, &b))
	assert.Equal(t, a.String(), b.String())
}

func TestFeatureCollection_Counts(t *testing.T) {
	g := dataset.SampleCity()

	fc := export.FeatureCollection(g)
	assert.Len(t, fc.Features, 16+54)
}

func TestFeatureCollection_SkipsDanglingEdges(t *testing.T) {
	g := citygraph.NewGraph()
	g.AddNode(citygraph.Node{ID: "A", Lat: 40.75, Lon: -74.0})
	// Destination never added to the node table: no geometry, no feature.
	g.AddEdge("A", "GHOST", 1.0, 5.0, citygraph.OneWay())

	fc := export.FeatureCollection(g)
	assert.Len(t, fc.Features, 1)
}

func TestWriteGeoJSON_ValidDocument(t *testing.T) {
	g := dataset.SampleCity()

	var buf bytes.Buffer
	require.NoError(t, export.WriteGeoJSON(g, &buf))

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "FeatureCollection", doc["type"])
}
