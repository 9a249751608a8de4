// Package dataset - the bundled demo network.
package dataset

import (
	"github.com/veloplan/veloplan/citygraph"
	"github.com/veloplan/veloplan/placement"
)

// SampleCity returns the 16-node demo network centered on the Times Square
// area. All connections are bidirectional; traffic factors above 1.0 mark
// the congested downtown and transit corridors.
func SampleCity() *citygraph.Graph {
	g := citygraph.NewGraph()

	nodes := []citygraph.Node{
		{ID: "RES_01", Name: "Residential Area North", Lat: 40.7700, Lon: -73.9900},
		{ID: "RES_02", Name: "Residential Area East", Lat: 40.7650, Lon: -73.9700},
		{ID: "RES_03", Name: "Residential Area South", Lat: 40.7500, Lon: -73.9850},
		{ID: "RES_04", Name: "Residential Area West", Lat: 40.7600, Lon: -74.0000},
		{ID: "COM_01", Name: "Downtown Business District", Lat: 40.7589, Lon: -73.9851},
		{ID: "COM_02", Name: "Shopping Center", Lat: 40.7620, Lon: -73.9780},
		{ID: "COM_03", Name: "Office Complex", Lat: 40.7560, Lon: -73.9920},
		{ID: "PARK_01", Name: "Central Park South", Lat: 40.7678, Lon: -73.9815},
		{ID: "PARK_02", Name: "Riverside Park", Lat: 40.7700, Lon: -73.9950},
		{ID: "TRAN_01", Name: "Main Train Station", Lat: 40.7527, Lon: -73.9772},
		{ID: "TRAN_02", Name: "Bus Terminal", Lat: 40.7570, Lon: -73.9900},
		{ID: "EDU_01", Name: "University Campus", Lat: 40.7630, Lon: -73.9840},
		{ID: "EDU_02", Name: "College District", Lat: 40.7660, Lon: -73.9760},
		{ID: "MED_01", Name: "City Hospital", Lat: 40.7540, Lon: -73.9800},
		{ID: "ENT_01", Name: "Theater District", Lat: 40.7580, Lon: -73.9860},
		{ID: "ENT_02", Name: "Sports Arena", Lat: 40.7510, Lon: -73.9930},
	}
	for _, n := range nodes {
		g.AddNode(n)
	}

	connections := []struct {
		from, to   string
		distanceKm float64
		timeMin    float64
		traffic    float64
	}{
		{"RES_01", "PARK_01", 0.3, 2.5, 1.0},
		{"RES_01", "PARK_02", 0.4, 3.0, 1.1},
		{"RES_02", "COM_02", 0.4, 3.0, 1.2},
		{"RES_02", "EDU_02", 0.3, 2.0, 1.0},
		{"RES_03", "TRAN_01", 0.3, 2.5, 1.3},
		{"RES_03", "MED_01", 0.5, 4.0, 1.1},
		{"RES_04", "COM_03", 0.4, 3.0, 1.0},
		{"RES_04", "PARK_02", 0.3, 2.5, 1.0},
		{"COM_01", "ENT_01", 0.2, 1.5, 1.5},
		{"COM_01", "TRAN_01", 0.3, 2.0, 1.6},
		{"COM_01", "COM_02", 0.4, 3.0, 1.4},
		{"COM_02", "EDU_01", 0.3, 2.0, 1.1},
		{"COM_03", "TRAN_02", 0.3, 2.0, 1.2},
		{"COM_03", "COM_01", 0.4, 3.0, 1.3},
		{"PARK_01", "EDU_01", 0.3, 2.0, 1.0},
		{"PARK_01", "COM_01", 0.4, 3.0, 1.1},
		{"PARK_02", "PARK_01", 0.5, 4.0, 1.0},
		{"TRAN_01", "TRAN_02", 0.4, 3.0, 1.5},
		{"TRAN_01", "MED_01", 0.3, 2.0, 1.2},
		{"TRAN_02", "ENT_02", 0.4, 3.0, 1.3},
		{"EDU_01", "COM_01", 0.3, 2.5, 1.2},
		{"EDU_01", "EDU_02", 0.4, 3.0, 1.0},
		{"EDU_02", "PARK_01", 0.3, 2.0, 1.0},
		{"MED_01", "ENT_02", 0.4, 3.0, 1.1},
		{"ENT_01", "ENT_02", 0.5, 4.0, 1.4},
		{"ENT_01", "COM_02", 0.4, 3.0, 1.3},
		{"ENT_02", "COM_03", 0.3, 2.5, 1.2},
	}
	for _, c := range connections {
		g.AddEdge(c.from, c.to, c.distanceKm, c.timeMin, citygraph.WithTraffic(c.traffic))
	}

	return g
}

// DefaultDensityAreas returns the demand seed points used by the demos:
// downtown, the train station, the university and the park, in descending
// density.
func DefaultDensityAreas() []placement.DensityArea {
	return []placement.DensityArea{
		{Lat: 40.7589, Lon: -73.9851, Density: 1.0}, // downtown
		{Lat: 40.7527, Lon: -73.9772, Density: 0.9}, // train station
		{Lat: 40.7630, Lon: -73.9840, Density: 0.8}, // university
		{Lat: 40.7678, Lon: -73.9815, Density: 0.6}, // park
	}
}
