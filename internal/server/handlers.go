package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/veloplan/veloplan/citygraph"
	"github.com/veloplan/veloplan/export"
	"github.com/veloplan/veloplan/pathfind"
	"github.com/veloplan/veloplan/placement"
)

type routeRequest struct {
	From      string          `json:"from"`
	To        string          `json:"to"`
	Algorithm string          `json:"algorithm,omitempty"`
	Weights   *weightsPayload `json:"weights,omitempty"`
}

type weightsPayload struct {
	Distance float64 `json:"distance"`
	Time     float64 `json:"time"`
	Traffic  float64 `json:"traffic"`
}

type routeResponse struct {
	Algorithm     string   `json:"algorithm"`
	Path          []string `json:"path"`
	TotalDistance float64  `json:"total_distance_km"`
	TotalTime     float64  `json:"total_time_min"`
	TotalCost     float64  `json:"total_cost"`
	NodesExplored int      `json:"nodes_explored"`
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	var req routeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.From == "" || req.To == "" {
		s.writeError(w, http.StatusBadRequest, "from and to are required")
		return
	}

	weights := s.cfg.CostWeights()
	if req.Weights != nil {
		weights = citygraph.CostWeights{
			Distance: req.Weights.Distance,
			Time:     req.Weights.Time,
			Traffic:  req.Weights.Traffic,
		}
	}

	algorithm := req.Algorithm
	if algorithm == "" {
		algorithm = "dijkstra"
	}

	var (
		result *pathfind.PathResult
		err    error
	)
	switch algorithm {
	case "dijkstra":
		result, err = s.finder.Dijkstra(req.From, req.To, weights)
	case "astar":
		result, err = s.finder.AStar(req.From, req.To, weights)
	default:
		s.writeError(w, http.StatusBadRequest, "algorithm must be dijkstra or astar")
		return
	}
	if err != nil {
		switch {
		case errors.Is(err, pathfind.ErrNodeNotFound):
			s.writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, pathfind.ErrNoPath):
			s.writeError(w, http.StatusNotFound, err.Error())
		default:
			s.log.Error("route", "error", err)
			s.writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	s.writeJSON(w, http.StatusOK, routeResponse{
		Algorithm:     algorithm,
		Path:          result.Path,
		TotalDistance: result.TotalDistance,
		TotalTime:     result.TotalTime,
		TotalCost:     result.TotalCost,
		NodesExplored: result.NodesExplored,
	})
}

type networkResponse struct {
	Nodes    int      `json:"nodes"`
	Edges    int      `json:"edges"`
	Stations []string `json:"stations"`
}

func (s *Server) handleNetwork(w http.ResponseWriter, _ *http.Request) {
	stations := make([]string, 0)
	for _, n := range s.graph.Stations() {
		stations = append(stations, n.ID)
	}
	s.writeJSON(w, http.StatusOK, networkResponse{
		Nodes:    s.graph.NodeCount(),
		Edges:    s.graph.EdgeCount(),
		Stations: stations,
	})
}

type planRequest struct {
	Strategy         string  `json:"strategy"`
	NumStations      int     `json:"num_stations,omitempty"`
	CoverageRadiusKm float64 `json:"coverage_radius_km,omitempty"`
	DemandThreshold  float64 `json:"demand_threshold,omitempty"`
	MinConnections   int     `json:"min_connections,omitempty"`
	Seed             int64   `json:"seed,omitempty"`
}

type planResponse struct {
	Strategy    string                     `json:"strategy"`
	Stations    []string                   `json:"stations"`
	Coverage    float64                    `json:"coverage"`
	Metrics     placement.Metrics          `json:"metrics"`
	Suggestions []placement.EdgeSuggestion `json:"suggested_connections"`
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	numStations := req.NumStations
	if numStations < 1 {
		numStations = s.cfg.Placement.NumStations
	}
	radius := req.CoverageRadiusKm
	if radius <= 0 {
		radius = s.cfg.Placement.CoverageRadiusKm
	}
	threshold := req.DemandThreshold
	if threshold <= 0 {
		threshold = s.cfg.Placement.DemandThreshold
	}
	minConn := req.MinConnections
	if minConn < 1 {
		minConn = s.cfg.Placement.MinConnections
	}
	seed := req.Seed
	if seed == 0 {
		seed = s.cfg.Placement.ClusterSeed
	}

	var stations []string
	switch req.Strategy {
	case "greedy":
		stations = s.opt.GreedyPlacement(numStations, nil, radius)
	case "cluster":
		stations = s.opt.ClusterPlacement(numStations,
			placement.WithSeed(seed),
			placement.WithMaxIterations(s.cfg.Placement.ClusterMaxIterations),
		)
	case "demand":
		stations = s.opt.DemandPlacement(numStations, threshold)
	default:
		s.writeError(w, http.StatusBadRequest, "strategy must be greedy, cluster or demand")
		return
	}

	suggestions := s.opt.SuggestConnections(stations, minConn)
	if suggestions == nil {
		suggestions = []placement.EdgeSuggestion{}
	}

	s.writeJSON(w, http.StatusOK, planResponse{
		Strategy:    req.Strategy,
		Stations:    stations,
		Coverage:    s.opt.Coverage(stations, radius),
		Metrics:     s.opt.Evaluate(stations),
		Suggestions: suggestions,
	})
}

func (s *Server) handleGeoJSON(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/geo+json")
	if err := export.WriteGeoJSON(s.graph, w); err != nil {
		s.log.Error("export geojson", "error", err)
	}
}

func (s *Server) handleCSV(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="network.csv"`)
	if err := export.WriteCSV(s.graph, w); err != nil {
		s.log.Error("export csv", "error", err)
	}
}
