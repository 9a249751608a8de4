// Package config loads the application-level knobs for the CLI and the
// dashboard backend. The engine packages never read configuration
// themselves: every algorithm receives explicit parameters, and the
// defaults below are applied at this caller boundary only.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/veloplan/veloplan/citygraph"
	"github.com/veloplan/veloplan/placement"
)

// Config holds all application configuration.
type Config struct {
	Weights   WeightsConfig   `mapstructure:"weights"`
	Placement PlacementConfig `mapstructure:"placement"`
	Search    SearchConfig    `mapstructure:"search"`
	Server    ServerConfig    `mapstructure:"server"`
}

// WeightsConfig is the default edge-cost blend. The weights are free
// non-negative floats; they are not required to sum to 1.
type WeightsConfig struct {
	Distance float64 `mapstructure:"distance"`
	Time     float64 `mapstructure:"time"`
	Traffic  float64 `mapstructure:"traffic"`
}

// PlacementConfig tunes the station-placement defaults.
type PlacementConfig struct {
	NumStations          int     `mapstructure:"num_stations"`
	CoverageRadiusKm     float64 `mapstructure:"coverage_radius_km"`
	DemandThreshold      float64 `mapstructure:"demand_threshold"`
	MinConnections       int     `mapstructure:"min_connections"`
	ClusterSeed          int64   `mapstructure:"cluster_seed"`
	ClusterMaxIterations int     `mapstructure:"cluster_max_iterations"`
}

// SearchConfig tunes the reachability sweep.
type SearchConfig struct {
	MaxDepth int `mapstructure:"max_depth"`
}

// ServerConfig tunes the dashboard backend.
type ServerConfig struct {
	ListenAddr string `mapstructure:"listen_addr"`
}

// Load reads configuration with precedence: defaults < optional YAML file <
// VELOPLAN_* environment variables (e.g. VELOPLAN_SERVER_LISTEN_ADDR).
// An empty path skips the file layer entirely.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("weights.distance", 0.4)
	v.SetDefault("weights.time", 0.4)
	v.SetDefault("weights.traffic", 0.2)
	v.SetDefault("placement.num_stations", 6)
	v.SetDefault("placement.coverage_radius_km", placement.DefaultCoverageRadiusKm)
	v.SetDefault("placement.demand_threshold", 0.3)
	v.SetDefault("placement.min_connections", 2)
	v.SetDefault("placement.cluster_seed", placement.DefaultClusterSeed)
	v.SetDefault("placement.cluster_max_iterations", placement.DefaultMaxIterations)
	v.SetDefault("search.max_depth", 3)
	v.SetDefault("server.listen_addr", ":8090")

	v.SetEnvPrefix("VELOPLAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// CostWeights converts the configured blend into engine weights.
func (c *Config) CostWeights() citygraph.CostWeights {
	return citygraph.CostWeights{
		Distance: c.Weights.Distance,
		Time:     c.Weights.Time,
		Traffic:  c.Weights.Traffic,
	}
}

func (c *Config) validate() error {
	if c.Weights.Distance < 0 || c.Weights.Time < 0 || c.Weights.Traffic < 0 {
		return errors.New("config: cost weights must be non-negative")
	}
	if c.Placement.NumStations < 1 {
		return errors.New("config: placement.num_stations must be positive")
	}
	if c.Placement.CoverageRadiusKm <= 0 {
		return errors.New("config: placement.coverage_radius_km must be positive")
	}
	if c.Placement.MinConnections < 0 {
		return errors.New("config: placement.min_connections must be non-negative")
	}
	if c.Placement.ClusterMaxIterations < 1 {
		return errors.New("config: placement.cluster_max_iterations must be positive")
	}
	if c.Search.MaxDepth < 1 {
		return errors.New("config: search.max_depth must be positive")
	}
	if c.Server.ListenAddr == "" {
		return errors.New("config: server.listen_addr must be set")
	}
	return nil
}
