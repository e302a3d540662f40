// Package config loads runtime settings for the quiz CLI.
//
// Sources are layered, later ones winning: built-in defaults, then a
// .env file / environment variables, then an optional JSON file
// (-c/-config), then command-line flags.
package config

import "time"

// Config holds runtime settings for the quiz CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend REST API, including any
//     path prefix.
//   - RequestTimeout: client-side ceiling for a single request.
//   - StorePath: SQLite file holding the persisted session token.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	StorePath      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8080/api/v1"
	c.RequestTimeout = 15 * time.Second
	c.StorePath = "quizcli.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays
// environment, JSON file and flag values in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
