// Package config loads runtime settings for the interactive inventory
// client. Values come from defaults, then a JSON file, then command-line
// flags, with later sources taking precedence.
package config

import "time"

// Config holds the client's runtime settings.
//
// Fields:
//   - GatewayURL: base URL of the inventory gateway / identity server.
//   - APIKey: shared read credential used while no session exists.
//   - RequestTimeout: optional per-request deadline; zero disables it and
//     a hung call then hangs the pending operation.
type Config struct {
	GatewayURL     string
	APIKey         string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.GatewayURL = "http://127.0.0.1:8080"
	c.APIKey = ""
	c.RequestTimeout = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given) and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
