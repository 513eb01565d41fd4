package config

import (
	"encoding/json"
	"os"

	"github.com/akarpovs/stockkeeper/internal/flagx"
	"github.com/akarpovs/stockkeeper/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the file can specify the timeout either as a string like
// "3s" or as integer nanoseconds.
type jsonConfig struct {
	GatewayURL     string         `json:"gateway_url"`
	APIKey         string         `json:"api_key"`
	RequestTimeout timex.Duration `json:"request_timeout"`
}

// parseJSON overlays cfg with values from the JSON file named by the -c or
// -config flag. When no file is given the function returns without touching
// cfg. Read or unmarshal errors panic; intended usage is
// defaults -> parseJSON -> parseFlags.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFilePath()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.GatewayURL != "" {
		cfg.GatewayURL = jc.GatewayURL
	}
	if jc.APIKey != "" {
		cfg.APIKey = jc.APIKey
	}
	cfg.RequestTimeout = jc.RequestTimeout.Duration
}
