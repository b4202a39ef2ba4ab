package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/crewhive/crewhive/internal/flagx"
	"github.com/crewhive/crewhive/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify the refresh threshold
// either as a string like "90s" or as integer nanoseconds. After parsing,
// values are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	ServerBaseURL    string         `json:"server_base_url"`
	DatabasePath     string         `json:"database_path"`
	TimeZone         string         `json:"time_zone"`
	RefreshThreshold timex.Duration `json:"refresh_threshold"`
	DemoMode         bool           `json:"demo_mode"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Behavior:
//   - Reads and unmarshals the JSON into JsonConfig.
//   - Copies known fields into the provided Config.
//   - Panics on read or unmarshal errors (caller should recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.ServerBaseURL = jc.ServerBaseURL
	cfg.DatabasePath = jc.DatabasePath
	cfg.TimeZone = jc.TimeZone
	cfg.RefreshThreshold = time.Duration(jc.RefreshThreshold.Duration)
	cfg.DemoMode = jc.DemoMode
}
