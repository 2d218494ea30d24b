package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/mkalinina/nutritrack/internal/flagx"
	"github.com/mkalinina/nutritrack/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "60s" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	ServerBaseURL    string         `json:"server_base_url"`
	UserinfoEndpoint string         `json:"userinfo_endpoint"`
	DatabasePath     string         `json:"database_path"`
	GoalSyncInterval timex.Duration `json:"goal_sync_interval"`
	MealFetchLimit   int            `json:"meal_fetch_limit"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Only fields present in the file override the current Config values.
// Panics on read or unmarshal errors (caller should recover if desired).
func parseJson(cfg *Config) {
	// Resolve file path from flags.
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

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.UserinfoEndpoint != "" {
		cfg.UserinfoEndpoint = jc.UserinfoEndpoint
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.GoalSyncInterval.Duration != 0 {
		cfg.GoalSyncInterval = time.Duration(jc.GoalSyncInterval.Duration)
	}
	if jc.MealFetchLimit != 0 {
		cfg.MealFetchLimit = jc.MealFetchLimit
	}
}
