package config

import "time"

// Config holds runtime settings for the nutrition-tracking CLI.
//
// Fields:
//   - ServerBaseURL: root of the backend REST API, e.g. "http://localhost:8000/api/v1".
//   - UserinfoEndpoint: identity provider userinfo URL for the access-token flow.
//   - DatabasePath: path of the local SQLite session database.
//   - GoalSyncInterval: how often the goal watcher recomputes today's total.
//   - MealFetchLimit: how many recent meals one poll fetches.
type Config struct {
	ServerBaseURL    string
	UserinfoEndpoint string
	DatabasePath     string
	GoalSyncInterval time.Duration
	MealFetchLimit   int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8000/api/v1"
	c.UserinfoEndpoint = "https://www.googleapis.com/oauth2/v3/userinfo"
	c.DatabasePath = "nutritrack.db"
	c.GoalSyncInterval = 60 * time.Second
	c.MealFetchLimit = 50
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
