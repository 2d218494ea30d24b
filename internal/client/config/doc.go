// Package config loads runtime configuration for the nutrition-tracking CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-s string   base URL of the backend REST API
//	-u string   identity provider userinfo endpoint
//	-d string   path of the local session database
//	-g int      goal sync interval (seconds)
//	-l int      meal fetch limit per poll
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "60s" or integer nanoseconds:
//
//	{
//	  "server_base_url": "http://localhost:8000/api/v1",
//	  "userinfo_endpoint": "https://www.googleapis.com/oauth2/v3/userinfo",
//	  "database_path": "nutritrack.db",
//	  "goal_sync_interval": "60s",
//	  "meal_fetch_limit": 50
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
