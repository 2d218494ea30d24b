package config

import (
	"flag"
	"os"
	"time"

	"github.com/mkalinina/nutritrack/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-s string   base URL of the backend REST API (default from Config)
//	-u string   identity provider userinfo endpoint
//	-d string   path of the local session database
//	-g int      goal sync interval in seconds
//	-l int      meal fetch limit per poll
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-u", "-d", "-g", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "s", cfg.ServerBaseURL, "base URL of the backend REST API")
	fs.StringVar(&cfg.UserinfoEndpoint, "u", cfg.UserinfoEndpoint, "identity provider userinfo endpoint")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local session database")
	goalSyncInterval := fs.Int("g", int(cfg.GoalSyncInterval.Seconds()), "goal sync interval (in seconds)")
	fs.IntVar(&cfg.MealFetchLimit, "l", cfg.MealFetchLimit, "meal fetch limit per poll")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.GoalSyncInterval = time.Duration(*goalSyncInterval) * time.Second
}
