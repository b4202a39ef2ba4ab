package config

import (
	"flag"
	"os"
	"time"

	"github.com/crewhive/crewhive/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend HTTP API (default from Config)
//	-f string   path of the local session database file
//	-z string   IANA time zone name for calendar rendering
//	-t int      access-token refresh threshold in seconds
//	-demo       serve generated placeholder data instead of the backend
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-f", "-z", "-t", "-demo"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.DatabasePath, "f", cfg.DatabasePath, "path of the local session database")
	fs.StringVar(&cfg.TimeZone, "z", cfg.TimeZone, "time zone for calendar rendering")
	refreshThreshold := fs.Int("t", int(cfg.RefreshThreshold.Seconds()), "token refresh threshold (in seconds)")
	fs.BoolVar(&cfg.DemoMode, "demo", cfg.DemoMode, "use generated placeholder data")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RefreshThreshold = time.Duration(*refreshThreshold) * time.Second
}
