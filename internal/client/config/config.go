package config

import "time"

// Config holds runtime settings for the CrewHive CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend HTTP API.
//   - DatabasePath: path of the local sqlite file holding the session.
//   - TimeZone: IANA zone name used to render calendar days; "Local" uses
//     the process zone.
//   - RefreshThreshold: how close to expiry an access token may get before
//     it is refreshed proactively.
//   - DemoMode: serve generated placeholder data instead of calling the
//     backend.
type Config struct {
	ServerBaseURL    string
	DatabasePath     string
	TimeZone         string
	RefreshThreshold time.Duration
	DemoMode         bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.DatabasePath = "crewhive.db"
	c.TimeZone = "Local"
	c.RefreshThreshold = time.Minute
	c.DemoMode = false
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

// Location resolves TimeZone to a *time.Location, falling back to the
// process zone when the name does not resolve.
func (c *Config) Location() *time.Location {
	if c.TimeZone == "" || c.TimeZone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.Local
	}
	return loc
}
