// Package config loads runtime configuration for the CrewHive CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend HTTP API
//	-f string   path of the local session database file
//	-z string   IANA time zone name for calendar rendering
//	-t int      access-token refresh threshold (seconds)
//	-demo       use generated placeholder data instead of the backend
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the refresh threshold, so values
// can be either strings like "90s" or integer nanoseconds:
//
//	{
//	  "server_base_url": "http://127.0.0.1:8080",
//	  "database_path": "crewhive.db",
//	  "time_zone": "Europe/Berlin",
//	  "refresh_threshold": "90s",
//	  "demo_mode": false
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
