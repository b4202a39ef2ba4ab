package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080", c.ServerBaseURL)
	assert.Equal(t, "crewhive.db", c.DatabasePath)
	assert.Equal(t, "Local", c.TimeZone)
	assert.Equal(t, time.Minute, c.RefreshThreshold)
	assert.False(t, c.DemoMode)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:8080", cfg.ServerBaseURL)
	assert.Equal(t, time.Minute, cfg.RefreshThreshold)
}

func TestLocation(t *testing.T) {
	tests := []struct {
		name string
		zone string
		want string
	}{
		{name: "local keyword", zone: "Local", want: time.Local.String()},
		{name: "empty falls back to local", zone: "", want: time.Local.String()},
		{name: "valid IANA name", zone: "UTC", want: "UTC"},
		{name: "unknown name falls back to local", zone: "Not/AZone", want: time.Local.String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Config{TimeZone: tt.zone}
			assert.Equal(t, tt.want, c.Location().String())
		})
	}
}
