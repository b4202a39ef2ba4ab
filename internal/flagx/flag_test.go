package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func restoreArgs(t *testing.T, args []string) {
	t.Helper()
	old := os.Args
	os.Args = args
	t.Cleanup(func() { os.Args = old })
}

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "short flag with separate value",
			args:    []string{"-a", "http://localhost:8080", "-x", "ignored"},
			allowed: []string{"-a"},
			want:    []string{"-a", "http://localhost:8080"},
		},
		{
			name:    "equals form",
			args:    []string{"--config=client.json", "-v"},
			allowed: []string{"--config"},
			want:    []string{"--config=client.json"},
		},
		{
			name:    "unknown flags dropped",
			args:    []string{"-q", "-r", "42"},
			allowed: []string{"-a", "-f"},
			want:    []string{},
		},
		{
			name:    "boolean flag followed by another flag",
			args:    []string{"-demo", "-a", "http://host"},
			allowed: []string{"-demo", "-a"},
			want:    []string{"-demo", "-a", "http://host"},
		},
		{
			name:    "order preserved",
			args:    []string{"-f", "db.sqlite", "-z", "Europe/Riga", "-t", "30"},
			allowed: []string{"-t", "-f", "-z"},
			want:    []string{"-f", "db.sqlite", "-z", "Europe/Riga", "-t", "30"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowed)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no flag", []string{"prog"}, ""},
		{"short", []string{"prog", "-c", "cfg.json"}, "cfg.json"},
		{"long equals", []string{"prog", "-config=other.json"}, "other.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restoreArgs(t, tt.args)
			assert.Equal(t, tt.want, JsonConfigFlags())
		})
	}
}
