package config

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd", "-a", "http://api:8080", "-b", "http://ui:8081", "-d", "/tmp/g", "-l", "debug"},
			expected: &Config{APIURL: "http://api:8080", CallbackURL: "http://ui:8081", DataDir: "/tmp/g", LogLevel: "debug"}},
		{name: "config flag ignored", args: []string{"cmd", "-c", "cfg.json", "-a", "http://api:8080"},
			expected: &Config{APIURL: "http://api:8080"}},
		{name: "equals form", args: []string{"cmd", "-l=warn"},
			expected: &Config{LogLevel: "warn"}},
		{name: "missing value", args: []string{"cmd", "-a"}, expectPanic: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
