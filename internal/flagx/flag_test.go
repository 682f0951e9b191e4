package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "short flag with separate value",
			args:    []string{"-c", "conf.json", "-a", "http://api.local"},
			allowed: []string{"-c"},
			want:    []string{"-c", "conf.json"},
		},
		{
			name:    "flag with equals",
			args:    []string{"-a=http://api.local", "-l", "debug"},
			allowed: []string{"-a"},
			want:    []string{"-a=http://api.local"},
		},
		{
			name:    "unknown flags and positionals ignored",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "flag without value at end is kept",
			args:    []string{"-c"},
			allowed: []string{"-c"},
			want:    []string{"-c"},
		},
		{
			name:    "next dash token is not a value",
			args:    []string{"-a", "-l", "debug"},
			allowed: []string{"-a", "-l"},
			want:    []string{"-a", "-l", "debug"},
		},
		{
			name:    "several allowed flags keep order",
			args:    []string{"-d", "/tmp/x", "-c", "conf.json", "-b", "http://cb"},
			allowed: []string{"-b", "-d"},
			want:    []string{"-d", "/tmp/x", "-b", "http://cb"},
		},
		{
			name:    "empty args",
			args:    nil,
			allowed: []string{"-c"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	assert.Equal(t, "/etc/short.json", ConfigFileFlag([]string{"-c", "/etc/short.json"}))
	assert.Equal(t, "/etc/long.json", ConfigFileFlag([]string{"-a", "http://x", "-config", "/etc/long.json"}))
	assert.Equal(t, "/etc/eq.json", ConfigFileFlag([]string{"-config=/etc/eq.json"}))
	assert.Equal(t, "/etc/2.json", ConfigFileFlag([]string{"-c", "/etc/1.json", "-config", "/etc/2.json"}))
	assert.Empty(t, ConfigFileFlag([]string{"-x", "1"}))
}
