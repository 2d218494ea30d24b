package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name        string
		args        []string
		expectPanic bool
		expected    *Config
	}{
		{
			name:        "overrides server, db and interval",
			args:        []string{"cmd", "-s", "http://api.example:9000/api/v1", "-d", "/tmp/s.db", "-g", "10"},
			expectPanic: false,
			expected: &Config{
				ServerBaseURL:    "http://api.example:9000/api/v1",
				DatabasePath:     "/tmp/s.db",
				GoalSyncInterval: 10 * time.Second,
			},
		},
		{
			name:        "incorrect sync interval",
			args:        []string{"cmd", "-g", "abc"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Equal(t, tt.expected, config)
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
