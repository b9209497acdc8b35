package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("PALPITE_TEST_DIR", "/var/data")

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{
			name:     "empty path",
			path:     "",
			expected: "",
		},
		{
			name:     "bare tilde",
			path:     "~",
			expected: home,
		},
		{
			name:     "tilde prefix",
			path:     "~/.local/share/palpite/palpite.db",
			expected: filepath.Join(home, ".local/share/palpite/palpite.db"),
		},
		{
			name:     "environment variable",
			path:     "$PALPITE_TEST_DIR/palpite.db",
			expected: "/var/data/palpite.db",
		},
		{
			name:     "absolute path untouched",
			path:     "/tmp/palpite.db",
			expected: "/tmp/palpite.db",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandPath(tt.path))
		})
	}
}
