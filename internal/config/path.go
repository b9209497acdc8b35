// Package config holds small helpers shared by the CLI configuration
// layer.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath resolves ~ to the user's home directory and expands $VAR
// references, so database and keyword-file paths from flags or config
// files can be written the way shells accept them.
func ExpandPath(path string) string {
	switch {
	case path == "":
		return path
	case path == "~":
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	case strings.HasPrefix(path, "~/"):
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}

	return os.ExpandEnv(path)
}
