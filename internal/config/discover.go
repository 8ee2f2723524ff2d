package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvConfig names the environment variable that pins the config file.
const EnvConfig = "JWP_CONFIG"

// ErrNotFound is returned by Discover when EnvConfig is unset and no
// config file exists on the search path. Callers may fall back to Default.
var ErrNotFound = errors.New("no config file found")

// DefaultPath is where "config init" writes when given no path:
// jwpuser/config.toml under os.UserConfigDir.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(dir, "jwpuser", "config.toml")
}

func searchPaths() []string {
	return []string{
		"./config.toml",
		DefaultPath(),
		"/etc/jwpuser/config.toml",
	}
}

// Discover returns the config file to load. A path named by EnvConfig must
// exist; otherwise the first regular file on the search path wins.
func Discover() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		info, err := os.Stat(p)
		if err != nil {
			return "", fmt.Errorf("%s=%s: %w", EnvConfig, p, err)
		}
		if info.IsDir() {
			return "", fmt.Errorf("%s=%s: is a directory", EnvConfig, p)
		}
		return p, nil
	}

	paths := searchPaths()
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w (searched %s)", ErrNotFound, strings.Join(paths, ", "))
}
