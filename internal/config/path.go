// Package config resolves fraudscope's on-disk locations: the model
// artifact and the directory searched for the config file.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ModelPath resolves where the model artifact lives. An explicitly
// configured path wins, after ~ and $VAR expansion. Otherwise the
// artifact is looked up under $XDG_DATA_HOME/fraudscope, falling back
// to ~/.local/share/fraudscope.
func ModelPath(configured string) string {
	if configured != "" {
		return ExpandPath(configured)
	}
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "fraudscope", "model.json")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// No home directory; resolve relative to the working dir.
		return "model.json"
	}
	return filepath.Join(home, ".local", "share", "fraudscope", "model.json")
}

// Dir returns the directory searched for config.yaml.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "fraudscope"), nil
}

// ExpandPath expands a leading ~ and any $VAR references in a path.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return os.ExpandEnv(path)
}
