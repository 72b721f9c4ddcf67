package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Paths contains standard filesystem paths for DashCraft.
type Paths struct {
	// ConfigFile is the path to the config file (~/.dashcraft/config.yaml).
	ConfigFile string

	// HomeDir is the DashCraft home directory (~/.dashcraft).
	HomeDir string
}

// DefaultPaths returns the default paths for DashCraft.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	dcHome := filepath.Join(homeDir, ".dashcraft")

	return &Paths{
		ConfigFile: filepath.Join(dcHome, "config.yaml"),
		HomeDir:    dcHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If DASHCRAFT_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("DASHCRAFT_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
