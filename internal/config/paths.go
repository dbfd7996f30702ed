package config

import (
	"os"
	"path/filepath"
)

// Built-in document locations, relative to the working directory.
const (
	DefaultDefaultsFile = "vars/defaults.yml"
	DefaultProjectFile  = "project.yml"
	DefaultOutputFile   = "merged_config.yml"
)

// Environment variables read by the resolver.
const (
	EnvConfig   = "DSCAFFOLD_CONFIG"
	EnvDefaults = "DSCAFFOLD_DEFAULTS"
	EnvProject  = "DSCAFFOLD_PROJECT"
	EnvOutput   = "DSCAFFOLD_OUTPUT"
)

// Paths contains standard filesystem paths for dscaffold.
type Paths struct {
	// ConfigFile is the path to the config file (~/.dscaffold/config.yaml).
	ConfigFile string

	// HomeDir is the dscaffold home directory (~/.dscaffold).
	HomeDir string
}

// DefaultPaths returns the default paths for dscaffold.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	home := filepath.Join(homeDir, ".dscaffold")

	return &Paths{
		ConfigFile: filepath.Join(home, "config.yaml"),
		HomeDir:    home,
	}, nil
}

// GetConfigFile returns the config file path.
// If DSCAFFOLD_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv(EnvConfig); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// Handle ~username (not supported, return as-is)
	return path, nil
}

// ExpandTilde is ExpandPath for callers that prefer the input back on error.
func ExpandTilde(path string) string {
	expanded, err := ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}
