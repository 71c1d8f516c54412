package config

import (
	"os"
	"path/filepath"
)

const (
	// EnvConfigPath is the environment variable for explicit config path
	EnvConfigPath = "QUESTPLUS_CONFIG"
	// ConfigFileName is the default config file name
	ConfigFileName = "questplus.yaml"
	// ConfigDirName is the config directory name under XDG
	ConfigDirName = "questplus"
)

// localNames are the file names accepted in the working directory
var localNames = []string{ConfigFileName, "questplus.yml"}

// SearchPaths returns the candidate config locations in priority order:
//  1. $QUESTPLUS_CONFIG
//  2. ./questplus.yaml, then ./questplus.yml
//  3. $XDG_CONFIG_HOME/questplus/config.yaml
//  4. ~/.config/questplus/config.yaml
//
// Unset variables contribute no entry. Local names are made absolute so the
// reported path survives a later chdir.
func SearchPaths() []string {
	var paths []string
	if path := os.Getenv(EnvConfigPath); path != "" {
		paths = append(paths, path)
	}
	for _, name := range localNames {
		if abs, err := filepath.Abs(name); err == nil {
			paths = append(paths, abs)
		} else {
			paths = append(paths, name)
		}
	}
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		paths = append(paths, filepath.Join(xdgHome, ConfigDirName, "config.yaml"))
	}
	if home := os.Getenv("HOME"); home != "" {
		paths = append(paths, filepath.Join(home, ".config", ConfigDirName, "config.yaml"))
	}
	return paths
}

// FindConfigPath returns the first existing entry of SearchPaths, or an
// empty string if none exists. A $QUESTPLUS_CONFIG naming a missing file
// falls through to the standard locations.
func FindConfigPath() string {
	for _, path := range SearchPaths() {
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// DefaultConfigPath returns the preferred location for a new config file
func DefaultConfigPath() string {
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		return filepath.Join(xdgHome, ConfigDirName, "config.yaml")
	}

	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".config", ConfigDirName, "config.yaml")
	}

	return ConfigFileName
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir(configPath string) error {
	dir := filepath.Dir(configPath)
	return os.MkdirAll(dir, 0755)
}

// fileExists reports whether path names a regular file
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
