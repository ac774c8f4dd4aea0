package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

const (
	// FileName is the config file looked up in the working and user config
	// directories.
	FileName = "picsort.yaml"
	// DirFileName is a hidden config file next to the photos being sorted.
	DirFileName = ".picsort.yaml"
	// EnvPath names a config file when --config is not given.
	EnvPath = "PICSORT_CONFIG"
)

// Load builds the configuration for sorting photoDir. Values come from the
// defaults, then one config file, then command-line flags. The returned path
// is the file that was applied, empty when none was found.
func Load(photoDir string) (*Config, string, error) {
	cfg := Default()

	path, err := findConfigFile(photoDir)
	if err != nil {
		return nil, "", err
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, "", fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	applyFlags(cfg)
	return cfg, path, nil
}

// explicitPath returns the file named by --config or $PICSORT_CONFIG.
func explicitPath() string {
	if p := ConfigPath(); p != "" {
		return p
	}
	return os.Getenv(EnvPath)
}

// SearchPaths lists the files Load looks for, most specific first. An
// explicitly named file is the only candidate.
func SearchPaths(photoDir string) []string {
	if p := explicitPath(); p != "" {
		return []string{p}
	}
	var paths []string
	if photoDir != "" {
		paths = append(paths, filepath.Join(photoDir, DirFileName))
	}
	return append(paths, FileName, filepath.Join(ConfigDir(), FileName))
}

// findConfigFile returns the first existing search path. A missing
// explicit file is an error; other candidates are optional.
func findConfigFile(photoDir string) (string, error) {
	paths := SearchPaths(photoDir)
	explicit := explicitPath() != ""
	for _, path := range paths {
		info, err := os.Stat(path)
		switch {
		case err == nil && info.IsDir():
			if explicit {
				return "", fmt.Errorf("config path %s is a directory", path)
			}
		case err == nil:
			return path, nil
		case explicit:
			return "", fmt.Errorf("config file: %w", err)
		}
	}
	return "", nil
}

// ConfigDir returns the per-user picsort config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "picsort")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "picsort")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "picsort")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "picsort")
	}
}

// loadFromFile merges the YAML file at path into cfg.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
