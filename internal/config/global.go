// Where: cli/internal/config/global.go
// What: Global config load/save helpers.
// Why: Manage ~/.navbox/config.yaml consistently.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/skyfield-robotics/navbox/cli/internal/constants"
	"github.com/skyfield-robotics/navbox/cli/internal/envutil"
	"github.com/skyfield-robotics/navbox/cli/internal/meta"
)

// GlobalConfig represents the ~/.navbox/config.yaml global configuration.
// It stores the deployment repo location and user defaults.
type GlobalConfig struct {
	Version   int         `yaml:"version"`
	RepoPath  string      `yaml:"repo_path,omitempty"`
	Autopilot string      `yaml:"autopilot,omitempty"`
	Assets    AssetConfig `yaml:"assets,omitempty"`
}

// AssetConfig stores overrides for the demo asset bundle source.
type AssetConfig struct {
	Bucket string `yaml:"bucket,omitempty"`
	Region string `yaml:"region,omitempty"`
}

// DefaultGlobalConfig returns an initialized GlobalConfig with version set.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{Version: 1}
}

// GlobalConfigPath returns the path to the global config file.
// Respects NAVBOX_CONFIG_PATH and NAVBOX_CONFIG_HOME environment variables.
func GlobalConfigPath() (string, error) {
	if override := strings.TrimSpace(envutil.GetHostEnv(constants.HostSuffixConfigPath)); override != "" {
		path := override
		if !filepath.IsAbs(path) {
			if abs, err := filepath.Abs(path); err == nil {
				path = abs
			}
		}
		return path, nil
	}
	if override := strings.TrimSpace(envutil.GetHostEnv(constants.HostSuffixConfigHome)); override != "" {
		return filepath.Join(override, "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, meta.HomeDir, "config.yaml"), nil
}

// EnsureGlobalConfig creates the global config file if it doesn't exist.
func EnsureGlobalConfig() error {
	path, err := GlobalConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return SaveGlobalConfig(path, DefaultGlobalConfig())
		}
		return err
	}
	return nil
}

// LoadGlobalConfig reads and parses the global configuration file.
func LoadGlobalConfig(path string) (GlobalConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return GlobalConfig{}, err
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return GlobalConfig{}, err
	}
	return cfg, nil
}

// LoadGlobalConfigOrDefault loads the global config, falling back to the
// default when the file is missing or unreadable.
func LoadGlobalConfigOrDefault() GlobalConfig {
	path, err := GlobalConfigPath()
	if err != nil {
		return DefaultGlobalConfig()
	}
	cfg, err := LoadGlobalConfig(path)
	if err != nil {
		return DefaultGlobalConfig()
	}
	return cfg
}

// SaveGlobalConfig writes a GlobalConfig to the specified path.
func SaveGlobalConfig(path string, cfg GlobalConfig) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, payload, 0o644)
}
