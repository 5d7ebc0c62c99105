// Where: cli/internal/config/global.go
// What: Global config load/save helpers.
// Why: Manage ~/.grabdeck/config.yaml consistently.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/grabdeck/cli/internal/constants"
	"github.com/grabdeck/cli/internal/envutil"
)

// HomeDirName is the per-user directory holding launcher state.
const HomeDirName = ".grabdeck"

// GlobalConfig represents the ~/.grabdeck/config.yaml global configuration.
// Values here are defaults; a grabdeck.yml in the app directory overrides them.
type GlobalConfig struct {
	Version        int    `yaml:"version"`
	PublicHost     string `yaml:"public_host,omitempty"`
	HostTemplate   string `yaml:"host_template,omitempty"`
	Port           int    `yaml:"port,omitempty"`
	Entrypoint     string `yaml:"entrypoint,omitempty"`
	ContainerImage string `yaml:"container_image,omitempty"`
}

// DefaultGlobalConfig returns an initialized GlobalConfig with version set.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{Version: 1}
}

// GlobalConfigPath returns the path to the global config file.
// Respects GRABDECK_CONFIG_PATH and GRABDECK_CONFIG_HOME environment variables.
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
	return filepath.Join(home, HomeDirName, "config.yaml"), nil
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

// LoadGlobalConfig reads and parses the global config file at path.
func LoadGlobalConfig(path string) (GlobalConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GlobalConfig{}, err
	}
	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GlobalConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Version == 0 {
		cfg.Version = DefaultGlobalConfig().Version
	}
	return cfg, nil
}

// SaveGlobalConfig writes the global config to path, creating parent
// directories as needed.
func SaveGlobalConfig(path string, cfg GlobalConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadGlobalConfigOrDefault loads the global config, falling back to the
// default when the file does not exist yet.
func LoadGlobalConfigOrDefault() (string, GlobalConfig, error) {
	path, err := GlobalConfigPath()
	if err != nil {
		return "", GlobalConfig{}, err
	}
	cfg, err := LoadGlobalConfig(path)
	if err != nil {
		if os.IsNotExist(err) {
			return path, DefaultGlobalConfig(), nil
		}
		return path, GlobalConfig{}, err
	}
	return path, cfg, nil
}
