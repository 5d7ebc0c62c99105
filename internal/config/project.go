// Where: cli/internal/config/project.go
// What: Per-app project config (grabdeck.yml) and resolved launch settings.
// Why: Let an app directory override global defaults without flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ProjectConfigName is the file looked up in the app directory.
const ProjectConfigName = "grabdeck.yml"

// DefaultPort is the port the launched server listens on.
const DefaultPort = 5000

// DefaultHostTemplate renders the public base URL from the detected LAN
// address when no explicit public_host is configured.
const DefaultHostTemplate = "http://{{ .IP }}:{{ .Port }}"

// DefaultContainerImage is the server image used by container mode.
const DefaultContainerImage = "grabdeck/server:latest"

// ProjectConfig represents an app-local grabdeck.yml.
type ProjectConfig struct {
	PublicHost   string `yaml:"public_host,omitempty" json:"public_host,omitempty"`
	HostTemplate string `yaml:"host_template,omitempty" json:"host_template,omitempty"`
	Port         int    `yaml:"port,omitempty" json:"port,omitempty"`
	Entrypoint   string `yaml:"entrypoint,omitempty" json:"entrypoint,omitempty"`
	Venv         string `yaml:"venv,omitempty" json:"venv,omitempty"`
	EnvFile      string `yaml:"env_file,omitempty" json:"env_file,omitempty"`
	Container    struct {
		Image string `yaml:"image,omitempty" json:"image,omitempty"`
	} `yaml:"container,omitempty" json:"container,omitempty"`
}

// Settings is the merged, ready-to-use launch configuration.
type Settings struct {
	AppDir         string
	PublicHost     string
	HostTemplate   string
	Port           int
	Entrypoint     string
	Venv           string
	EnvFile        string
	ContainerImage string
}

// LoadProjectConfig reads and validates grabdeck.yml in dir. A missing file
// is not an error; the zero ProjectConfig is returned.
func LoadProjectConfig(dir string) (ProjectConfig, error) {
	path := filepath.Join(dir, ProjectConfigName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ProjectConfig{}, nil
		}
		return ProjectConfig{}, err
	}

	if err := ValidateProjectConfig(data); err != nil {
		return ProjectConfig{}, fmt.Errorf("%s: %w", path, err)
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ProjectConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve merges project config over global config over built-in defaults.
func Resolve(appDir string, global GlobalConfig, project ProjectConfig) Settings {
	s := Settings{
		AppDir:         appDir,
		PublicHost:     firstNonEmpty(project.PublicHost, global.PublicHost),
		HostTemplate:   firstNonEmpty(project.HostTemplate, global.HostTemplate, DefaultHostTemplate),
		Port:           DefaultPort,
		Entrypoint:     firstNonEmpty(project.Entrypoint, global.Entrypoint),
		Venv:           project.Venv,
		EnvFile:        project.EnvFile,
		ContainerImage: firstNonEmpty(project.Container.Image, global.ContainerImage, DefaultContainerImage),
	}
	if project.Port > 0 {
		s.Port = project.Port
	} else if global.Port > 0 {
		s.Port = global.Port
	}
	return s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
