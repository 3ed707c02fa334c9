package main

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const defaultConfigDir = ".feeds/"

// GetConfigPath returns the full path to a config file
func GetConfigPath(filename string) string {
	return filepath.Join(defaultConfigDir, filename)
}

// ConfigOverrides holds file path overrides for embedded configurations
type ConfigOverrides struct {
	DigestTemplatePath *string
	PostTemplatePath   *string
	SettingsPath       *string
}

//go:embed config/settings.yaml
var defaultSettings string

//go:embed config/daily-digest-template.md
var defaultDigestTemplate string

//go:embed config/blog-post-template.md
var defaultPostTemplate string

// Settings represents the YAML configuration structure
type Settings struct {
	Host           string   `yaml:"host"`
	PostsDirectory string   `yaml:"posts_directory"`
	PagesDirectory string   `yaml:"pages_directory"`
	DefaultTags    []string `yaml:"default_tags"`
}

func defaultSettingsValues() *Settings {
	return &Settings{
		Host:           "host.docker.internal:8000",
		PostsDirectory: "feeds.code-drill.eu/posts",
		PagesDirectory: "feeds.code-drill.eu/pages",
		DefaultTags:    []string{"tech"},
	}
}

// LoadSettings loads settings, preferring an explicit override path, then
// the default location, then built-in defaults when no file exists.
func LoadSettings(overrides *ConfigOverrides) (*Settings, error) {
	if overrides != nil && overrides.SettingsPath != nil {
		return loadSettingsRequired(*overrides.SettingsPath)
	}
	return loadSettings(GetConfigPath("settings.yaml"))
}

// loadSettings loads settings from a YAML file with fallback to defaults
func loadSettings(settingsPath string) (*Settings, error) {
	data, err := os.ReadFile(settingsPath)
	if err != nil {
		return defaultSettingsValues(), nil
	}
	return parseSettings(data)
}

// loadSettingsRequired loads settings from a YAML file, failing if the file
// doesn't exist
func loadSettingsRequired(settingsPath string) (*Settings, error) {
	data, err := os.ReadFile(settingsPath)
	if err != nil {
		return nil, fmt.Errorf("reading settings file %s: %w", settingsPath, err)
	}
	return parseSettings(data)
}

func parseSettings(data []byte) (*Settings, error) {
	settings := defaultSettingsValues()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parsing settings YAML: %w", err)
	}
	return settings, nil
}

// ensureConfigExists creates the config directory and writes the default
// settings.yaml if needed
func ensureConfigExists() error {
	if err := os.MkdirAll(defaultConfigDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	settingsFile := GetConfigPath("settings.yaml")
	if _, err := os.Stat(settingsFile); os.IsNotExist(err) {
		if err := os.WriteFile(settingsFile, []byte(defaultSettings), 0644); err != nil {
			return fmt.Errorf("writing settings.yaml: %w", err)
		}
	}

	return nil
}
