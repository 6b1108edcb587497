package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/clamstew/siteprompt/internal/constants"
	"github.com/clamstew/siteprompt/internal/registry"
)

// ConfigFileName is the name of the config file
const ConfigFileName = "config.yaml"

// ProjectConfigDir is the per-directory config location
const ProjectConfigDir = "." + constants.AppName

// FileConfig represents the configuration file structure
type FileConfig struct {
	Title  string `yaml:"title,omitempty"`
	Prompt string `yaml:"prompt,omitempty"`

	// Duration string such as "600ms"
	NavigationDelay string `yaml:"navigation_delay,omitempty"`

	// Ordered; a YAML mapping would lose the order
	Commands []registry.Site `yaml:"commands,omitempty"`
	Builtins []string        `yaml:"builtins,omitempty"`

	Logging  *LoggingConfig  `yaml:"logging,omitempty"`
	Defaults *DefaultsConfig `yaml:"defaults,omitempty"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`  // debug, info, warn, error, none
	Format string `yaml:"format,omitempty"` // text, json
}

// DefaultsConfig holds default flag values
type DefaultsConfig struct {
	Render    bool `yaml:"render,omitempty"`
	NoBrowser bool `yaml:"no_browser,omitempty"`
}

// GetConfigPaths returns the paths to check for config files (in order of priority)
func GetConfigPaths() []string {
	var paths []string

	// 1. Current directory
	paths = append(paths, filepath.Join(".", ProjectConfigDir, ConfigFileName))

	// 2. User config directory
	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(configDir, constants.AppName, ConfigFileName))
	}

	// 3. Home directory
	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".config", constants.AppName, ConfigFileName))
	}

	return paths
}

// LoadConfigFile loads the file at explicit, or the first existing default
// path when explicit is empty. A missing default file is not an error; a
// missing explicit file is.
func LoadConfigFile(fs afero.Fs, explicit string) (*FileConfig, error) {
	if explicit != "" {
		return loadConfigFromPath(fs, explicit)
	}

	for _, path := range GetConfigPaths() {
		if ok, _ := afero.Exists(fs, path); ok {
			return loadConfigFromPath(fs, path)
		}
	}

	// No config file found, return empty config
	return &FileConfig{}, nil
}

// loadConfigFromPath loads config from a specific path
func loadConfigFromPath(fs afero.Fs, path string) (*FileConfig, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if cfg.NavigationDelay != "" {
		if _, err := time.ParseDuration(cfg.NavigationDelay); err != nil {
			return nil, fmt.Errorf("invalid navigation_delay in %s: %w", path, err)
		}
	}

	return &cfg, nil
}

// ApplyFileConfig applies file configuration to the main Config
// File config has lower priority than environment variables and CLI flags
func (c *Config) ApplyFileConfig(fc *FileConfig) {
	if fc == nil {
		return
	}

	if c.Title == "" && fc.Title != "" {
		c.Title = fc.Title
	}
	if c.Prompt == "" && fc.Prompt != "" {
		c.Prompt = fc.Prompt
	}

	// Validated when loaded
	if c.NavigationDelay == 0 && fc.NavigationDelay != "" {
		c.NavigationDelay, _ = time.ParseDuration(fc.NavigationDelay)
	}

	// The command table only comes from the file
	if c.Sites == nil && len(fc.Commands) > 0 {
		c.Sites = fc.Commands
	}
	if c.Builtins == nil && fc.Builtins != nil {
		c.Builtins = fc.Builtins
	}

	if fc.Logging != nil {
		if c.LogLevel == "" && fc.Logging.Level != "" {
			c.LogLevel = fc.Logging.Level
		}
		if c.LogFormat == "" && fc.Logging.Format != "" {
			c.LogFormat = fc.Logging.Format
		}
	}

	// Apply defaults (these are applied unless explicitly overridden by flags)
	if fc.Defaults != nil {
		// Boolean flags can't tell "unset" from "false", so only true
		// values in the file have an effect
		if fc.Defaults.Render && !c.Render {
			c.Render = true
		}
		if fc.Defaults.NoBrowser && !c.NoBrowser {
			c.NoBrowser = true
		}
	}
}

// CreateDefaultConfigFile writes a commented config file to the user config
// directory and returns its path
func CreateDefaultConfigFile(fs afero.Fs) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not determine config directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return writeDefaultConfig(fs, filepath.Join(configDir, constants.AppName))
}

func writeDefaultConfig(fs afero.Fs, dir string) (string, error) {
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	path := filepath.Join(dir, ConfigFileName)
	if ok, _ := afero.Exists(fs, path); ok {
		return path, fmt.Errorf("config file already exists at %s", path)
	}

	if err := afero.WriteFile(fs, path, []byte(defaultConfig), 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return path, nil
}

const defaultConfig = `# siteprompt configuration
# Location: ~/.config/siteprompt/config.yaml

# Heading shown above the prompt
# title: clay.codes

# Prompt prefix
# prompt: "$> "

# Pause between "Opening site" and the browser opening
# navigation_delay: 600ms

# Commands, in the order they are suggested
commands:
  - name: twitter
    url: https://twitter.com/Clay_Stewart
  - name: github
    url: https://github.com/clamstew
  - name: hire me
    url: https://www.linkedin.com/in/claystewart/
  - name: site code
    url: https://github.com/clamstew/clay.codes
  - name: notes
    url: https://notes.build

# Reserved commands handled by the prompt itself
builtins:
  - history

# logging:
#   level: warn   # debug, info, warn, error, none
#   format: text  # text or json

# defaults:
#   render: false
#   no_browser: false
`
