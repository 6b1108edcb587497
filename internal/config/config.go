package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/clamstew/siteprompt/internal/constants"
	"github.com/clamstew/siteprompt/internal/registry"
)

// Environment variable names
const (
	EnvConfigFile      = "SITEPROMPT_CONFIG"
	EnvNavigationDelay = "SITEPROMPT_NAVIGATION_DELAY"
	EnvNoBrowser       = "SITEPROMPT_NO_BROWSER"
	EnvLogLevel        = "SITEPROMPT_LOG_LEVEL"
	EnvLogFormat       = "SITEPROMPT_LOG_FORMAT"
)

// Defaults - re-exported from constants for convenience
const (
	DefaultNavigationDelay = constants.DefaultNavigationDelay
	DefaultTitle           = constants.DefaultTitle
	DefaultPrompt          = constants.DefaultPrompt
	DefaultLogLevel        = "warn"
	DefaultLogFormat       = "text"
)

// Errors
var (
	ErrInvalidDelay  = errors.New("navigation delay must not be negative")
	ErrInvalidURL    = errors.New("site URL must be an absolute http or https URL")
	ErrNoCommands    = errors.New("no commands configured")
	ErrInvalidFormat = errors.New("invalid log format. Use 'text' or 'json'")
)

// Config holds the application configuration
type Config struct {
	// Where to read the YAML file from; empty means search the default paths
	ConfigFile string

	// Presentation
	Title  string
	Prompt string

	// Command table
	Sites    []registry.Site
	Builtins []string

	// Navigation
	NavigationDelay time.Duration
	NoBrowser       bool

	// Logging
	LogLevel  string
	LogFormat string
	Verbose   bool

	// Output
	Render bool

	// Filesystem used for config files; nil means the OS filesystem
	Fs afero.Fs

	registry *registry.Registry
}

// NewConfig creates a new Config backed by the OS filesystem
func NewConfig() *Config {
	return &Config{Fs: afero.NewOsFs()}
}

// Validate loads the file and environment into unset fields, applies
// defaults and builds the command registry
func (c *Config) Validate() error {
	if c.Fs == nil {
		c.Fs = afero.NewOsFs()
	}

	// Env var can point at a specific file; flags win over it
	if c.ConfigFile == "" {
		c.ConfigFile = os.Getenv(EnvConfigFile)
	}

	fileConfig, err := LoadConfigFile(c.Fs, c.ConfigFile)
	if err != nil {
		return err
	}

	// Environment takes precedence over the file, so apply it first and
	// let ApplyFileConfig fill only what is still unset
	if err := c.applyEnv(); err != nil {
		return err
	}
	c.ApplyFileConfig(fileConfig)

	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.Prompt == "" {
		c.Prompt = DefaultPrompt
	}
	if c.Sites == nil {
		c.Sites = registry.DefaultSites()
	}
	if c.Builtins == nil {
		c.Builtins = append([]string(nil), constants.DefaultBuiltins...)
	}
	if c.NavigationDelay == 0 {
		c.NavigationDelay = DefaultNavigationDelay
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = DefaultLogFormat
	}
	if c.Verbose {
		c.LogLevel = "debug"
	}

	if c.NavigationDelay < 0 {
		return ErrInvalidDelay
	}
	if f := strings.ToLower(c.LogFormat); f != "text" && f != "json" {
		return ErrInvalidFormat
	}
	if len(c.Sites)+len(c.Builtins) == 0 {
		return ErrNoCommands
	}
	for _, s := range c.Sites {
		if err := validateURL(s.URL); err != nil {
			return fmt.Errorf("command %q: %w", s.Name, err)
		}
	}

	reg, err := registry.New(c.Sites, c.Builtins)
	if err != nil {
		return fmt.Errorf("invalid command table: %w", err)
	}
	c.registry = reg

	return nil
}

// applyEnv reads environment variables into fields that are still unset
func (c *Config) applyEnv() error {
	if c.NavigationDelay == 0 {
		if v := os.Getenv(EnvNavigationDelay); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("invalid %s %q: %w", EnvNavigationDelay, v, err)
			}
			c.NavigationDelay = d
		}
	}
	if !c.NoBrowser {
		if v := os.Getenv(EnvNoBrowser); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("invalid %s %q: %w", EnvNoBrowser, v, err)
			}
			c.NoBrowser = b
		}
	}
	if c.LogLevel == "" {
		c.LogLevel = os.Getenv(EnvLogLevel)
	}
	if c.LogFormat == "" {
		c.LogFormat = os.Getenv(EnvLogFormat)
	}
	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidURL, raw)
	}
	return nil
}

// Registry returns the command table built by Validate
func (c *Config) Registry() *registry.Registry {
	return c.registry
}

// GetCommandNamesString returns a formatted string of configured commands
func (c *Config) GetCommandNamesString() string {
	if c.registry == nil {
		return "(not loaded)"
	}
	return strings.Join(c.registry.AllNames(), ", ")
}
