// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for dex configuration.
	DefaultConfigDir = ".dex"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultBaseURL is the public catalog API.
	DefaultBaseURL = "https://pokeapi.co/api/v2"
)

// Config holds static configuration (read-only after load).
type Config struct {
	Catalog CatalogConfig `yaml:"catalog,omitempty"`
	Browse  BrowseConfig  `yaml:"browse,omitempty"`
	Search  SearchConfig  `yaml:"search,omitempty"`
	Log     LogConfig     `yaml:"log,omitempty"`
}

// CatalogConfig holds configuration for the remote catalog API.
type CatalogConfig struct {
	BaseURL   string        `yaml:"base_url,omitempty"`
	Timeout   time.Duration `yaml:"timeout,omitempty"`
	UserAgent string        `yaml:"user_agent,omitempty"`
}

// BrowseConfig holds pagination settings.
type BrowseConfig struct {
	PageSize int `yaml:"page_size,omitempty"`
}

// SearchConfig holds name search settings.
type SearchConfig struct {
	// MaxResults caps how many index matches are resolved into records.
	MaxResults int `yaml:"max_results,omitempty"`
	// IndexLimit is the listing size used to load every name at once.
	IndexLimit int `yaml:"index_limit,omitempty"`
	// Debounce is the quiet period before typed input triggers a search.
	Debounce time.Duration `yaml:"debounce,omitempty"`
	// Concurrency caps parallel record fetches.
	Concurrency int `yaml:"concurrency,omitempty"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
	File  string `yaml:"file,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Catalog: CatalogConfig{
			BaseURL:   DefaultBaseURL,
			Timeout:   15 * time.Second,
			UserAgent: "dex/0.1",
		},
		Browse: BrowseConfig{
			PageSize: 12,
		},
		Search: SearchConfig{
			MaxResults:  20,
			IndexLimit:  1500,
			Debounce:    500 * time.Millisecond,
			Concurrency: 8,
		},
		Log: LogConfig{
			Level: "error",
		},
	}
}

// Load loads configuration from the .dex directory in the given path.
// A missing config file is not an error: defaults apply.
func Load(basePath string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(ConfigFilePath(basePath))
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if u := os.Getenv("DEX_CATALOG_URL"); u != "" {
		c.Catalog.BaseURL = u
	}
	if level := os.Getenv("DEX_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Catalog.BaseURL)
	if err != nil {
		return fmt.Errorf("catalog.base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("catalog.base_url: unsupported scheme %q", u.Scheme)
	}
	if c.Catalog.Timeout < 0 {
		return errors.New("catalog.timeout must not be negative")
	}
	if c.Browse.PageSize <= 0 {
		return errors.New("browse.page_size must be positive")
	}
	if c.Search.MaxResults <= 0 {
		return errors.New("search.max_results must be positive")
	}
	if c.Search.IndexLimit <= 0 {
		return errors.New("search.index_limit must be positive")
	}
	if c.Search.Debounce < 0 {
		return errors.New("search.debounce must not be negative")
	}
	if c.Search.Concurrency <= 0 {
		return errors.New("search.concurrency must be positive")
	}
	return nil
}

// TrimmedBaseURL returns the catalog base URL without surrounding spaces or a
// trailing slash.
func (c CatalogConfig) TrimmedBaseURL() string {
	return strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
}

// ConfigDir returns the path to the .dex config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}
