// Package config provides configuration loading and structs for the yomu server and CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug     bool            `yaml:"debug"`
	Server    ServerConfig    `yaml:"server"`
	Storage   StorageConfig   `yaml:"storage"`
	Segmenter SegmenterConfig `yaml:"segmenter"`
	Annotate  AnnotateConfig  `yaml:"annotate"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// StorageConfig holds the dictionary database location and lookup cache size.
type StorageConfig struct {
	DatabasePath string `yaml:"database_path"`
	CacheSize    int    `yaml:"cache_size"`
}

// SegmenterConfig selects the morphological analyzer dictionary ("ipa" or "uni").
type SegmenterConfig struct {
	Dictionary string `yaml:"dictionary"`
}

// AnnotateConfig holds page size limits for annotation requests.
type AnnotateConfig struct {
	DefaultPageSize int `yaml:"default_page_size"`
	MaxPageSize     int `yaml:"max_page_size"`
}

// Load reads and parses the config file at path, applies environment overrides and defaults, and expands paths.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyEnv(&cfg)
	ApplyDefaults(&cfg)
	cfg.Storage.DatabasePath = expandPath(cfg.Storage.DatabasePath, filepath.Dir(path))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in defaults with environment overrides applied.
// Used when no config file exists.
func Default() (*Config, error) {
	var cfg Config
	ApplyEnv(&cfg)
	ApplyDefaults(&cfg)
	if cwd, err := os.Getwd(); err == nil {
		cfg.Storage.DatabasePath = expandPath(cfg.Storage.DatabasePath, cwd)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports settings that cannot work.
func (c *Config) Validate() error {
	switch c.Segmenter.Dictionary {
	case "ipa", "uni":
	default:
		return fmt.Errorf("invalid segmenter dictionary %q: want ipa or uni", c.Segmenter.Dictionary)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Annotate.MaxPageSize < c.Annotate.DefaultPageSize {
		return fmt.Errorf("max_page_size %d is smaller than default_page_size %d",
			c.Annotate.MaxPageSize, c.Annotate.DefaultPageSize)
	}
	return nil
}

// Save writes the config to path.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// expandPath converts a path to absolute. Paths starting with "./" are relative to configDir;
// other relative paths are relative to the home directory.
func expandPath(path string, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
