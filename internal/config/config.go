// Package config provides configuration management for the countrystd tools.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Data      DataConfig      `yaml:"data"`
	Countries CountriesConfig `yaml:"countries"`
}

// DataConfig holds the dataset directory layout.
type DataConfig struct {
	RawDir       string `yaml:"raw_dir"`
	ProcessedDir string `yaml:"processed_dir"`
}

// CountriesConfig holds country-resolution settings.
type CountriesConfig struct {
	// Column is the name of the country column in input datasets.
	Column string `yaml:"column"`
	// AliasFile optionally points to a YAML file of extra alias -> canonical
	// pairs merged into the builtin table at startup.
	AliasFile string `yaml:"alias_file"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			RawDir:       "data/raw",
			ProcessedDir: "data/processed",
		},
		Countries: CountriesConfig{
			Column: "Country",
		},
	}
}

// Load reads configuration from a YAML file and expands environment variables.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the config
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// LoadFromEnv creates a configuration from environment variables only.
func LoadFromEnv() *Config {
	cfg := &Config{
		Data: DataConfig{
			RawDir:       getEnv("COUNTRYSTD_RAW_DIR", ""),
			ProcessedDir: getEnv("COUNTRYSTD_PROCESSED_DIR", ""),
		},
		Countries: CountriesConfig{
			Column:    getEnv("COUNTRYSTD_COLUMN", ""),
			AliasFile: getEnv("COUNTRYSTD_ALIAS_FILE", ""),
		},
	}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Data.RawDir == "" {
		cfg.Data.RawDir = "data/raw"
	}
	if cfg.Data.ProcessedDir == "" {
		cfg.Data.ProcessedDir = "data/processed"
	}
	if cfg.Countries.Column == "" {
		cfg.Countries.Column = "Country"
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
