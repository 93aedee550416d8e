package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTreeAPI    = "https://api.github.com/repos/jgraph/drawio/git/trees/dev?recursive=1"
	DefaultPathPrefix = "src/main/webapp/img/lib/azure2/"
	DefaultRawBase    = "https://raw.githubusercontent.com/jgraph/drawio/dev/src/main/webapp/img/lib/azure2/"

	DefaultFetchTimeout = 60 * time.Second
	DefaultCheckTimeout = 20 * time.Second
	DefaultMaxResults   = 50
)

type Config struct {
	TreeAPI      string        `yaml:"tree_api" env:"ICONSEARCH_TREE_API"`
	PathPrefix   string        `yaml:"path_prefix" env:"ICONSEARCH_PATH_PREFIX"`
	RawBase      string        `yaml:"raw_base" env:"ICONSEARCH_RAW_BASE"`
	FetchTimeout time.Duration `yaml:"fetch_timeout" env:"ICONSEARCH_FETCH_TIMEOUT"`
	CheckTimeout time.Duration `yaml:"check_timeout" env:"ICONSEARCH_CHECK_TIMEOUT"`
	MaxResults   int           `yaml:"max_results" env:"ICONSEARCH_MAX_RESULTS"`
}

func DefaultConfig() *Config {
	return &Config{
		TreeAPI:      DefaultTreeAPI,
		PathPrefix:   DefaultPathPrefix,
		RawBase:      DefaultRawBase,
		FetchTimeout: DefaultFetchTimeout,
		CheckTimeout: DefaultCheckTimeout,
		MaxResults:   DefaultMaxResults,
	}
}

// LoadConfig reads the YAML file at path on top of the defaults. A missing
// file is not an error. Keys absent from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overrides fields from ICONSEARCH_* environment variables. Unset
// variables leave the current values alone.
func (c *Config) ApplyEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	switch {
	case c.TreeAPI == "":
		return errors.New("tree_api must not be empty")
	case c.PathPrefix == "":
		return errors.New("path_prefix must not be empty")
	case c.RawBase == "":
		return errors.New("raw_base must not be empty")
	case c.FetchTimeout <= 0:
		return fmt.Errorf("fetch_timeout must be positive, got %s", c.FetchTimeout)
	case c.CheckTimeout <= 0:
		return fmt.Errorf("check_timeout must be positive, got %s", c.CheckTimeout)
	case c.MaxResults < 0:
		return fmt.Errorf("max_results must not be negative, got %d", c.MaxResults)
	}
	return nil
}
