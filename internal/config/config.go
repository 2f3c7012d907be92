package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/tgoss21/openclaw-monitor/internal/fetcher"
)

// Config holds all application configuration.
type Config struct {
	Chart struct {
		Dir    string `yaml:"dir"`
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
	} `yaml:"chart"`
	DataSource struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"data_source"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is not an error; defaults cover every field.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("CHART_DIR"); v != "" {
		cfg.Chart.Dir = v
	}
	if v := os.Getenv("CHART_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Chart.Width = n
		}
	}
	if v := os.Getenv("CHART_HEIGHT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Chart.Height = n
		}
	}
	if v := os.Getenv("YAHOO_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Chart.Dir == "" {
		cfg.Chart.Dir = "shared/charts"
	}
	if cfg.Chart.Width == 0 {
		cfg.Chart.Width = 1200
	}
	if cfg.Chart.Height == 0 {
		cfg.Chart.Height = 800
	}
	if cfg.DataSource.BaseURL == "" {
		cfg.DataSource.BaseURL = fetcher.DefaultBaseURL
	}

	return cfg, nil
}

// Validate checks that all required fields are usable.
func (c *Config) Validate() error {
	if c.Chart.Dir == "" {
		return fmt.Errorf("chart.dir is required")
	}
	if c.Chart.Width <= 0 {
		return fmt.Errorf("chart.width must be positive")
	}
	if c.Chart.Height <= 0 {
		return fmt.Errorf("chart.height must be positive")
	}
	return nil
}
