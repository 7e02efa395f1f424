package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Source struct {
		Provider  string `yaml:"provider"`
		StartDate string `yaml:"start_date"`
		EndDate   string `yaml:"end_date"`
	} `yaml:"source"`
	Universe struct {
		File        string `yaml:"file"`
		Prefix      string `yaml:"prefix"`
		IndexSymbol string `yaml:"index_symbol"`
	} `yaml:"universe"`
	Charts struct {
		OutputDir  string  `yaml:"output_dir"`
		SMAWindow  int     `yaml:"sma_window"`
		BandWindow int     `yaml:"band_window"`
		BandWidth  float64 `yaml:"band_width"`
		Volume     bool    `yaml:"volume"`
	} `yaml:"charts"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
	Proxy string `yaml:"proxy"`
}

const dateLayout = "2006-01-02"

// Load reads config from a YAML file, then applies environment variable overrides.
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
	if v := os.Getenv("CHARTBOOK_PROVIDER"); v != "" {
		cfg.Source.Provider = v
	}
	if v := os.Getenv("CHARTBOOK_START_DATE"); v != "" {
		cfg.Source.StartDate = v
	}
	if v := os.Getenv("CHARTBOOK_END_DATE"); v != "" {
		cfg.Source.EndDate = v
	}
	if v := os.Getenv("CHARTBOOK_UNIVERSE"); v != "" {
		cfg.Universe.File = v
	}
	if v := os.Getenv("CHARTBOOK_PREFIX"); v != "" {
		cfg.Universe.Prefix = v
	}
	if v := os.Getenv("CHARTBOOK_CHART_DIR"); v != "" {
		cfg.Charts.OutputDir = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("REFRESH_CRON"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Source.Provider == "" {
		cfg.Source.Provider = "yahoo"
	}
	if cfg.Source.StartDate == "" {
		cfg.Source.StartDate = time.Now().AddDate(-2, 0, 0).Format(dateLayout)
	}
	if cfg.Universe.File == "" {
		cfg.Universe.File = "data/symbols.csv"
	}
	if cfg.Universe.IndexSymbol == "" {
		cfg.Universe.IndexSymbol = "SPX500"
	}
	if cfg.Charts.OutputDir == "" {
		cfg.Charts.OutputDir = "charts"
	}
	if cfg.Charts.SMAWindow == 0 {
		cfg.Charts.SMAWindow = 20
	}
	if cfg.Charts.BandWindow == 0 {
		cfg.Charts.BandWindow = 20
	}
	if cfg.Charts.BandWidth == 0 {
		cfg.Charts.BandWidth = 2.0
	}

	return cfg, nil
}

// Validate checks that all required fields are set and coherent.
func (c *Config) Validate() error {
	switch c.Source.Provider {
	case "yahoo", "stooq", "mock":
	default:
		return fmt.Errorf("source.provider %q is not one of yahoo, stooq, mock", c.Source.Provider)
	}
	if c.Universe.File == "" {
		return fmt.Errorf("universe.file is required")
	}
	from, err := c.StartTime()
	if err != nil {
		return err
	}
	to, err := c.EndTime()
	if err != nil {
		return err
	}
	if !to.IsZero() && from.After(to) {
		return fmt.Errorf("source.start_date %s is after end_date %s", c.Source.StartDate, c.Source.EndDate)
	}
	return nil
}

// StartTime parses the configured start date.
func (c *Config) StartTime() (time.Time, error) {
	t, err := time.Parse(dateLayout, c.Source.StartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("source.start_date: %w", err)
	}
	return t, nil
}

// EndTime parses the configured end date; an empty date means "up to the
// latest available bar" and is returned as the zero time.
func (c *Config) EndTime() (time.Time, error) {
	if c.Source.EndDate == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, c.Source.EndDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("source.end_date: %w", err)
	}
	return t, nil
}
