// Package config loads carbonlens settings from $CARBONLENS_HOME/config.yaml,
// a .env file and CARBONLENS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Output formats understood by the report renderers.
const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
)

// Defaults applied by New before the config file and environment.
const (
	defaultServerAddr   = ":8080"
	defaultChartWidth   = 6.0
	defaultChartHeight  = 4.0
	defaultLogLevel     = "info"
	defaultLogFormat    = "console"
	configFileName      = "config.yaml"
	defaultHomeDirName  = ".carbonlens"
	outputTypeFile      = "file"
	defaultBatchWorkers = 4
)

// Environment variables that override file settings.
const (
	EnvHome             = "CARBONLENS_HOME"
	EnvOutputFormat     = "CARBONLENS_OUTPUT_FORMAT"
	EnvOutputDir        = "CARBONLENS_OUTPUT_DIR"
	EnvServerAddr       = "CARBONLENS_SERVER_ADDR"
	EnvBatchConcurrency = "CARBONLENS_BATCH_CONCURRENCY"
	EnvLogLevel         = "CARBONLENS_LOG_LEVEL"
	EnvLogFormat        = "CARBONLENS_LOG_FORMAT"
)

// Config is the full carbonlens configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
	Chart   ChartConfig   `yaml:"chart"`
	Batch   BatchConfig   `yaml:"batch"`
}

// OutputConfig controls report rendering and artifact placement.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`

	// Directory receives the PDF and PNG artifacts. Empty means the
	// working directory.
	Directory string `yaml:"directory"`
}

// LoggingConfig mirrors logging.Config in YAML form.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
	Caller bool   `yaml:"caller"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Address string `yaml:"address"`
}

// ChartConfig sets the bar chart canvas size in inches.
type ChartConfig struct {
	WidthInches  float64 `yaml:"width_inches"`
	HeightInches float64 `yaml:"height_inches"`
}

// BatchConfig bounds concurrent assessments in batch mode.
type BatchConfig struct {
	Concurrency int `yaml:"concurrency"`
}

// New returns the configuration with defaults, the user's config file and
// environment overrides applied. Errors reading the file are ignored so a
// broken config never blocks a calculation; use Load to surface them.
func New() *Config {
	cfg, err := Load(DefaultPath())
	if err != nil {
		cfg = Defaults()
		cfg.applyEnv()
	}
	return cfg
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Output:  OutputConfig{DefaultFormat: FormatText},
		Logging: LoggingConfig{Level: defaultLogLevel, Format: defaultLogFormat},
		Server:  ServerConfig{Address: defaultServerAddr},
		Chart:   ChartConfig{WidthInches: defaultChartWidth, HeightInches: defaultChartHeight},
		Batch:   BatchConfig{Concurrency: defaultBatchWorkers},
	}
}

// Load reads path on top of Defaults and applies the environment. A
// missing file is not an error. A .env file in the working directory is
// loaded first; variables already set in the process win.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// defaults only
		case err != nil:
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if err = yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays CARBONLENS_* variables. Malformed numbers are ignored.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvOutputFormat); v != "" {
		c.Output.DefaultFormat = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.Output.Directory = v
	}
	if v := os.Getenv(EnvServerAddr); v != "" {
		c.Server.Address = v
	}
	if v := os.Getenv(EnvBatchConcurrency); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Batch.Concurrency = n
		}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
}

// Validate reports settings the rest of the program cannot honor.
func (c *Config) Validate() error {
	var errs []error

	switch c.Output.DefaultFormat {
	case FormatText, FormatJSON, FormatNDJSON:
	default:
		errs = append(errs, fmt.Errorf("output.default_format %q: must be text, json or ndjson",
			c.Output.DefaultFormat))
	}
	if c.Chart.WidthInches <= 0 || c.Chart.HeightInches <= 0 {
		errs = append(errs, fmt.Errorf("chart size %gx%g: dimensions must be positive",
			c.Chart.WidthInches, c.Chart.HeightInches))
	}
	if c.Batch.Concurrency < 1 {
		errs = append(errs, fmt.Errorf("batch.concurrency %d: must be at least 1", c.Batch.Concurrency))
	}
	if c.Server.Address == "" {
		errs = append(errs, errors.New("server.address must not be empty"))
	}

	return errors.Join(errs...)
}

// Save writes the configuration to path as YAML, creating parent
// directories as needed.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
