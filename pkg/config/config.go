package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"VitalSampler/internal/services/sampling"
	"VitalSampler/pkg/util"
	"VitalSampler/pkg/validate"
)

type Config struct {
	Environment string `yaml:"environment" default:"development" validate:"required"`
	Logger      struct {
		Level      string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
		Format     string `yaml:"format" default:"console" validate:"oneof=json console"`
		Output     string `yaml:"output" default:"stderr" validate:"required"`
		TimeFormat string `yaml:"time_format"`
	} `yaml:"logger"`
	Sampling struct {
		// nil means unset; an explicit 0 is kept so it can be rejected
		IntervalMinutes *int `yaml:"interval_minutes"`
		InPlaceSort     bool `yaml:"in_place_sort"`
	} `yaml:"sampling"`
	Report struct {
		Format string `yaml:"format" default:"text" validate:"oneof=text yaml"`
	} `yaml:"report"`
	Metrics struct {
		Enabled   bool   `yaml:"enabled"`
		Namespace string `yaml:"namespace" default:"vitalsampler" validate:"required"`
	} `yaml:"metrics"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	var c Config
	if err := c.Validate(); err != nil {
		panic(fmt.Sprintf("default config invalid: %v", err))
	}
	return &c
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(b)
}

// Parse decodes YAML, fills defaults and validates the result.
func Parse(b []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
// An empty path starts from Default.
func LoadWithEnv(path string) (*Config, error) {
	var (
		c   *Config
		err error
	)
	if path == "" {
		c = Default()
	} else if c, err = Load(path); err != nil {
		return nil, err
	}

	if v := os.Getenv("SAMPLER_ENV"); v != "" {
		c.Environment = v
	}
	if v := os.Getenv("SAMPLER_INTERVAL_MIN"); v != "" {
		c.SetIntervalMinutes(util.ParseIntDefault(v, c.IntervalMinutes()))
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logger.Level = strings.ToLower(v)
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.Logger.Format = strings.ToLower(v)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}

// Validate fills defaults and checks the configuration.
func (c *Config) Validate() error {
	if c.Sampling.IntervalMinutes == nil {
		c.SetIntervalMinutes(sampling.DefaultIntervalMinutes)
	}
	if err := validate.Struct(c); err != nil {
		return err
	}
	if err := sampling.ValidateInterval(*c.Sampling.IntervalMinutes); err != nil {
		return fmt.Errorf("sampling.interval_minutes: %w", err)
	}
	return nil
}

// IntervalMinutes returns the configured bucket width, or the default
// when it has not been set yet.
func (c *Config) IntervalMinutes() int {
	if c.Sampling.IntervalMinutes == nil {
		return sampling.DefaultIntervalMinutes
	}
	return *c.Sampling.IntervalMinutes
}

// SetIntervalMinutes overrides the bucket width.
func (c *Config) SetIntervalMinutes(minutes int) {
	c.Sampling.IntervalMinutes = &minutes
}
