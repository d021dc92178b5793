// SPDX-License-Identifier: MIT

// Package config loads the YAML run configuration of the almanac command.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stagemap/almanac"
	"github.com/katalvlaran/stagemap/pipeline"
)

// DefaultPath is the config file looked up in the working directory when
// none is named.
const DefaultPath = "stagemap.yaml"

// Environment overrides, applied after the file is read.
const (
	EnvLogLevel = "STAGEMAP_LOG_LEVEL"
	EnvWorkers  = "STAGEMAP_WORKERS"
)

// ErrInvalid marks a configuration that failed Validate.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds all run settings.
type Config struct {
	// Seeds controls how the seed line is read.
	Seeds SeedsConfig `yaml:"seeds"`

	// Pipeline tunes the runner.
	Pipeline PipelineConfig `yaml:"pipeline"`

	// Logging configures the zap logger.
	Logging LoggingConfig `yaml:"logging"`
}

// SeedsConfig selects the seed-line reading.
type SeedsConfig struct {
	Mode string `yaml:"mode"` // values, ranges
}

// PipelineConfig mirrors the pipeline.Option knobs.
type PipelineConfig struct {
	Strategy        string   `yaml:"strategy"` // auto, interval, scalar
	Workers         int      `yaml:"workers"`  // 0 = GOMAXPROCS
	ScalarThreshold uint64   `yaml:"scalar_threshold"`
	Coalesce        bool     `yaml:"coalesce"`
	Stages          []string `yaml:"stages"` // empty = block order of the almanac
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	Level    string `yaml:"level"`    // debug, info, warn, error
	Encoding string `yaml:"encoding"` // json, console
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Seeds: SeedsConfig{Mode: almanac.SeedRanges.String()},
		Pipeline: PipelineConfig{
			Strategy:        pipeline.StrategyAuto.String(),
			Workers:         pipeline.DefaultWorkers,
			ScalarThreshold: pipeline.DefaultScalarThreshold,
			Coalesce:        pipeline.DefaultCoalesce,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Encoding: "console",
		},
	}
}

// Load reads path over the defaults, then applies environment overrides.
// An empty path or a missing file yields the defaults, so Load suits an
// implicit location such as DefaultPath. The result is not validated; call
// Validate.
func Load(path string) (*Config, error) {
	return load(path, false)
}

// LoadFile is Load for a path the user named explicitly: a missing file is
// an error wrapping os.ErrNotExist instead of a silent fallback.
func LoadFile(path string) (*Config, error) {
	return load(path, true)
}

func load(path string, required bool) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist) && !required:
			// defaults
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		c.Logging.Level = lvl
	}
	if w := os.Getenv(EnvWorkers); w != "" {
		n, err := strconv.Atoi(w)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvWorkers, w, err)
		}
		c.Pipeline.Workers = n
	}

	return nil
}

// Validate checks every field that has a closed set of values.
func (c *Config) Validate() error {
	if _, err := c.SeedMode(); err != nil {
		return fmt.Errorf("%w: seeds.mode: %v", ErrInvalid, err)
	}
	if _, err := c.Strategy(); err != nil {
		return fmt.Errorf("%w: pipeline.strategy: %v", ErrInvalid, err)
	}
	if c.Pipeline.Workers < 0 {
		return fmt.Errorf("%w: pipeline.workers must be >= 0, got %d", ErrInvalid, c.Pipeline.Workers)
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %v", ErrInvalid, err)
	}
	switch c.Logging.Encoding {
	case "json", "console":
	default:
		return fmt.Errorf("%w: logging.encoding must be json or console, got %q", ErrInvalid, c.Logging.Encoding)
	}

	return nil
}

// SeedMode parses Seeds.Mode.
func (c *Config) SeedMode() (almanac.SeedMode, error) {
	return almanac.ParseSeedMode(c.Seeds.Mode)
}

// Strategy parses Pipeline.Strategy.
func (c *Config) Strategy() (pipeline.Strategy, error) {
	return pipeline.ParseStrategy(c.Pipeline.Strategy)
}

// RunnerOptions translates the pipeline section into runner options.
// Call Validate first; a negative worker count would panic here.
func (c *Config) RunnerOptions(logger *zap.Logger) []pipeline.Option {
	return []pipeline.Option{
		pipeline.WithWorkers(c.Pipeline.Workers),
		pipeline.WithScalarThreshold(c.Pipeline.ScalarThreshold),
		pipeline.WithCoalesce(c.Pipeline.Coalesce),
		pipeline.WithLogger(logger),
	}
}

// Logger builds a production zap logger at the configured level and encoding.
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: logging.level: %v", ErrInvalid, err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = c.Logging.Encoding
	if c.Logging.Encoding == "console" {
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger, nil
}
