// SPDX-License-Identifier: MIT

// Package config loads the sparsesim CLI configuration from YAML.
package config

import (
	"fmt"
	"math"
	"os"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sparsesim/similarity"
)

// Config is the top-level configuration.
type Config struct {
	Engine EngineConfig `yaml:"engine"`
	Log    LogConfig    `yaml:"log"`
}

// EngineConfig holds the similarity engine defaults. CLI flags override them.
type EngineConfig struct {
	Workers    int     `yaml:"workers"`     // 0 = GOMAXPROCS
	ChunkSize  int     `yaml:"chunk_size"`  // 0 = automatic
	MinScore   float64 `yaml:"min_score"`
	MaxResults int     `yaml:"max_results"` // 0 = unbounded
	Metric     string  `yaml:"metric"`
	Kernel     string  `yaml:"kernel"`
	TimeoutRaw string  `yaml:"timeout"` // empty or "0" = no timeout
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Timeout returns the parsed engine timeout; 0 means none.
func (e EngineConfig) Timeout() (time.Duration, error) {
	if e.TimeoutRaw == "" {
		return 0, nil
	}
	return time.ParseDuration(e.TimeoutRaw)
}

// Options translates the engine settings into similarity options.
// It expects a validated config.
func (e EngineConfig) Options() []similarity.Option {
	var opts []similarity.Option
	if e.Workers > 0 {
		opts = append(opts, similarity.WithWorkers(e.Workers))
	}
	opts = append(opts, similarity.WithChunkSize(e.ChunkSize))
	if m, ok := similarity.MetricByName(e.Metric); ok {
		opts = append(opts, similarity.WithMetric(m))
	}
	if k, ok := similarity.ParseKernel(e.Kernel); ok {
		opts = append(opts, similarity.WithKernel(k))
	}
	return opts
}

// expandEnv substitutes $NAME and ${NAME} references with environment
// values. Every unset name is reported in a single error.
func expandEnv(data []byte) ([]byte, error) {
	var unset []string
	out := os.Expand(string(data), func(name string) string {
		v, ok := os.LookupEnv(name)
		if !ok && !slices.Contains(unset, name) {
			unset = append(unset, name)
		}
		return v
	})
	if len(unset) > 0 {
		return nil, fmt.Errorf("config: unset environment variables: %s", strings.Join(unset, ", "))
	}
	return []byte(out), nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{Metric: "cosine", Kernel: "auto"},
		Log:    LogConfig{Level: "info", Format: "console"},
	}
}

// Load reads the YAML file at path. An empty path yields Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of Default(), after environment expansion, and
// validates the result. Keys absent from data keep their default value.
func Parse(data []byte) (*Config, error) {
	data, err := expandEnv(data)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Validate reports the first invalid setting. CLI flag overrides are
// validated again through it before use.
func (c *Config) Validate() error {
	e := c.Engine
	if e.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", e.Workers)
	}
	if e.ChunkSize < 0 {
		return fmt.Errorf("chunk_size must be >= 0, got %d", e.ChunkSize)
	}
	if e.MaxResults < 0 {
		return fmt.Errorf("max_results must be >= 0, got %d", e.MaxResults)
	}
	if math.IsNaN(e.MinScore) {
		return fmt.Errorf("min_score must be a number")
	}
	if _, ok := similarity.MetricByName(e.Metric); !ok {
		return fmt.Errorf("unsupported metric: %s", e.Metric)
	}
	if _, ok := similarity.ParseKernel(e.Kernel); !ok {
		return fmt.Errorf("unsupported kernel: %s", e.Kernel)
	}
	if d, err := e.Timeout(); err != nil {
		return fmt.Errorf("invalid timeout %q: %w", e.TimeoutRaw, err)
	} else if d < 0 {
		return fmt.Errorf("timeout must be >= 0, got %s", d)
	}

	validLevels := map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true, "disabled": true}
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("unsupported log level: %s", c.Log.Level)
	}
	validFormats := map[string]bool{"console": true, "json": true}
	if !validFormats[c.Log.Format] {
		return fmt.Errorf("unsupported log format: %s", c.Log.Format)
	}

	return nil
}
