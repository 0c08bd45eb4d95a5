// Package config loads valveplan settings from an optional YAML file and
// VALVEPLAN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/valveplan/internal/logging"
)

// envPrefix is the environment variable prefix; nested keys map "." to "_",
// so "log.level" resolves to VALVEPLAN_LOG_LEVEL.
const envPrefix = "VALVEPLAN"

// Defaults for an unconfigured run.
const (
	DefaultStart      = "AA"
	DefaultBudget     = 30
	DefaultDualBudget = 26
)

var (
	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("config: invalid configuration")
)

// Config is the complete runtime configuration.
type Config struct {
	// Input is the listing path; empty means stdin.
	Input string `mapstructure:"input"`

	// Start is the location both agents begin at.
	Start string `mapstructure:"start"`

	// Budget is the single-agent time budget.
	Budget int `mapstructure:"budget"`

	// DualBudget is the reduced budget each of the two agents receives.
	DualBudget int `mapstructure:"dual_budget"`

	// Workers bounds parallel searches in multi-start runs.
	Workers int `mapstructure:"workers"`

	Log logging.Config `mapstructure:"log"`

	Metrics MetricsConfig `mapstructure:"metrics"`
}

// MetricsConfig controls the Prometheus text dump.
type MetricsConfig struct {
	// File receives the metrics in text exposition format after a run; empty disables it.
	File string `mapstructure:"file"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Registering every key as a default makes it visible to Unmarshal
	// when it is set only in the environment.
	v.SetDefault("input", "")
	v.SetDefault("start", DefaultStart)
	v.SetDefault("budget", DefaultBudget)
	v.SetDefault("dual_budget", DefaultDualBudget)
	v.SetDefault("workers", runtime.GOMAXPROCS(0))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output_paths", []string{"stderr"})
	v.SetDefault("metrics.file", "")

	return v
}

// Load reads the YAML file at path, applies VALVEPLAN_* overrides and
// defaults, and validates the result. An empty path loads from the
// environment only.
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %q: %w", path, err)
		}
	}

	return finalize(v)
}

// LoadFromEnv builds a Config from defaults and the environment alone.
func LoadFromEnv() (*Config, error) {
	return Load("")
}

// Default returns the configuration of an empty environment without reading it.
func Default() *Config {
	return &Config{
		Start:      DefaultStart,
		Budget:     DefaultBudget,
		DualBudget: DefaultDualBudget,
		Workers:    runtime.GOMAXPROCS(0),
		Log:        logging.Config{Level: "info", Format: "console", OutputPaths: []string{"stderr"}},
	}
}

func finalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports the first invalid field, wrapped in ErrInvalid.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Start) == "":
		return fmt.Errorf("%w: start must not be empty", ErrInvalid)
	case c.Budget < 0:
		return fmt.Errorf("%w: budget %d is negative", ErrInvalid, c.Budget)
	case c.DualBudget < 0:
		return fmt.Errorf("%w: dual_budget %d is negative", ErrInvalid, c.DualBudget)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be at least 1", ErrInvalid)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w: log.format %q (want console or json)", ErrInvalid, c.Log.Format)
	}

	return nil
}
