// Package config loads the harness configuration: an optional YAML file
// followed by GREEDY_* environment overrides.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvgreedy/knapsack"
	"github.com/katalvlaran/lvgreedy/partition"
	"github.com/katalvlaran/lvgreedy/scenario"
)

// ErrInvalid marks a configuration that loaded but cannot be used.
var ErrInvalid = errors.New("config: invalid configuration")

// Config covers every knob of the CLI and the reporting harness.
type Config struct {
	Environment string `yaml:"environment"`
	ScenarioDir string `yaml:"scenario_dir"`

	// Precision is the number of decimals kept in allocator totals.
	Precision int `yaml:"precision"`
	// Strategy names the partition strategy ("first-fit" or "free-list").
	Strategy string `yaml:"strategy"`

	Generator scenario.Options `yaml:"generator"`
}

// Default returns the configuration used when no file and no environment
// overrides are present.
func Default() *Config {
	return &Config{
		Environment: "production",
		ScenarioDir: "scenarios",
		Precision:   knapsack.DefaultPrecision,
		Strategy:    partition.FirstFit.String(),
		Generator:   scenario.DefaultOptions(),
	}
}

// Load builds a Config from defaults, the YAML document at location (skipped
// when location is empty) and the environment, in that order.
func Load(ctx context.Context, location string) (*Config, error) {
	cfg := Default()

	if location != "" {
		data, err := afs.New().DownloadWithURL(ctx, location)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", location, err)
		}
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", location, err)
		}
	}

	cfg.Environment = getEnv("GREEDY_ENV", cfg.Environment)
	cfg.ScenarioDir = getEnv("GREEDY_SCENARIO_DIR", cfg.ScenarioDir)
	cfg.Precision = getEnvInt("GREEDY_PRECISION", cfg.Precision)
	cfg.Strategy = getEnv("GREEDY_PARTITION_STRATEGY", cfg.Strategy)
	cfg.Generator.Seed = getEnvInt64("GREEDY_SEED", cfg.Generator.Seed)
	cfg.Generator.TruckLoading.Capacity = getEnvInt("GREEDY_TRUCK_CAPACITY", cfg.Generator.TruckLoading.Capacity)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the fields the optimizers would otherwise panic or fail on.
func (c *Config) Validate() error {
	if c.Precision < 0 || c.Precision > knapsack.MaxPrecision {
		return fmt.Errorf("%w: precision=%d", ErrInvalid, c.Precision)
	}
	if _, err := partition.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: strategy %q", ErrInvalid, c.Strategy)
	}
	if c.ScenarioDir == "" {
		return fmt.Errorf("%w: scenario_dir is empty", ErrInvalid)
	}

	return nil
}

// PartitionStrategy returns the parsed Strategy; Validate guarantees success.
func (c *Config) PartitionStrategy() partition.Strategy {
	s, _ := partition.ParseStrategy(c.Strategy)

	return s
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}

	return def
}

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}

	return def
}
