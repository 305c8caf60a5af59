package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config groups configuration of all cache subsystems.
// Optional components can be disabled by setting their section to nil.
type Config struct {
	Cache CacheCfg `yaml:"cache"`

	// Janitor configures the background sweeper that reclaims memory held by
	// expired entries. If nil, only lazy (on-access) expiry runs and stale
	// entries occupy space until the caller invokes Cleanup itself.
	Janitor *JanitorCfg `yaml:"janitor"`

	// Telemetry configures periodic logging of cache counters.
	// If nil, telemetry logs are disabled.
	Telemetry *TelemetryCfg `yaml:"telemetry"`
}

func (cfg *Config) Adjust() {
	if cfg.Cache.Strategy == "" {
		cfg.Cache.Strategy = StrategyLRU
	}

	batch := int(math.Ceil(float64(cfg.Cache.MaxSize) * evictionShare))
	if batch < 1 {
		batch = 1
	}
	cfg.Cache.EvictionBatch = batch
}

func (cfg *Config) Validate() error {
	if cfg.Cache.MaxSize <= 0 {
		return fmt.Errorf("cache max_size must be positive, got %d", cfg.Cache.MaxSize)
	}
	if cfg.Cache.DefaultTTL < 0 {
		return fmt.Errorf("cache default_ttl must not be negative, got %s", cfg.Cache.DefaultTTL)
	}
	switch cfg.Cache.Strategy {
	case StrategyLRU, StrategyLFU, StrategyFIFO:
	default:
		return fmt.Errorf("unknown eviction strategy %q", cfg.Cache.Strategy)
	}
	if cfg.Janitor.Enabled() && cfg.Janitor.CallsPerSec <= 0 {
		return fmt.Errorf("janitor calls_per_sec must be positive, got %d", cfg.Janitor.CallsPerSec)
	}
	if cfg.Telemetry.Enabled() && cfg.Telemetry.LogsInterval <= 0 {
		return fmt.Errorf("telemetry logs_interval must be positive, got %s", cfg.Telemetry.LogsInterval)
	}
	return nil
}

func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config yaml file %s: %w", path, err)
	}

	var cfg *Config
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml from %s: %w", path, err)
	}
	cfg.Adjust()

	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config from %s: %w", path, err)
	}

	return cfg, nil
}
