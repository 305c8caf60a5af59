package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.yaml")
	yml := `
cache:
  max_size: 1000
  default_ttl: 5m
  strategy: lfu
janitor:
  calls_per_sec: 2
telemetry:
  logs_interval: 5s
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1000, cfg.Cache.MaxSize)
	require.Equal(t, 5*time.Minute, cfg.Cache.DefaultTTL)
	require.Equal(t, StrategyLFU, cfg.Cache.Strategy)
	require.Equal(t, 100, cfg.Cache.EvictionBatch)
	require.True(t, cfg.Janitor.Enabled())
	require.Equal(t, int64(2), cfg.Janitor.CallsPerSec)
	require.True(t, cfg.Telemetry.Enabled())
	require.Equal(t, 5*time.Second, cfg.Telemetry.LogsInterval)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadMalformedYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cache: [not a map"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestOmittedSectionsAreDisabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.yaml")
	yml := `
cache:
  max_size: 10
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.False(t, cfg.Janitor.Enabled())
	require.False(t, cfg.Telemetry.Enabled())
}

func TestAdjust(t *testing.T) {
	tests := []struct {
		name      string
		maxSize   int
		wantBatch int
	}{
		{"large capacity", 1000, 100},
		{"odd capacity rounds up", 15, 2},
		{"tiny capacity clamps to one", 3, 1},
		{"single slot", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Cache: CacheCfg{MaxSize: tt.maxSize}}
			cfg.Adjust()
			require.Equal(t, tt.wantBatch, cfg.Cache.EvictionBatch)
			require.Equal(t, StrategyLRU, cfg.Cache.Strategy)
		})
	}
}

func TestAdjustKeepsExplicitStrategy(t *testing.T) {
	cfg := &Config{Cache: CacheCfg{MaxSize: 10, Strategy: StrategyFIFO}}
	cfg.Adjust()
	require.Equal(t, StrategyFIFO, cfg.Cache.Strategy)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{Cache: CacheCfg{MaxSize: 10, DefaultTTL: time.Minute}}
		cfg.Adjust()
		return cfg
	}

	require.NoError(t, valid().Validate())

	cfg := valid()
	cfg.Cache.MaxSize = 0
	require.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Cache.DefaultTTL = -time.Second
	require.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Cache.Strategy = "ttl"
	require.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Janitor = &JanitorCfg{CallsPerSec: 0}
	require.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Telemetry = &TelemetryCfg{}
	require.Error(t, cfg.Validate())
}
