package help

import (
	"time"

	"github.com/alesierraalta/lumocache/config"
)

func Cfg() *config.Config {
	c := &config.Config{
		Cache: config.CacheCfg{
			MaxSize:    1000,
			DefaultTTL: time.Minute * 5,
			Strategy:   config.StrategyLRU,
		},
		Janitor: &config.JanitorCfg{
			CallsPerSec: 5,
		},
		Telemetry: &config.TelemetryCfg{
			LogsInterval: time.Second * 5,
		},
	}
	c.Adjust()
	return c
}

// SmallCfg keeps the cache tiny so evictions show up after a handful of writes.
func SmallCfg(maxSize int, strategy config.Strategy) *config.Config {
	c := Cfg()
	c.Cache.MaxSize = maxSize
	c.Cache.Strategy = strategy
	c.Janitor = nil
	c.Telemetry = nil
	c.Adjust()
	return c
}

func JanitorCfg(callsPerSec int64) *config.Config {
	c := Cfg()
	c.Janitor = &config.JanitorCfg{CallsPerSec: callsPerSec}
	c.Telemetry = nil
	return c
}
