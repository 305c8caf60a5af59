package config

import "time"

// Strategy selects which entries are sacrificed during an eviction pass.
type Strategy string

const (
	// StrategyLRU evicts the least recently accessed entries first.
	StrategyLRU Strategy = "lru"

	// StrategyLFU evicts the entries with the lowest cumulative access count first.
	StrategyLFU Strategy = "lfu"

	// StrategyFIFO evicts the oldest entries first, regardless of access pattern.
	StrategyFIFO Strategy = "fifo"
)

// evictionShare defines the fraction of capacity removed by a single eviction pass.
const evictionShare = 0.1

type CacheCfg struct {
	// MaxSize is the entry capacity of the cache. When an insert finds the
	// cache at capacity, an eviction pass removes EvictionBatch entries first,
	// so MaxSize is never exceeded.
	MaxSize int `yaml:"max_size"`

	// DefaultTTL is the lifetime applied when Set omits an explicit TTL.
	// Zero means entries never expire by age.
	// Example: "5m".
	DefaultTTL time.Duration `yaml:"default_ttl"`

	// Strategy defines the eviction policy.
	// Supported values:
	//   - "lru":  evict by recency of access
	//   - "lfu":  evict by frequency of access
	//   - "fifo": evict by insertion order
	Strategy Strategy `yaml:"strategy"`

	// EvictionBatch is derived during initialization from MaxSize.
	// It is not read from YAML.
	EvictionBatch int // virtual: computed during init
}
