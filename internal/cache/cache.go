package cache

import (
	"log/slog"
	"regexp"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/alesierraalta/lumocache/config"
	"github.com/alesierraalta/lumocache/internal/cache/model"
	"github.com/alesierraalta/lumocache/internal/eviction"
	"github.com/alesierraalta/lumocache/internal/sizeof"
	pub "github.com/alesierraalta/lumocache/model"
)

type Cacher[V any] interface {
	Get(key string) (V, bool)
	Set(key string, value V, opts ...SetOption)
	Delete(key string) bool
	Clear()
	Has(key string) bool
	Keys() []string
	Values() []V
	Entries() map[string]V
	Len() int
	InvalidateByTags(tags []string) int
	InvalidateByPattern(pattern *regexp.Regexp) int
	Cleanup() int
	Metrics() pub.Metrics
	Stats() pub.Stats
}

type setOptions struct {
	ttl  time.Duration
	tags []string
}

type SetOption func(*setOptions)

// WithTTL overrides the configured default TTL for a single Set call.
func WithTTL(ttl time.Duration) SetOption {
	return func(o *setOptions) { o.ttl = ttl }
}

// WithTags attaches invalidation tags to the entry.
func WithTags(tags ...string) SetOption {
	return func(o *setOptions) { o.tags = tags }
}

// Manager is a bounded, TTL-aware key-value cache with a pluggable eviction
// policy. One mutex serializes every operation, so within one instance a Set
// is always visible to the Get that follows it.
type Manager[V any] struct {
	mu        sync.Mutex
	cfg       *config.Config
	logger    *slog.Logger
	clk       clock.Clock
	policy    eviction.Policy
	items     map[string]*model.Entry[V]
	counters  *counters
	totalSize int64
}

func New[V any](cfg *config.Config, logger *slog.Logger, clk clock.Clock) (*Manager[V], error) {
	policy, err := eviction.New(cfg.Cache.Strategy)
	if err != nil {
		return nil, err
	}
	return &Manager[V]{
		cfg:      cfg,
		logger:   logger,
		clk:      clk,
		policy:   policy,
		items:    make(map[string]*model.Entry[V]),
		counters: newCounters(),
	}, nil
}

// Get returns the live value stored under key. An absent or expired entry is
// a miss; expired entries are removed on the way out (lazy expiry).
func (m *Manager[V]) Get(key string) (value V, ok bool) {
	start := time.Now()
	defer func() { m.counters.recordAccess(time.Since(start)) }()

	m.mu.Lock()
	defer m.mu.Unlock()

	entry, found := m.items[key]
	if !found {
		m.counters.misses.Add(1)
		return value, false
	}
	if entry.IsExpired(m.clk.Now()) {
		// expiry removal, not an eviction
		m.removeLocked(entry)
		m.counters.misses.Add(1)
		return value, false
	}

	entry.Touch(m.clk.Now())
	m.policy.OnAccess(key)
	m.counters.hits.Add(1)
	return entry.Value(), true
}

// Set stores value under key. At capacity an eviction pass runs first, so the
// entry count never exceeds the configured maximum. Overwriting an existing
// key replaces the entry entirely, it is not an in-place mutation.
func (m *Manager[V]) Set(key string, value V, opts ...SetOption) {
	o := setOptions{ttl: m.cfg.Cache.DefaultTTL}
	for _, opt := range opts {
		opt(&o)
	}

	weight, estimated := sizeof.Estimate(value)
	if !estimated {
		m.logger.Warn("payload size estimation failed, using default weight", "key", key)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.items) >= m.cfg.Cache.MaxSize {
		m.evictLocked()
	}
	if old, found := m.items[key]; found {
		m.removeLocked(old)
	}

	entry := model.NewEntry(key, value, o.ttl, o.tags, weight, m.clk.Now())
	m.items[key] = entry
	m.totalSize += entry.Weight()
	m.policy.OnInsert(key)
}

func (m *Manager[V]) Delete(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, found := m.items[key]
	if !found {
		return false
	}
	m.removeLocked(entry)
	return true
}

// Clear drops all entries and policy bookkeeping. Cumulative hit, miss and
// eviction counters survive as historical metrics.
func (m *Manager[V]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = make(map[string]*model.Entry[V])
	m.policy.Reset()
	m.totalSize = 0
}

// Has reports whether key holds a live entry. Unlike Get it mutates no
// counters and no recency bookkeeping.
func (m *Manager[V]) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, found := m.items[key]
	return found && !entry.IsExpired(m.clk.Now())
}

func (m *Manager[V]) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clk.Now()
	keys := make([]string, 0, len(m.items))
	for key, entry := range m.items {
		if !entry.IsExpired(now) {
			keys = append(keys, key)
		}
	}
	return keys
}

func (m *Manager[V]) Values() []V {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clk.Now()
	values := make([]V, 0, len(m.items))
	for _, entry := range m.items {
		if !entry.IsExpired(now) {
			values = append(values, entry.Value())
		}
	}
	return values
}

func (m *Manager[V]) Entries() map[string]V {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clk.Now()
	entries := make(map[string]V, len(m.items))
	for key, entry := range m.items {
		if !entry.IsExpired(now) {
			entries[key] = entry.Value()
		}
	}
	return entries
}

func (m *Manager[V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// InvalidateByTags removes every entry whose tag set intersects tags and
// returns the removed count. Runs in O(entry count).
func (m *Manager[V]) InvalidateByTags(tags []string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for _, entry := range m.items {
		if entry.HasAnyTag(tags) {
			m.removeLocked(entry)
			removed++
		}
	}
	return removed
}

// InvalidateByPattern removes every entry whose key matches pattern and
// returns the removed count.
func (m *Manager[V]) InvalidateByPattern(pattern *regexp.Regexp) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for key, entry := range m.items {
		if pattern.MatchString(key) {
			m.removeLocked(entry)
			removed++
		}
	}
	return removed
}

// Cleanup sweeps the whole cache and deletes entries past their TTL,
// returning the removed count. Lazy expiry keeps reads correct without it;
// Cleanup exists purely to reclaim memory and is meant to be driven by an
// external scheduler.
func (m *Manager[V]) Cleanup() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clk.Now()
	removed := 0
	for _, entry := range m.items {
		if entry.IsExpired(now) {
			m.removeLocked(entry)
			removed++
		}
	}
	return removed
}

func (m *Manager[V]) Metrics() pub.Metrics {
	hits, misses, evictions, accessNanos := m.counters.snapshot()

	m.mu.Lock()
	entryCount := len(m.items)
	totalSize := m.totalSize
	m.mu.Unlock()

	metrics := pub.Metrics{
		Hits:       hits,
		Misses:     misses,
		Evictions:  evictions,
		EntryCount: entryCount,
		TotalSize:  totalSize,
	}
	if calls := hits + misses; calls > 0 {
		metrics.HitRate = float64(hits) / float64(calls)
		metrics.AverageAccessTime = time.Duration(accessNanos / calls)
	}
	return metrics
}

/**
 * Private API.
 */

// removeLocked - is unsafe without m.mu due to it mutates the map and policy.
func (m *Manager[V]) removeLocked(entry *model.Entry[V]) {
	delete(m.items, entry.Key())
	m.totalSize -= entry.Weight()
	m.policy.OnRemove(entry.Key())
}

// evictLocked removes one eviction batch according to the configured
// strategy. It runs before an insert would exceed capacity, never after.
func (m *Manager[V]) evictLocked() {
	for _, key := range m.policy.Victims(m.cfg.Cache.EvictionBatch) {
		if entry, found := m.items[key]; found {
			delete(m.items, key)
			m.totalSize -= entry.Weight()
			m.counters.evictions.Add(1)
		}
	}
}
