package tests

import (
	"fmt"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"

	"github.com/alesierraalta/lumocache"
	"github.com/alesierraalta/lumocache/tests/help"
)

func TestJanitorReclaimsExpiredEntries(t *testing.T) {
	mock := clock.NewMock()
	cache, err := lumocache.NewWithClock[string](testContext(t), help.JanitorCfg(50), help.Logger(), mock)
	require.NoError(t, err)
	defer func() { _ = cache.Close() }()

	for i := 0; i < 100; i++ {
		cache.Set(fmt.Sprintf("key-%d", i), "v", lumocache.WithTTL(time.Second))
	}
	require.Equal(t, 100, cache.Len())

	// everything is past its TTL on the cache clock; the janitor paces
	// itself on the wall clock, so give it real time to sweep
	mock.Add(2 * time.Second)

	require.Eventually(t, func() bool {
		return cache.Len() == 0
	}, 5*time.Second, 20*time.Millisecond, "janitor should sweep expired entries")

	scans, hits, removed := cache.JanitorMetrics()
	require.Positive(t, scans)
	require.Positive(t, hits)
	require.Equal(t, int64(100), removed)
}

func TestJanitorLeavesLiveEntriesAlone(t *testing.T) {
	mock := clock.NewMock()
	cache, err := lumocache.NewWithClock[string](testContext(t), help.JanitorCfg(50), help.Logger(), mock)
	require.NoError(t, err)
	defer func() { _ = cache.Close() }()

	cache.Set("live", "v", lumocache.WithTTL(time.Hour))
	cache.Set("dead", "v", lumocache.WithTTL(time.Second))

	mock.Add(2 * time.Second)

	require.Eventually(t, func() bool {
		return cache.Len() == 1
	}, 5*time.Second, 20*time.Millisecond)
	require.True(t, cache.Has("live"))
}

func TestDisabledJanitorNeverSweeps(t *testing.T) {
	mock := clock.NewMock()
	cfg := help.Cfg()
	cfg.Janitor = nil
	cfg.Telemetry = nil

	cache, err := lumocache.NewWithClock[string](testContext(t), cfg, help.Logger(), mock)
	require.NoError(t, err)
	defer func() { _ = cache.Close() }()

	cache.Set("dead", "v", lumocache.WithTTL(time.Second))
	mock.Add(2 * time.Second)

	time.Sleep(200 * time.Millisecond)

	// memory is reclaimed only on access or explicit Cleanup
	require.Equal(t, 1, cache.Len())
	scans, hits, removed := cache.JanitorMetrics()
	require.Zero(t, scans)
	require.Zero(t, hits)
	require.Zero(t, removed)

	require.Equal(t, 1, cache.Cleanup())
	require.Equal(t, 0, cache.Len())
}
