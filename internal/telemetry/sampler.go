package telemetry

import (
	"github.com/alesierraalta/lumocache/internal/janitor"
	pub "github.com/alesierraalta/lumocache/model"
)

// MetricsSource is the read-only view of the cache the reporter samples.
type MetricsSource interface {
	Metrics() pub.Metrics
}

type sampler struct {
	cache   MetricsSource
	janitor janitor.Janitor
}

func newSampler(c MetricsSource, j janitor.Janitor) sampler {
	return sampler{cache: c, janitor: j}
}

// snapshot holds cumulative counters (monotonic).
type snapshot struct {
	hits      uint64
	misses    uint64
	evictions uint64

	janScans   uint64
	janHits    uint64
	janRemoved uint64
}

func (s sampler) snapshot() snapshot {
	met := s.cache.Metrics()
	scans, hits, removed := s.janitor.JanitorMetrics()

	return snapshot{
		hits:      uint64(max(met.Hits, 0)),
		misses:    uint64(max(met.Misses, 0)),
		evictions: uint64(max(met.Evictions, 0)),

		janScans:   uint64(max(scans, 0)),
		janHits:    uint64(max(hits, 0)),
		janRemoved: uint64(max(removed, 0)),
	}
}

// deltaSnapshot converts cumulative snapshots to per-interval deltas.
// If counters reset (cur < prev), it treats cur as the delta.
func deltaSnapshot(prev, cur snapshot) snapshot {
	return snapshot{
		hits:      delta(prev.hits, cur.hits),
		misses:    delta(prev.misses, cur.misses),
		evictions: delta(prev.evictions, cur.evictions),

		janScans:   delta(prev.janScans, cur.janScans),
		janHits:    delta(prev.janHits, cur.janHits),
		janRemoved: delta(prev.janRemoved, cur.janRemoved),
	}
}

func delta(prev, cur uint64) uint64 {
	if cur >= prev {
		return cur - prev
	}
	return cur
}
