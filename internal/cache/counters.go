package cache

import (
	"sync/atomic"
	"time"
)

type counters struct {
	hits        atomic.Int64
	misses      atomic.Int64
	evictions   atomic.Int64
	accessNanos atomic.Int64 // cumulative wall time spent inside Get
}

func newCounters() *counters {
	return &counters{
		hits:        atomic.Int64{},
		misses:      atomic.Int64{},
		evictions:   atomic.Int64{},
		accessNanos: atomic.Int64{},
	}
}

func (c *counters) recordAccess(d time.Duration) {
	c.accessNanos.Add(d.Nanoseconds())
}

func (c *counters) snapshot() (hits, misses, evictions, accessNanos int64) {
	return c.hits.Load(), c.misses.Load(), c.evictions.Load(), c.accessNanos.Load()
}
