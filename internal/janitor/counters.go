package janitor

import "sync/atomic"

type janitorCounters struct {
	scans    atomic.Int64 // total sweep cycles
	scanHits atomic.Int64 // sweeps that removed at least one entry
	removed  atomic.Int64 // total entries removed by sweeps
}

func newJanitorCounters() *janitorCounters {
	return &janitorCounters{
		scans:    atomic.Int64{},
		scanHits: atomic.Int64{},
		removed:  atomic.Int64{},
	}
}

func (c *janitorCounters) snapshot() (scans, hits, removed int64) {
	return c.scans.Load(), c.scanHits.Load(), c.removed.Load()
}
