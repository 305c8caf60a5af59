package model

import "time"

// Metrics is a point-in-time snapshot of cache counters.
type Metrics struct {
	Hits   int64
	Misses int64

	// HitRate is Hits / (Hits + Misses), 0 while the cache saw no reads.
	HitRate float64

	// TotalSize is the estimated byte size of all live entries.
	TotalSize int64

	EntryCount int

	// Evictions counts entries removed by the eviction pass. Removals caused
	// by Delete, Clear, TTL expiry or invalidation are not included.
	Evictions int64

	// AverageAccessTime is the running mean wall-clock duration of a Get call.
	AverageAccessTime time.Duration
}
