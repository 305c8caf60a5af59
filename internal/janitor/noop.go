package janitor

// NoOpJanitor is a no-op implementation of Janitor.
// It performs no sweeps and reports zero metrics.
type NoOpJanitor struct{}

// JanitorMetrics always returns zero values.
func (NoOpJanitor) JanitorMetrics() (scans, hits, removed int64) {
	return 0, 0, 0
}

// Close does nothing and returns nil.
func (NoOpJanitor) Close() error {
	return nil
}
