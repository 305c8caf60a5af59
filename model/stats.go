package model

// KeyAccess pairs a key with its cumulative access count.
type KeyAccess struct {
	Key         string
	AccessCount int64
}

// Stats extends Metrics with operational introspection data.
type Stats struct {
	Metrics

	// TopKeys holds up to ten live keys ordered by descending access count.
	TopKeys []KeyAccess

	// TagCounts maps each tag to the number of live entries carrying it.
	TagCounts map[string]int64
}
