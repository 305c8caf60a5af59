package cache

import (
	"sort"

	pub "github.com/alesierraalta/lumocache/model"
)

const topKeysLimit = 10

// Stats returns the metrics snapshot extended with a top-accessed key list
// and a tag frequency histogram for operational introspection.
func (m *Manager[V]) Stats() pub.Stats {
	stats := pub.Stats{
		Metrics:   m.Metrics(),
		TagCounts: make(map[string]int64),
	}

	m.mu.Lock()
	top := make([]pub.KeyAccess, 0, len(m.items))
	for key, entry := range m.items {
		top = append(top, pub.KeyAccess{Key: key, AccessCount: entry.AccessCount()})
		for _, tag := range entry.Tags() {
			stats.TagCounts[tag]++
		}
	}
	m.mu.Unlock()

	sort.Slice(top, func(i, j int) bool {
		if top[i].AccessCount != top[j].AccessCount {
			return top[i].AccessCount > top[j].AccessCount
		}
		return top[i].Key < top[j].Key
	})
	if len(top) > topKeysLimit {
		top = top[:topKeysLimit]
	}
	stats.TopKeys = top

	return stats
}
