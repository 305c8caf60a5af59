// Package sizeof estimates the in-memory footprint of cached payloads.
//
// The estimate is a serialized-length heuristic used only for reporting:
// eviction decisions are strategy-based, never size-based, so a cache that
// must bound memory has to be sized by entry count.
package sizeof

import "encoding/json"

// DefaultWeight substitutes for values that cannot be serialized
// (cyclic structures, channels, functions).
const DefaultWeight = 100

// Estimate returns an approximate byte size of v: twice the length of its
// JSON encoding. When encoding fails it degrades to DefaultWeight and
// reports ok=false so the caller can log the fallback. It never panics.
func Estimate(v any) (weight int64, ok bool) {
	data, err := json.Marshal(v)
	if err != nil {
		return DefaultWeight, false
	}
	return int64(len(data)) * 2, true
}
