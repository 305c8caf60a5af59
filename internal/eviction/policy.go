// Package eviction implements the interchangeable victim-selection policies
// used by the cache manager when it reaches capacity.
package eviction

import (
	"fmt"

	"github.com/alesierraalta/lumocache/config"
)

// Policy tracks per-key order/frequency bookkeeping and picks eviction
// victims. Implementations are not safe for concurrent use; the owning
// manager serializes all calls under its lock.
type Policy interface {
	// OnInsert is called after a key is inserted into the cache.
	OnInsert(key string)

	// OnAccess is called on every successful read of a key.
	OnAccess(key string)

	// OnRemove is called when a key leaves the cache for any reason.
	OnRemove(key string)

	// Victims returns up to n keys to evict, most sacrificial first, and
	// drops them from the policy's own bookkeeping.
	Victims(n int) []string

	// Reset drops all bookkeeping.
	Reset()
}

func New(strategy config.Strategy) (Policy, error) {
	switch strategy {
	case config.StrategyLRU:
		return newLRU(), nil
	case config.StrategyLFU:
		return newLFU(), nil
	case config.StrategyFIFO:
		return newFIFO(), nil
	default:
		return nil, fmt.Errorf("unknown eviction strategy %q", strategy)
	}
}
