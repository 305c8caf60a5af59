package model

import "time"

// Entry is a single cached value with its bookkeeping metadata.
// Entries are owned by a single manager and mutated under its lock.
type Entry[V any] struct {
	key         string
	value       V
	createdAt   int64 // unix millis
	ttl         int64 // millis, 0 => never expires by age
	accessCount int64
	touchedAt   int64 // unix millis of the most recent hit
	weight      int64 // estimated payload size in bytes
	tags        []string
}

func NewEntry[V any](key string, value V, ttl time.Duration, tags []string, weight int64, now time.Time) *Entry[V] {
	created := now.UnixMilli()
	return &Entry[V]{
		key:       key,
		value:     value,
		createdAt: created,
		ttl:       ttl.Milliseconds(),
		touchedAt: created,
		weight:    weight,
		tags:      tags,
	}
}

func (e *Entry[V]) Key() string        { return e.key }
func (e *Entry[V]) Value() V           { return e.value }
func (e *Entry[V]) Weight() int64      { return e.weight }
func (e *Entry[V]) Tags() []string     { return e.tags }
func (e *Entry[V]) AccessCount() int64 { return e.accessCount }
func (e *Entry[V]) CreatedAt() int64   { return e.createdAt }
func (e *Entry[V]) TouchedAt() int64   { return e.touchedAt }

func (e *Entry[V]) TTL() time.Duration {
	return time.Duration(e.ttl) * time.Millisecond
}

// IsExpired checks that elapsed time since creation is greater than TTL.
func (e *Entry[V]) IsExpired(now time.Time) bool {
	if e == nil || e.ttl == 0 {
		return false
	}
	return now.UnixMilli()-e.createdAt > e.ttl
}

// Touch records a successful read.
func (e *Entry[V]) Touch(now time.Time) {
	e.accessCount++
	e.touchedAt = now.UnixMilli()
}

// HasAnyTag reports whether the entry carries at least one of the given tags.
func (e *Entry[V]) HasAnyTag(tags []string) bool {
	if len(e.tags) == 0 || len(tags) == 0 {
		return false
	}
	for _, want := range tags {
		for _, have := range e.tags {
			if want == have {
				return true
			}
		}
	}
	return false
}
