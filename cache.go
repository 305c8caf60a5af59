// Package lumocache wires the cache manager together with its background
// janitor and telemetry reporter and exposes them as one typed cache
// instance.
//
// Instances are constructed explicitly and handed to their consumers; the
// package keeps no global cache, so tests can run isolated instances without
// cross-test pollution. Values are typed per instance: a cache built for
// inventory envelopes holds inventory envelopes, nothing else.
package lumocache

import (
	"context"
	"io"
	"log/slog"
	"net/url"

	"github.com/benbjohnson/clock"

	"github.com/alesierraalta/lumocache/config"
	"github.com/alesierraalta/lumocache/internal/cache"
	"github.com/alesierraalta/lumocache/internal/janitor"
	"github.com/alesierraalta/lumocache/internal/keygen"
	"github.com/alesierraalta/lumocache/internal/telemetry"
)

// SetOption configures a single Set call.
type SetOption = cache.SetOption

var (
	WithTTL  = cache.WithTTL
	WithTags = cache.WithTags
)

// Fingerprint builds the canonicalized request-fingerprint key callers use
// to address cached query results: identical parameters produce identical
// keys regardless of their order.
func Fingerprint(entity string, params url.Values) string {
	return keygen.Fingerprint(entity, params)
}

type LumoCache[V any] interface {
	cache.Cacher[V]
	janitor.Janitor
	telemetry.Logger
	io.Closer
}

type Cache[V any] struct {
	cache.Cacher[V]
	janitor.Janitor
	telemetry.Logger
	cls context.CancelFunc
}

func New[V any](ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Cache[V], error) {
	return NewWithClock[V](ctx, cfg, logger, clock.New())
}

// NewWithClock is New with an injectable clock, letting tests drive TTL
// expiry deterministically instead of sleeping.
func NewWithClock[V any](ctx context.Context, cfg *config.Config, logger *slog.Logger, clk clock.Clock) (*Cache[V], error) {
	ctx, cancel := context.WithCancel(ctx)

	manager, err := cache.New[V](cfg, logger, clk)
	if err != nil {
		cancel()
		return nil, err
	}
	sweeper := janitor.New(ctx, cfg.Janitor, logger, manager)
	telemeter := telemetry.New(ctx, cfg, logger, manager, sweeper)

	return &Cache[V]{cls: cancel, Cacher: manager, Janitor: sweeper, Logger: telemeter}, nil
}

func (c *Cache[V]) Close() error {
	c.cls()
	return nil
}
