package telemetry

import (
	"context"
	"log/slog"
	"time"

	"github.com/alesierraalta/lumocache/config"
	"github.com/alesierraalta/lumocache/internal/janitor"
	"github.com/alesierraalta/lumocache/internal/shared/bytes"
)

type Logger interface {
	Interval() time.Duration
	Close() error
}

type Logs struct {
	ctx      context.Context
	cancel   context.CancelFunc
	cfg      *config.Config
	logger   *slog.Logger
	cache    MetricsSource
	janitor  janitor.Janitor
	interval time.Duration
}

func New(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	cache MetricsSource,
	janitor janitor.Janitor,
) *Logs {
	ctx, cancel := context.WithCancel(ctx)
	l := &Logs{
		ctx:     ctx,
		cancel:  cancel,
		cfg:     cfg,
		logger:  logger,
		cache:   cache,
		janitor: janitor,
	}
	if cfg.Telemetry.Enabled() {
		l.interval = cfg.Telemetry.LogsInterval
	}
	return l.run()
}

func (l *Logs) Interval() time.Duration {
	return l.interval
}

func (l *Logs) Close() error {
	l.cancel()
	return nil
}

func (l *Logs) run() *Logs {
	if l.cfg != nil && l.cfg.Telemetry.Enabled() {
		go l.loop()
	}
	return l
}

func (l *Logs) loop() {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	s := newSampler(l.cache, l.janitor)
	prev := s.snapshot()

	for {
		select {
		case <-l.ctx.Done():
			return

		case <-ticker.C:
			cur := s.snapshot()
			d := deltaSnapshot(prev, cur)
			prev = cur

			met := l.cache.Metrics()
			common := []any{"interval", l.interval.String()}

			l.logger.Info("cache",
				append(common,
					"hits", int64(d.hits),
					"misses", int64(d.misses),
					"hit_rate", met.HitRate,
					"evictions", int64(d.evictions),
					"entries", met.EntryCount,
					"size", bytes.FmtMem(uint64(max(met.TotalSize, 0))),
					"avg_access", met.AverageAccessTime.String(),
				)...,
			)

			if d.janScans > 0 {
				l.logger.Info("janitor",
					append(common,
						"scans", int64(d.janScans),
						"hits", int64(d.janHits),
						"removed", int64(d.janRemoved),
					)...,
				)
			}
		}
	}
}
