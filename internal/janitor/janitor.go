package janitor

import (
	"context"
	"log/slog"

	"github.com/alesierraalta/lumocache/config"
	"github.com/alesierraalta/lumocache/internal/shared/rate"
)

// Sweeper is the slice of the cache manager the janitor drives.
type Sweeper interface {
	Cleanup() int
	Len() int
}

// Janitor proactively reclaims memory held by expired entries. Lazy expiry
// keeps reads correct on its own; the janitor only shortens how long stale
// entries occupy space between accesses.
type Janitor interface {
	JanitorMetrics() (scans, hits, removed int64)
	Close() error
}

type Worker struct {
	ctx      context.Context
	cancel   context.CancelFunc
	cfg      *config.JanitorCfg
	logger   *slog.Logger
	sweeper  Sweeper
	jitter   *rate.Jitter
	counters *janitorCounters
}

func New(ctx context.Context, cfg *config.JanitorCfg, logger *slog.Logger, sweeper Sweeper) Janitor {
	if !cfg.Enabled() {
		return &NoOpJanitor{}
	}

	ctx, cancel := context.WithCancel(ctx)
	return (&Worker{
		ctx:      ctx,
		cancel:   cancel,
		cfg:      cfg,
		logger:   logger,
		sweeper:  sweeper,
		jitter:   rate.NewJitter(ctx, int(cfg.CallsPerSec)),
		counters: newJanitorCounters(),
	}).run()
}

func (w *Worker) JanitorMetrics() (scans, hits, removed int64) {
	return w.counters.snapshot()
}

func (w *Worker) Close() error {
	w.cancel()
	return nil
}

func (w *Worker) run() *Worker {
	w.logger.Info("janitor is running", "calls_per_sec", w.cfg.CallsPerSec)
	go w.loop()
	return w
}

func (w *Worker) loop() {
	defer w.logger.Info("janitor is stopped")

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-w.jitter.Chan():
			if w.sweeper.Len() > 0 {
				w.counters.scans.Add(1)
				if removed := w.sweeper.Cleanup(); removed > 0 {
					w.counters.scanHits.Add(1)
					w.counters.removed.Add(int64(removed))
				}
			}
		}
	}
}
