// Package rates wires up the cron job that periodically reloads the lender
// rate cache from the database.
package rates

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/effendiaiwebsite/housesinbc/internal/infrastructure/cache"
)

// Refresher wraps robfig/cron and keeps the rate cache warm.
type Refresher struct {
	cron   *cron.Cron
	cache  *cache.RateCache
	spec   string
	logger *slog.Logger
}

// NewRefresher creates a Refresher firing on the given cron spec.
func NewRefresher(rateCache *cache.RateCache, spec string, logger *slog.Logger) *Refresher {
	return &Refresher{
		cron:   cron.New(),
		cache:  rateCache,
		spec:   spec,
		logger: logger,
	}
}

// Start registers the job and starts the scheduler. One refresh runs
// immediately so the cache is warm without waiting for the first tick.
func (r *Refresher) Start(ctx context.Context) error {
	_, err := r.cron.AddFunc(r.spec, func() {
		r.refresh(ctx)
	})
	if err != nil {
		return fmt.Errorf("register rate refresh job: %w", err)
	}

	r.cron.Start()
	r.logger.Info("rate refresher started", "spec", r.spec)

	go r.refresh(ctx)
	return nil
}

// Stop shuts down the scheduler and waits for a running refresh to finish.
func (r *Refresher) Stop() {
	<-r.cron.Stop().Done()
	r.logger.Info("rate refresher stopped")
}

func (r *Refresher) refresh(ctx context.Context) {
	if err := r.cache.Refresh(ctx); err != nil {
		r.logger.Error("rate refresh failed", "error", err)
		return
	}
	r.logger.Info("lender rate cache refreshed")
}
