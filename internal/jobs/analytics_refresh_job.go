package jobs

import (
	"context"
	"log/slog"

	"ordering/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// AnalyticsRefreshJob recomputes the analytics snapshot on the cache TTL
// interval, so interactive requests almost always hit a warm cache.
type AnalyticsRefreshJob struct {
	handler queries.GetOrderAnalyticsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAnalyticsRefreshJob creates a job that keeps the analytics cache warm.
func NewAnalyticsRefreshJob(handler queries.GetOrderAnalyticsQueryHandler, logger *slog.Logger) *AnalyticsRefreshJob {
	return &AnalyticsRefreshJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "analytics_refresh_job"),
	}
}

// Start begins the refresh job on the snapshot TTL interval.
func (j *AnalyticsRefreshJob) Start() error {
	_, err := j.cron.AddFunc("@every 5m", func() {
		ctx := context.Background()

		if _, err := j.handler.Recompute(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Analytics refresh job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Analytics snapshot refreshed")
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Analytics refresh job started (running every 5 minutes)")
	return nil
}

// Stop stops the refresh job.
func (j *AnalyticsRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Analytics refresh job stopped")
}
