// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. AnalyticsRefreshJob - Recomputes the order analytics snapshot every
// five minutes, matching the cache TTL, so the cached snapshot stays warm
// between interactive requests.
//
// # Usage
//
//	job := jobs.NewAnalyticsRefreshJob(analyticsHandler, logger)
//	if err := job.Start(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer job.Stop()
package jobs
