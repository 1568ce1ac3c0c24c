// Package scheduler runs the periodic background jobs: analytics
// recomputation, bulk notification dispatch and event log retention.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/analytics"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/model"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/notify"
	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/service"
)

// Events older than this are purged from the audit log.
const eventRetention = 90 * 24 * time.Hour

// Scheduler drives the cron jobs.
type Scheduler struct {
	cron       *cron.Cron
	stats      *analytics.Service
	dispatcher *notify.Dispatcher
	events     *service.EventService
	logger     *slog.Logger
}

// New creates a scheduler. Any of the services may be nil; the matching
// job is then skipped.
func New(stats *analytics.Service, dispatcher *notify.Dispatcher, events *service.EventService, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		cron:       cron.New(),
		stats:      stats,
		dispatcher: dispatcher,
		events:     events,
		logger:     logger,
	}
}

// Start registers the jobs and begins the cron loop.
func (s *Scheduler) Start() error {
	if s.stats != nil {
		// Daily analytics rebuild shortly after midnight.
		if _, err := s.cron.AddFunc("5 0 * * *", s.refreshAnalytics); err != nil {
			return err
		}
	}
	if s.dispatcher != nil {
		// Queued broadcasts drain every minute.
		if _, err := s.cron.AddFunc("* * * * *", s.drainNotifications); err != nil {
			return err
		}
	}
	if s.events != nil {
		// Audit log retention, weekly.
		if _, err := s.cron.AddFunc("30 3 * * 0", s.purgeOldEvents); err != nil {
			return err
		}
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
	return nil
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) refreshAnalytics() {
	ctx := context.Background()
	if err := s.stats.RefreshDaily(ctx); err != nil {
		s.logger.Error("scheduled analytics refresh failed", "error", err)
		return
	}
	s.logger.Info("daily analytics refreshed")
}

func (s *Scheduler) drainNotifications() {
	ctx := context.Background()
	n, err := s.dispatcher.Drain(ctx)
	if err != nil {
		s.logger.Error("notification drain failed", "error", err)
		return
	}
	if n > 0 {
		s.logger.Info("notifications dispatched", "count", n)
		if s.events != nil {
			_ = s.events.LogNotifyEvent(ctx, model.EventLevelInfo,
				"Scheduled notification drain", map[string]any{"dispatched": n})
		}
	}
}

func (s *Scheduler) purgeOldEvents() {
	ctx := context.Background()
	if err := s.events.DeleteOldEvents(ctx, eventRetention); err != nil {
		s.logger.Error("event log purge failed", "error", err)
		return
	}
	s.logger.Info("event log purged", "retention", eventRetention.String())
}
