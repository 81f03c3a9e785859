package monitor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/agencydesk/agencydesk/internal/metrics"
	"github.com/agencydesk/agencydesk/internal/repository"
	"github.com/agencydesk/agencydesk/internal/usecase"
	"github.com/robfig/cron/v3"
)

// Monitor runs the daily renewal scan: for every owner it aggregates records
// inside the lookahead window and dispatches whatever reminders are due.
type Monitor struct {
	users    repository.UserRepository
	settings repository.ReminderSettingsRepository
	renewals *usecase.RenewalUsecase
	logger   *slog.Logger

	schedule      cron.Schedule
	lookaheadDays int
	sem           chan struct{}
}

func New(
	users repository.UserRepository,
	settings repository.ReminderSettingsRepository,
	renewals *usecase.RenewalUsecase,
	logger *slog.Logger,
	cronExpr string,
	lookaheadDays int,
	workers int,
) (*Monitor, error) {
	schedule, err := cron.ParseStandard(cronExpr)
	if err != nil {
		return nil, err
	}
	return &Monitor{
		users:         users,
		settings:      settings,
		renewals:      renewals,
		logger:        logger.With("component", "monitor"),
		schedule:      schedule,
		lookaheadDays: lookaheadDays,
		sem:           make(chan struct{}, workers),
	}, nil
}

// Start blocks until ctx is cancelled, firing Scan at each cron tick.
func (m *Monitor) Start(ctx context.Context) {
	m.logger.Info("monitor started", "lookahead_days", m.lookaheadDays, "workers", cap(m.sem))

	for {
		next := m.schedule.Next(time.Now())
		timer := time.NewTimer(time.Until(next))
		m.logger.Info("next scan scheduled", "at", next)

		select {
		case <-ctx.Done():
			timer.Stop()
			m.logger.Info("monitor shut down")
			return
		case <-timer.C:
			m.Scan(ctx, time.Now())
		}
	}
}

// Scan walks every owner with a bounded worker pool. A failure for one owner
// is logged and skipped; the scan always completes.
func (m *Monitor) Scan(ctx context.Context, asOf time.Time) {
	start := time.Now()
	defer func() {
		metrics.ScanCycleDuration.Observe(time.Since(start).Seconds())
	}()

	ownerIDs, err := m.users.ListIDs(ctx)
	if err != nil {
		m.logger.Error("list owners", "error", err)
		return
	}

	metrics.ExpiringItems.Reset()

	var wg sync.WaitGroup
	for _, id := range ownerIDs {
		m.sem <- struct{}{}
		wg.Add(1)
		go func(ownerID string) {
			defer wg.Done()
			defer func() { <-m.sem }()
			m.scanOwner(ctx, ownerID, asOf)
		}(id)
	}
	wg.Wait()

	m.logger.Info("scan complete", "owners", len(ownerIDs), "duration", time.Since(start))
}

func (m *Monitor) scanOwner(ctx context.Context, ownerID string, asOf time.Time) {
	owner, err := m.users.FindByID(ctx, ownerID)
	if err != nil {
		m.logger.Error("find owner", "owner_id", ownerID, "error", err)
		metrics.OwnersScannedTotal.WithLabelValues("error").Inc()
		return
	}

	// First-seen owners get the default settings row here.
	settings, err := m.settings.GetOrCreate(ctx, ownerID)
	if err != nil {
		m.logger.Error("get reminder settings", "owner_id", ownerID, "error", err)
		metrics.OwnersScannedTotal.WithLabelValues("error").Inc()
		return
	}

	items, err := m.renewals.Expiring(ctx, ownerID, asOf, m.lookaheadDays)
	if err != nil {
		m.logger.Error("aggregate expiring items", "owner_id", ownerID, "error", err)
		metrics.OwnersScannedTotal.WithLabelValues("error").Inc()
		return
	}

	for _, item := range items {
		metrics.ExpiringItems.WithLabelValues(string(item.Tier)).Inc()
		outcome := m.renewals.Dispatch(ctx, item, settings, owner)
		metrics.RemindersTotal.WithLabelValues(string(outcome)).Inc()
	}

	metrics.OwnersScannedTotal.WithLabelValues("ok").Inc()
}
