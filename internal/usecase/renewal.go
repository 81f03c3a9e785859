package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/agencydesk/agencydesk/internal/domain"
	"github.com/agencydesk/agencydesk/internal/email"
	"github.com/agencydesk/agencydesk/internal/repository"
)

// DispatchOutcome records what happened to a single reminder.
type DispatchOutcome string

const (
	OutcomeSent            DispatchOutcome = "sent"
	OutcomeSkippedDisabled DispatchOutcome = "skipped_disabled"
	OutcomeSkippedNotDue   DispatchOutcome = "skipped_not_due"
	OutcomeFailed          DispatchOutcome = "failed"
)

type RenewalUsecase struct {
	sites   repository.SiteRepository
	hosting repository.HostingAccountRepository
	apps    repository.MobileAppRepository
	email   email.Sender
	logger  *slog.Logger
}

func NewRenewalUsecase(
	sites repository.SiteRepository,
	hosting repository.HostingAccountRepository,
	apps repository.MobileAppRepository,
	emailSender email.Sender,
	logger *slog.Logger,
) *RenewalUsecase {
	return &RenewalUsecase{
		sites:   sites,
		hosting: hosting,
		apps:    apps,
		email:   emailSender,
		logger:  logger.With("component", "renewal_usecase"),
	}
}

// Expiring fetches the owner's three collections bounded by the lookahead
// cutoff and aggregates them. The repositories apply the same inclusive
// cutoff as domain.Aggregate, so the DB query is just a bandwidth bound;
// the domain function remains the source of truth for inclusion.
func (u *RenewalUsecase) Expiring(ctx context.Context, ownerID string, asOf time.Time, lookaheadDays int) ([]domain.ExpiringItem, error) {
	if lookaheadDays <= 0 {
		lookaheadDays = domain.DefaultLookaheadDays
	}
	cutoff := asOf.AddDate(0, 0, lookaheadDays)

	sites, err := u.sites.ListExpiring(ctx, ownerID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("fetch expiring sites: %w", err)
	}
	hosts, err := u.hosting.ListExpiring(ctx, ownerID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("fetch expiring hosting accounts: %w", err)
	}
	apps, err := u.apps.ListExpiring(ctx, ownerID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("fetch expiring mobile apps: %w", err)
	}

	return domain.Aggregate(asOf, lookaheadDays, sites, hosts, apps), nil
}

// Dispatch sends one reminder email if the item is due today under the
// owner's settings. Send failures are logged and reported in the outcome,
// never returned as an error: one bad mailbox must not stop a scan.
func (u *RenewalUsecase) Dispatch(ctx context.Context, item domain.ExpiringItem, settings *domain.ReminderSettings, owner *domain.User) DispatchOutcome {
	if !settings.EmailEnabled {
		return OutcomeSkippedDisabled
	}
	if !domain.ReminderDue(item.DaysLeft, settings) {
		return OutcomeSkippedNotDue
	}

	subject, body := renderReminder(item)
	if err := u.email.Send(ctx, owner.Email, subject, body); err != nil {
		u.logger.Error("send reminder",
			"owner_id", owner.ID,
			"kind", item.Kind,
			"source_id", item.SourceID,
			"error", err,
		)
		return OutcomeFailed
	}

	u.logger.Info("reminder sent",
		"owner_id", owner.ID,
		"kind", item.Kind,
		"display_name", item.DisplayName,
		"days_left", item.DaysLeft,
	)
	return OutcomeSent
}

func renderReminder(item domain.ExpiringItem) (subject, body string) {
	noun := map[domain.SourceKind]string{
		domain.KindSite:      "Domain",
		domain.KindHosting:   "Hosting account",
		domain.KindMobileApp: "Mobile app",
	}[item.Kind]

	when := fmt.Sprintf("in %d days", item.DaysLeft)
	if item.DaysLeft == 0 {
		when = "today"
	} else if item.DaysLeft == 1 {
		when = "tomorrow"
	}

	subject = fmt.Sprintf("%s %q expires %s", noun, item.DisplayName, when)
	body = fmt.Sprintf(
		`<p>%s <strong>%s</strong> expires %s (%s).</p><p>Renew it before the date to avoid downtime.</p>`,
		noun, item.DisplayName, when, item.ExpiryDate.Format("2006-01-02"),
	)
	return subject, body
}
