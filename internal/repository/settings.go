package repository

import (
	"context"

	"github.com/agencydesk/agencydesk/internal/domain"
)

type ReminderSettingsRepository interface {
	// GetOrCreate returns the owner's settings row, inserting the defaults if
	// none exists. The unique index on owner_id makes concurrent first calls
	// converge on a single row.
	GetOrCreate(ctx context.Context, ownerID string) (*domain.ReminderSettings, error)
	Update(ctx context.Context, s *domain.ReminderSettings) (*domain.ReminderSettings, error)
}
