package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/agencydesk/agencydesk/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReminderSettingsRepository struct {
	pool *pgxpool.Pool
}

func NewReminderSettingsRepository(pool *pgxpool.Pool) *ReminderSettingsRepository {
	return &ReminderSettingsRepository{pool: pool}
}

const settingsColumns = `id, owner_id, email_enabled, one_month, two_weeks, three_days, on_expiry_day, created_at, updated_at`

// GetOrCreate inserts the default row if the owner has none, then reads it
// back. ON CONFLICT DO NOTHING against the unique index on owner_id means
// racing first calls all settle on the same row.
func (r *ReminderSettingsRepository) GetOrCreate(ctx context.Context, ownerID string) (*domain.ReminderSettings, error) {
	d := domain.DefaultReminderSettings(ownerID)

	_, err := r.pool.Exec(ctx, `
		INSERT INTO reminder_settings (owner_id, email_enabled, one_month, two_weeks, three_days, on_expiry_day)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (owner_id) DO NOTHING`,
		d.OwnerID, d.EmailEnabled, d.OneMonth, d.TwoWeeks, d.ThreeDays, d.OnExpiryDay,
	)
	if err != nil {
		return nil, fmt.Errorf("insert reminder settings: %w", err)
	}

	row := r.pool.QueryRow(ctx,
		`SELECT `+settingsColumns+` FROM reminder_settings WHERE owner_id = $1`,
		ownerID,
	)
	return scanSettings(row)
}

func (r *ReminderSettingsRepository) Update(ctx context.Context, s *domain.ReminderSettings) (*domain.ReminderSettings, error) {
	query := `
		UPDATE reminder_settings
		SET email_enabled = $2, one_month = $3, two_weeks = $4,
		    three_days = $5, on_expiry_day = $6, updated_at = NOW()
		WHERE owner_id = $1
		RETURNING ` + settingsColumns

	row := r.pool.QueryRow(ctx, query,
		s.OwnerID, s.EmailEnabled, s.OneMonth, s.TwoWeeks, s.ThreeDays, s.OnExpiryDay,
	)
	return scanSettings(row)
}

func scanSettings(row pgx.Row) (*domain.ReminderSettings, error) {
	var s domain.ReminderSettings
	err := row.Scan(
		&s.ID, &s.OwnerID, &s.EmailEnabled,
		&s.OneMonth, &s.TwoWeeks, &s.ThreeDays, &s.OnExpiryDay,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan reminder settings: %w", err)
	}
	return &s, nil
}
