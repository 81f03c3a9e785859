package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agencydesk/agencydesk/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MobileAppRepository struct {
	pool *pgxpool.Pool
}

func NewMobileAppRepository(pool *pgxpool.Pool) *MobileAppRepository {
	return &MobileAppRepository{pool: pool}
}

const appColumns = `id, owner_id, client_id, name, platform, store_url, developer_account_id, renewal_date, notes, created_at, updated_at`

func (r *MobileAppRepository) Create(ctx context.Context, a *domain.MobileApp) (*domain.MobileApp, error) {
	query := `
		INSERT INTO mobile_apps (owner_id, client_id, name, platform, store_url, developer_account_id, renewal_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + appColumns

	row := r.pool.QueryRow(ctx, query,
		a.OwnerID, a.ClientID, a.Name, a.Platform, a.StoreURL,
		a.DeveloperAccountID, a.RenewalDate, a.Notes,
	)
	return scanApp(row)
}

func (r *MobileAppRepository) GetByID(ctx context.Context, id, ownerID string) (*domain.MobileApp, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+appColumns+` FROM mobile_apps WHERE id = $1 AND owner_id = $2`,
		id, ownerID,
	)
	return scanApp(row)
}

func (r *MobileAppRepository) List(ctx context.Context, ownerID string) ([]*domain.MobileApp, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+appColumns+` FROM mobile_apps WHERE owner_id = $1 ORDER BY created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("list mobile apps: %w", err)
	}
	defer rows.Close()
	return collectApps(rows)
}

func (r *MobileAppRepository) ListExpiring(ctx context.Context, ownerID string, cutoff time.Time) ([]*domain.MobileApp, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+appColumns+` FROM mobile_apps WHERE owner_id = $1 AND renewal_date <= $2 ORDER BY renewal_date`,
		ownerID, cutoff,
	)
	if err != nil {
		return nil, fmt.Errorf("list expiring mobile apps: %w", err)
	}
	defer rows.Close()
	return collectApps(rows)
}

func (r *MobileAppRepository) Update(ctx context.Context, a *domain.MobileApp) (*domain.MobileApp, error) {
	query := `
		UPDATE mobile_apps
		SET client_id = $3, name = $4, platform = $5, store_url = $6,
		    developer_account_id = $7, renewal_date = $8, notes = $9, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + appColumns

	row := r.pool.QueryRow(ctx, query,
		a.ID, a.OwnerID, a.ClientID, a.Name, a.Platform, a.StoreURL,
		a.DeveloperAccountID, a.RenewalDate, a.Notes,
	)
	return scanApp(row)
}

func (r *MobileAppRepository) Delete(ctx context.Context, id, ownerID string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM mobile_apps WHERE id = $1 AND owner_id = $2`,
		id, ownerID)
	if err != nil {
		return fmt.Errorf("delete mobile app: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMobileAppNotFound
	}
	return nil
}

func collectApps(rows pgx.Rows) ([]*domain.MobileApp, error) {
	var apps []*domain.MobileApp
	for rows.Next() {
		a, err := scanApp(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func scanApp(row pgx.Row) (*domain.MobileApp, error) {
	var a domain.MobileApp
	err := row.Scan(
		&a.ID, &a.OwnerID, &a.ClientID, &a.Name, &a.Platform, &a.StoreURL,
		&a.DeveloperAccountID, &a.RenewalDate, &a.Notes,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMobileAppNotFound
		}
		return nil, fmt.Errorf("scan mobile app: %w", err)
	}
	return &a, nil
}
