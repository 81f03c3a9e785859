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

type SiteRepository struct {
	pool *pgxpool.Pool
}

func NewSiteRepository(pool *pgxpool.Pool) *SiteRepository {
	return &SiteRepository{pool: pool}
}

const siteColumns = `id, owner_id, client_id, domain, registrar_url, hosting_account_id, host_name, expiry_date, notes, created_at, updated_at`

func (r *SiteRepository) Create(ctx context.Context, s *domain.Site) (*domain.Site, error) {
	query := `
		INSERT INTO sites (owner_id, client_id, domain, registrar_url, hosting_account_id, host_name, expiry_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + siteColumns

	row := r.pool.QueryRow(ctx, query,
		s.OwnerID, s.ClientID, s.Domain, s.RegistrarURL,
		s.HostingAccountID, s.HostName, s.ExpiryDate, s.Notes,
	)
	return scanSite(row)
}

func (r *SiteRepository) GetByID(ctx context.Context, id, ownerID string) (*domain.Site, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+siteColumns+` FROM sites WHERE id = $1 AND owner_id = $2`,
		id, ownerID,
	)
	return scanSite(row)
}

func (r *SiteRepository) List(ctx context.Context, ownerID string) ([]*domain.Site, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+siteColumns+` FROM sites WHERE owner_id = $1 ORDER BY created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("list sites: %w", err)
	}
	defer rows.Close()
	return collectSites(rows)
}

func (r *SiteRepository) ListExpiring(ctx context.Context, ownerID string, cutoff time.Time) ([]*domain.Site, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+siteColumns+` FROM sites WHERE owner_id = $1 AND expiry_date <= $2 ORDER BY expiry_date`,
		ownerID, cutoff,
	)
	if err != nil {
		return nil, fmt.Errorf("list expiring sites: %w", err)
	}
	defer rows.Close()
	return collectSites(rows)
}

func (r *SiteRepository) Update(ctx context.Context, s *domain.Site) (*domain.Site, error) {
	query := `
		UPDATE sites
		SET client_id = $3, domain = $4, registrar_url = $5, hosting_account_id = $6,
		    host_name = $7, expiry_date = $8, notes = $9, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + siteColumns

	row := r.pool.QueryRow(ctx, query,
		s.ID, s.OwnerID, s.ClientID, s.Domain, s.RegistrarURL,
		s.HostingAccountID, s.HostName, s.ExpiryDate, s.Notes,
	)
	return scanSite(row)
}

func (r *SiteRepository) Delete(ctx context.Context, id, ownerID string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM sites WHERE id = $1 AND owner_id = $2`,
		id, ownerID)
	if err != nil {
		return fmt.Errorf("delete site: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSiteNotFound
	}
	return nil
}

func collectSites(rows pgx.Rows) ([]*domain.Site, error) {
	var sites []*domain.Site
	for rows.Next() {
		s, err := scanSite(rows)
		if err != nil {
			return nil, err
		}
		sites = append(sites, s)
	}
	return sites, rows.Err()
}

func scanSite(row pgx.Row) (*domain.Site, error) {
	var s domain.Site
	err := row.Scan(
		&s.ID, &s.OwnerID, &s.ClientID, &s.Domain, &s.RegistrarURL,
		&s.HostingAccountID, &s.HostName, &s.ExpiryDate, &s.Notes,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSiteNotFound
		}
		return nil, fmt.Errorf("scan site: %w", err)
	}
	return &s, nil
}
