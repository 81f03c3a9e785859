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

type HostingAccountRepository struct {
	pool *pgxpool.Pool
}

func NewHostingAccountRepository(pool *pgxpool.Pool) *HostingAccountRepository {
	return &HostingAccountRepository{pool: pool}
}

const hostingColumns = `id, owner_id, name, provider, account_email, url, renewal_date, notes, created_at, updated_at`

func (r *HostingAccountRepository) Create(ctx context.Context, h *domain.HostingAccount) (*domain.HostingAccount, error) {
	query := `
		INSERT INTO hosting_accounts (owner_id, name, provider, account_email, url, renewal_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + hostingColumns

	row := r.pool.QueryRow(ctx, query,
		h.OwnerID, h.Name, h.Provider, h.AccountEmail, h.URL, h.RenewalDate, h.Notes,
	)
	return scanHosting(row)
}

func (r *HostingAccountRepository) GetByID(ctx context.Context, id, ownerID string) (*domain.HostingAccount, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+hostingColumns+` FROM hosting_accounts WHERE id = $1 AND owner_id = $2`,
		id, ownerID,
	)
	return scanHosting(row)
}

func (r *HostingAccountRepository) List(ctx context.Context, ownerID string) ([]*domain.HostingAccount, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+hostingColumns+` FROM hosting_accounts WHERE owner_id = $1 ORDER BY created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("list hosting accounts: %w", err)
	}
	defer rows.Close()
	return collectHosting(rows)
}

func (r *HostingAccountRepository) ListExpiring(ctx context.Context, ownerID string, cutoff time.Time) ([]*domain.HostingAccount, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+hostingColumns+` FROM hosting_accounts WHERE owner_id = $1 AND renewal_date <= $2 ORDER BY renewal_date`,
		ownerID, cutoff,
	)
	if err != nil {
		return nil, fmt.Errorf("list expiring hosting accounts: %w", err)
	}
	defer rows.Close()
	return collectHosting(rows)
}

func (r *HostingAccountRepository) Update(ctx context.Context, h *domain.HostingAccount) (*domain.HostingAccount, error) {
	query := `
		UPDATE hosting_accounts
		SET name = $3, provider = $4, account_email = $5, url = $6,
		    renewal_date = $7, notes = $8, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + hostingColumns

	row := r.pool.QueryRow(ctx, query,
		h.ID, h.OwnerID, h.Name, h.Provider, h.AccountEmail, h.URL, h.RenewalDate, h.Notes,
	)
	return scanHosting(row)
}

func (r *HostingAccountRepository) Delete(ctx context.Context, id, ownerID string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM hosting_accounts WHERE id = $1 AND owner_id = $2`,
		id, ownerID)
	if err != nil {
		return fmt.Errorf("delete hosting account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrHostingAccountNotFound
	}
	return nil
}

func collectHosting(rows pgx.Rows) ([]*domain.HostingAccount, error) {
	var accounts []*domain.HostingAccount
	for rows.Next() {
		h, err := scanHosting(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, h)
	}
	return accounts, rows.Err()
}

func scanHosting(row pgx.Row) (*domain.HostingAccount, error) {
	var h domain.HostingAccount
	err := row.Scan(
		&h.ID, &h.OwnerID, &h.Name, &h.Provider, &h.AccountEmail, &h.URL,
		&h.RenewalDate, &h.Notes, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrHostingAccountNotFound
		}
		return nil, fmt.Errorf("scan hosting account: %w", err)
	}
	return &h, nil
}
