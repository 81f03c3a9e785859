package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/agencydesk/agencydesk/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DeveloperAccountRepository struct {
	pool *pgxpool.Pool
}

func NewDeveloperAccountRepository(pool *pgxpool.Pool) *DeveloperAccountRepository {
	return &DeveloperAccountRepository{pool: pool}
}

const devAccountColumns = `id, owner_id, provider, account_email, url, renewal_date, notes, created_at, updated_at`

func (r *DeveloperAccountRepository) Create(ctx context.Context, d *domain.DeveloperAccount) (*domain.DeveloperAccount, error) {
	query := `
		INSERT INTO developer_accounts (owner_id, provider, account_email, url, renewal_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + devAccountColumns

	row := r.pool.QueryRow(ctx, query,
		d.OwnerID, d.Provider, d.AccountEmail, d.URL, d.RenewalDate, d.Notes,
	)
	return scanDevAccount(row)
}

func (r *DeveloperAccountRepository) GetByID(ctx context.Context, id, ownerID string) (*domain.DeveloperAccount, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+devAccountColumns+` FROM developer_accounts WHERE id = $1 AND owner_id = $2`,
		id, ownerID,
	)
	return scanDevAccount(row)
}

func (r *DeveloperAccountRepository) List(ctx context.Context, ownerID string) ([]*domain.DeveloperAccount, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+devAccountColumns+` FROM developer_accounts WHERE owner_id = $1 ORDER BY created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("list developer accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*domain.DeveloperAccount
	for rows.Next() {
		d, err := scanDevAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, d)
	}
	return accounts, rows.Err()
}

func (r *DeveloperAccountRepository) Update(ctx context.Context, d *domain.DeveloperAccount) (*domain.DeveloperAccount, error) {
	query := `
		UPDATE developer_accounts
		SET provider = $3, account_email = $4, url = $5, renewal_date = $6, notes = $7, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + devAccountColumns

	row := r.pool.QueryRow(ctx, query,
		d.ID, d.OwnerID, d.Provider, d.AccountEmail, d.URL, d.RenewalDate, d.Notes,
	)
	return scanDevAccount(row)
}

func (r *DeveloperAccountRepository) Delete(ctx context.Context, id, ownerID string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM developer_accounts WHERE id = $1 AND owner_id = $2`,
		id, ownerID)
	if err != nil {
		return fmt.Errorf("delete developer account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDeveloperAccountNotFound
	}
	return nil
}

func scanDevAccount(row pgx.Row) (*domain.DeveloperAccount, error) {
	var d domain.DeveloperAccount
	err := row.Scan(
		&d.ID, &d.OwnerID, &d.Provider, &d.AccountEmail, &d.URL,
		&d.RenewalDate, &d.Notes, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDeveloperAccountNotFound
		}
		return nil, fmt.Errorf("scan developer account: %w", err)
	}
	return &d, nil
}
