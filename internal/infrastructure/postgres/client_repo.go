package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/agencydesk/agencydesk/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ClientRepository struct {
	pool *pgxpool.Pool
}

func NewClientRepository(pool *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{pool: pool}
}

const clientColumns = `id, owner_id, name, company, email, phone, notes, created_at, updated_at`

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	query := `
		INSERT INTO clients (owner_id, name, company, email, phone, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + clientColumns

	row := r.pool.QueryRow(ctx, query,
		c.OwnerID, c.Name, c.Company, c.Email, c.Phone, c.Notes,
	)
	return scanClient(row)
}

func (r *ClientRepository) GetByID(ctx context.Context, id, ownerID string) (*domain.Client, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id = $1 AND owner_id = $2`,
		id, ownerID,
	)
	return scanClient(row)
}

func (r *ClientRepository) List(ctx context.Context, ownerID string) ([]*domain.Client, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE owner_id = $1 ORDER BY created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var clients []*domain.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (r *ClientRepository) Update(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	query := `
		UPDATE clients
		SET name = $3, company = $4, email = $5, phone = $6, notes = $7, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + clientColumns

	row := r.pool.QueryRow(ctx, query,
		c.ID, c.OwnerID, c.Name, c.Company, c.Email, c.Phone, c.Notes,
	)
	return scanClient(row)
}

func (r *ClientRepository) Delete(ctx context.Context, id, ownerID string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM clients WHERE id = $1 AND owner_id = $2`,
		id, ownerID)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

func scanClient(row pgx.Row) (*domain.Client, error) {
	var c domain.Client
	err := row.Scan(
		&c.ID, &c.OwnerID, &c.Name, &c.Company, &c.Email, &c.Phone, &c.Notes,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("scan client: %w", err)
	}
	return &c, nil
}
