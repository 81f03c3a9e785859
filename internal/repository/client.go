package repository

import (
	"context"

	"github.com/agencydesk/agencydesk/internal/domain"
)

type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
	GetByID(ctx context.Context, id, ownerID string) (*domain.Client, error)
	List(ctx context.Context, ownerID string) ([]*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) (*domain.Client, error)
	Delete(ctx context.Context, id, ownerID string) error
}
