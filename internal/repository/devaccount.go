package repository

import (
	"context"

	"github.com/agencydesk/agencydesk/internal/domain"
)

type DeveloperAccountRepository interface {
	Create(ctx context.Context, d *domain.DeveloperAccount) (*domain.DeveloperAccount, error)
	GetByID(ctx context.Context, id, ownerID string) (*domain.DeveloperAccount, error)
	List(ctx context.Context, ownerID string) ([]*domain.DeveloperAccount, error)
	Update(ctx context.Context, d *domain.DeveloperAccount) (*domain.DeveloperAccount, error)
	Delete(ctx context.Context, id, ownerID string) error
}
