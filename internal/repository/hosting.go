package repository

import (
	"context"
	"time"

	"github.com/agencydesk/agencydesk/internal/domain"
)

type HostingAccountRepository interface {
	Create(ctx context.Context, h *domain.HostingAccount) (*domain.HostingAccount, error)
	GetByID(ctx context.Context, id, ownerID string) (*domain.HostingAccount, error)
	List(ctx context.Context, ownerID string) ([]*domain.HostingAccount, error)
	ListExpiring(ctx context.Context, ownerID string, cutoff time.Time) ([]*domain.HostingAccount, error)
	Update(ctx context.Context, h *domain.HostingAccount) (*domain.HostingAccount, error)
	Delete(ctx context.Context, id, ownerID string) error
}
