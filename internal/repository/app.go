package repository

import (
	"context"
	"time"

	"github.com/agencydesk/agencydesk/internal/domain"
)

type MobileAppRepository interface {
	Create(ctx context.Context, a *domain.MobileApp) (*domain.MobileApp, error)
	GetByID(ctx context.Context, id, ownerID string) (*domain.MobileApp, error)
	List(ctx context.Context, ownerID string) ([]*domain.MobileApp, error)
	ListExpiring(ctx context.Context, ownerID string, cutoff time.Time) ([]*domain.MobileApp, error)
	Update(ctx context.Context, a *domain.MobileApp) (*domain.MobileApp, error)
	Delete(ctx context.Context, id, ownerID string) error
}
