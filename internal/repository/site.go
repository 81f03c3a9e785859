package repository

import (
	"context"
	"time"

	"github.com/agencydesk/agencydesk/internal/domain"
)

type SiteRepository interface {
	Create(ctx context.Context, s *domain.Site) (*domain.Site, error)
	GetByID(ctx context.Context, id, ownerID string) (*domain.Site, error)
	List(ctx context.Context, ownerID string) ([]*domain.Site, error)
	// ListExpiring returns the owner's sites with expiry_date on or before the
	// cutoff, in expiry order.
	ListExpiring(ctx context.Context, ownerID string, cutoff time.Time) ([]*domain.Site, error)
	Update(ctx context.Context, s *domain.Site) (*domain.Site, error)
	Delete(ctx context.Context, id, ownerID string) error
}
