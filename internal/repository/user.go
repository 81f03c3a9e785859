package repository

import (
	"context"
	"time"

	"github.com/agencydesk/agencydesk/internal/domain"
)

type UserRepository interface {
	FindOrCreate(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// ListIDs returns every user ID. The renewal monitor walks this to scan
	// each owner's records.
	ListIDs(ctx context.Context) ([]string, error)
	CreateMagicToken(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error
	ClaimMagicToken(ctx context.Context, tokenHash string) (*domain.MagicToken, error)
}
