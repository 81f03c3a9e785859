package usecase

import (
	"context"
	"fmt"

	"github.com/agencydesk/agencydesk/internal/domain"
	"github.com/agencydesk/agencydesk/internal/repository"
)

type SettingsUsecase struct {
	repo repository.ReminderSettingsRepository
}

func NewSettingsUsecase(repo repository.ReminderSettingsRepository) *SettingsUsecase {
	return &SettingsUsecase{repo: repo}
}

// GetOrCreate returns the owner's reminder settings, creating the default row
// (everything enabled) the first time an owner is seen. Safe to call
// repeatedly; the storage layer guarantees at most one row per owner.
func (u *SettingsUsecase) GetOrCreate(ctx context.Context, ownerID string) (*domain.ReminderSettings, error) {
	s, err := u.repo.GetOrCreate(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get or create reminder settings: %w", err)
	}
	return s, nil
}

type UpdateSettingsInput struct {
	OwnerID      string
	EmailEnabled bool
	OneMonth     bool
	TwoWeeks     bool
	ThreeDays    bool
	OnExpiryDay  bool
}

// Update applies an explicit user edit. GetOrCreate first so an edit from a
// fresh session never hits a missing row.
func (u *SettingsUsecase) Update(ctx context.Context, input UpdateSettingsInput) (*domain.ReminderSettings, error) {
	if _, err := u.repo.GetOrCreate(ctx, input.OwnerID); err != nil {
		return nil, fmt.Errorf("get or create reminder settings: %w", err)
	}

	updated, err := u.repo.Update(ctx, &domain.ReminderSettings{
		OwnerID:      input.OwnerID,
		EmailEnabled: input.EmailEnabled,
		OneMonth:     input.OneMonth,
		TwoWeeks:     input.TwoWeeks,
		ThreeDays:    input.ThreeDays,
		OnExpiryDay:  input.OnExpiryDay,
	})
	if err != nil {
		return nil, fmt.Errorf("update reminder settings: %w", err)
	}
	return updated, nil
}
