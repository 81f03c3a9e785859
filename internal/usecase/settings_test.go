package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/agencydesk/agencydesk/internal/domain"
	"github.com/agencydesk/agencydesk/internal/usecase"
)

type fakeSettingsRepo struct {
	getOrCreate func(ctx context.Context, ownerID string) (*domain.ReminderSettings, error)
	update      func(ctx context.Context, s *domain.ReminderSettings) (*domain.ReminderSettings, error)
}

func (r *fakeSettingsRepo) GetOrCreate(ctx context.Context, ownerID string) (*domain.ReminderSettings, error) {
	return r.getOrCreate(ctx, ownerID)
}
func (r *fakeSettingsRepo) Update(ctx context.Context, s *domain.ReminderSettings) (*domain.ReminderSettings, error) {
	return r.update(ctx, s)
}

func TestSettingsGetOrCreate_ReturnsRow(t *testing.T) {
	repo := &fakeSettingsRepo{
		getOrCreate: func(_ context.Context, ownerID string) (*domain.ReminderSettings, error) {
			s := domain.DefaultReminderSettings(ownerID)
			s.ID = "settings-1"
			return s, nil
		},
	}
	uc := usecase.NewSettingsUsecase(repo)

	got, err := uc.GetOrCreate(context.Background(), "owner-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.OwnerID != "owner-1" {
		t.Errorf("owner = %q, want owner-1", got.OwnerID)
	}
	if !got.EmailEnabled || !got.OneMonth || !got.TwoWeeks || !got.ThreeDays || !got.OnExpiryDay {
		t.Errorf("fresh settings should have every flag enabled: %+v", got)
	}
}

func TestSettingsUpdate_EnsuresRowFirst(t *testing.T) {
	var calls []string
	repo := &fakeSettingsRepo{
		getOrCreate: func(_ context.Context, ownerID string) (*domain.ReminderSettings, error) {
			calls = append(calls, "getOrCreate")
			return domain.DefaultReminderSettings(ownerID), nil
		},
		update: func(_ context.Context, s *domain.ReminderSettings) (*domain.ReminderSettings, error) {
			calls = append(calls, "update")
			return s, nil
		},
	}
	uc := usecase.NewSettingsUsecase(repo)

	got, err := uc.Update(context.Background(), usecase.UpdateSettingsInput{
		OwnerID:      "owner-1",
		EmailEnabled: true,
		OneMonth:     false,
		TwoWeeks:     true,
		ThreeDays:    false,
		OnExpiryDay:  true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(calls) != 2 || calls[0] != "getOrCreate" || calls[1] != "update" {
		t.Errorf("calls = %v, want [getOrCreate update]", calls)
	}
	if got.OneMonth || got.ThreeDays {
		t.Errorf("disabled flags survived the update: %+v", got)
	}
	if !got.TwoWeeks || !got.OnExpiryDay {
		t.Errorf("enabled flags were lost: %+v", got)
	}
}

func TestSettingsUpdate_GetOrCreateError_StopsUpdate(t *testing.T) {
	repoErr := errors.New("db down")
	repo := &fakeSettingsRepo{
		getOrCreate: func(context.Context, string) (*domain.ReminderSettings, error) {
			return nil, repoErr
		},
		update: func(context.Context, *domain.ReminderSettings) (*domain.ReminderSettings, error) {
			t.Fatal("update must not run when get-or-create fails")
			return nil, nil
		},
	}
	uc := usecase.NewSettingsUsecase(repo)

	_, err := uc.Update(context.Background(), usecase.UpdateSettingsInput{OwnerID: "owner-1"})
	if !errors.Is(err, repoErr) {
		t.Errorf("want wrapped repo error, got %v", err)
	}
}
