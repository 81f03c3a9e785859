package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/agencydesk/agencydesk/internal/domain"
	"github.com/agencydesk/agencydesk/internal/repository"
)

type DeveloperAccountUsecase struct {
	repo repository.DeveloperAccountRepository
}

func NewDeveloperAccountUsecase(repo repository.DeveloperAccountRepository) *DeveloperAccountUsecase {
	return &DeveloperAccountUsecase{repo: repo}
}

type DeveloperAccountInput struct {
	OwnerID      string
	Provider     string
	AccountEmail string
	URL          string
	RenewalDate  time.Time
	Notes        string
}

func (u *DeveloperAccountUsecase) Create(ctx context.Context, input DeveloperAccountInput) (*domain.DeveloperAccount, error) {
	d := &domain.DeveloperAccount{
		OwnerID:      input.OwnerID,
		Provider:     input.Provider,
		AccountEmail: input.AccountEmail,
		URL:          input.URL,
		RenewalDate:  input.RenewalDate,
		Notes:        input.Notes,
	}
	created, err := u.repo.Create(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("create developer account: %w", err)
	}
	return created, nil
}

func (u *DeveloperAccountUsecase) GetByID(ctx context.Context, id, ownerID string) (*domain.DeveloperAccount, error) {
	d, err := u.repo.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get developer account: %w", err)
	}
	return d, nil
}

func (u *DeveloperAccountUsecase) List(ctx context.Context, ownerID string) ([]*domain.DeveloperAccount, error) {
	accounts, err := u.repo.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list developer accounts: %w", err)
	}
	return accounts, nil
}

func (u *DeveloperAccountUsecase) Update(ctx context.Context, id string, input DeveloperAccountInput) (*domain.DeveloperAccount, error) {
	d := &domain.DeveloperAccount{
		ID:           id,
		OwnerID:      input.OwnerID,
		Provider:     input.Provider,
		AccountEmail: input.AccountEmail,
		URL:          input.URL,
		RenewalDate:  input.RenewalDate,
		Notes:        input.Notes,
	}
	updated, err := u.repo.Update(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("update developer account: %w", err)
	}
	return updated, nil
}

func (u *DeveloperAccountUsecase) Delete(ctx context.Context, id, ownerID string) error {
	if err := u.repo.Delete(ctx, id, ownerID); err != nil {
		return fmt.Errorf("delete developer account: %w", err)
	}
	return nil
}
