package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/agencydesk/agencydesk/internal/domain"
	"github.com/agencydesk/agencydesk/internal/repository"
)

type HostingUsecase struct {
	repo repository.HostingAccountRepository
}

func NewHostingUsecase(repo repository.HostingAccountRepository) *HostingUsecase {
	return &HostingUsecase{repo: repo}
}

type HostingAccountInput struct {
	OwnerID      string
	Name         string
	Provider     string
	AccountEmail string
	URL          string
	RenewalDate  time.Time
	Notes        string
}

func (u *HostingUsecase) Create(ctx context.Context, input HostingAccountInput) (*domain.HostingAccount, error) {
	h := &domain.HostingAccount{
		OwnerID:      input.OwnerID,
		Name:         input.Name,
		Provider:     input.Provider,
		AccountEmail: input.AccountEmail,
		URL:          input.URL,
		RenewalDate:  input.RenewalDate,
		Notes:        input.Notes,
	}
	created, err := u.repo.Create(ctx, h)
	if err != nil {
		return nil, fmt.Errorf("create hosting account: %w", err)
	}
	return created, nil
}

func (u *HostingUsecase) GetByID(ctx context.Context, id, ownerID string) (*domain.HostingAccount, error) {
	h, err := u.repo.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get hosting account: %w", err)
	}
	return h, nil
}

func (u *HostingUsecase) List(ctx context.Context, ownerID string) ([]*domain.HostingAccount, error) {
	accounts, err := u.repo.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list hosting accounts: %w", err)
	}
	return accounts, nil
}

func (u *HostingUsecase) Update(ctx context.Context, id string, input HostingAccountInput) (*domain.HostingAccount, error) {
	h := &domain.HostingAccount{
		ID:           id,
		OwnerID:      input.OwnerID,
		Name:         input.Name,
		Provider:     input.Provider,
		AccountEmail: input.AccountEmail,
		URL:          input.URL,
		RenewalDate:  input.RenewalDate,
		Notes:        input.Notes,
	}
	updated, err := u.repo.Update(ctx, h)
	if err != nil {
		return nil, fmt.Errorf("update hosting account: %w", err)
	}
	return updated, nil
}

func (u *HostingUsecase) Delete(ctx context.Context, id, ownerID string) error {
	if err := u.repo.Delete(ctx, id, ownerID); err != nil {
		return fmt.Errorf("delete hosting account: %w", err)
	}
	return nil
}
