package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/agencydesk/agencydesk/internal/domain"
	"github.com/agencydesk/agencydesk/internal/repository"
)

type MobileAppUsecase struct {
	repo        repository.MobileAppRepository
	devAccounts repository.DeveloperAccountRepository
}

func NewMobileAppUsecase(repo repository.MobileAppRepository, devAccounts repository.DeveloperAccountRepository) *MobileAppUsecase {
	return &MobileAppUsecase{repo: repo, devAccounts: devAccounts}
}

type MobileAppInput struct {
	OwnerID            string
	ClientID           *string
	Name               string
	Platform           domain.Platform
	StoreURL           string
	DeveloperAccountID *string
	RenewalDate        time.Time
	Notes              string
}

// checkDevAccount rejects a dangling developer-account reference before the
// insert so the handler can return a domain error instead of a raw FK failure.
func (u *MobileAppUsecase) checkDevAccount(ctx context.Context, ownerID string, devAccountID *string) error {
	if devAccountID == nil {
		return nil
	}
	_, err := u.devAccounts.GetByID(ctx, *devAccountID, ownerID)
	return err
}

func (u *MobileAppUsecase) Create(ctx context.Context, input MobileAppInput) (*domain.MobileApp, error) {
	if input.Platform != domain.PlatformIOS && input.Platform != domain.PlatformAndroid {
		return nil, domain.ErrInvalidPlatform
	}
	if err := u.checkDevAccount(ctx, input.OwnerID, input.DeveloperAccountID); err != nil {
		return nil, fmt.Errorf("resolve developer account: %w", err)
	}

	a := &domain.MobileApp{
		OwnerID:            input.OwnerID,
		ClientID:           input.ClientID,
		Name:               input.Name,
		Platform:           input.Platform,
		StoreURL:           input.StoreURL,
		DeveloperAccountID: input.DeveloperAccountID,
		RenewalDate:        input.RenewalDate,
		Notes:              input.Notes,
	}
	created, err := u.repo.Create(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("create mobile app: %w", err)
	}
	return created, nil
}

func (u *MobileAppUsecase) GetByID(ctx context.Context, id, ownerID string) (*domain.MobileApp, error) {
	a, err := u.repo.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get mobile app: %w", err)
	}
	return a, nil
}

func (u *MobileAppUsecase) List(ctx context.Context, ownerID string) ([]*domain.MobileApp, error) {
	apps, err := u.repo.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list mobile apps: %w", err)
	}
	return apps, nil
}

func (u *MobileAppUsecase) Update(ctx context.Context, id string, input MobileAppInput) (*domain.MobileApp, error) {
	if input.Platform != domain.PlatformIOS && input.Platform != domain.PlatformAndroid {
		return nil, domain.ErrInvalidPlatform
	}
	if err := u.checkDevAccount(ctx, input.OwnerID, input.DeveloperAccountID); err != nil {
		return nil, fmt.Errorf("resolve developer account: %w", err)
	}

	a := &domain.MobileApp{
		ID:                 id,
		OwnerID:            input.OwnerID,
		ClientID:           input.ClientID,
		Name:               input.Name,
		Platform:           input.Platform,
		StoreURL:           input.StoreURL,
		DeveloperAccountID: input.DeveloperAccountID,
		RenewalDate:        input.RenewalDate,
		Notes:              input.Notes,
	}
	updated, err := u.repo.Update(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("update mobile app: %w", err)
	}
	return updated, nil
}

func (u *MobileAppUsecase) Delete(ctx context.Context, id, ownerID string) error {
	if err := u.repo.Delete(ctx, id, ownerID); err != nil {
		return fmt.Errorf("delete mobile app: %w", err)
	}
	return nil
}
