package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/agencydesk/agencydesk/internal/domain"
	"github.com/agencydesk/agencydesk/internal/repository"
)

type SiteUsecase struct {
	repo    repository.SiteRepository
	hosting repository.HostingAccountRepository
}

func NewSiteUsecase(repo repository.SiteRepository, hosting repository.HostingAccountRepository) *SiteUsecase {
	return &SiteUsecase{repo: repo, hosting: hosting}
}

type SiteInput struct {
	OwnerID          string
	ClientID         *string
	Domain           string
	RegistrarURL     string
	HostingAccountID *string
	ExpiryDate       time.Time
	Notes            string
}

// resolveHostName copies the hosting account's current name into the site so
// lists render without a join. A dangling hosting reference is rejected here
// rather than left to the FK constraint so the handler gets a domain error.
func (u *SiteUsecase) resolveHostName(ctx context.Context, ownerID string, hostingAccountID *string) (string, error) {
	if hostingAccountID == nil {
		return "", nil
	}
	h, err := u.hosting.GetByID(ctx, *hostingAccountID, ownerID)
	if err != nil {
		return "", err
	}
	return h.Name, nil
}

func (u *SiteUsecase) Create(ctx context.Context, input SiteInput) (*domain.Site, error) {
	hostName, err := u.resolveHostName(ctx, input.OwnerID, input.HostingAccountID)
	if err != nil {
		return nil, fmt.Errorf("resolve hosting account: %w", err)
	}

	s := &domain.Site{
		OwnerID:          input.OwnerID,
		ClientID:         input.ClientID,
		Domain:           input.Domain,
		RegistrarURL:     input.RegistrarURL,
		HostingAccountID: input.HostingAccountID,
		HostName:         hostName,
		ExpiryDate:       input.ExpiryDate,
		Notes:            input.Notes,
	}
	created, err := u.repo.Create(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("create site: %w", err)
	}
	return created, nil
}

func (u *SiteUsecase) GetByID(ctx context.Context, id, ownerID string) (*domain.Site, error) {
	s, err := u.repo.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get site: %w", err)
	}
	return s, nil
}

func (u *SiteUsecase) List(ctx context.Context, ownerID string) ([]*domain.Site, error) {
	sites, err := u.repo.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list sites: %w", err)
	}
	return sites, nil
}

func (u *SiteUsecase) Update(ctx context.Context, id string, input SiteInput) (*domain.Site, error) {
	hostName, err := u.resolveHostName(ctx, input.OwnerID, input.HostingAccountID)
	if err != nil {
		return nil, fmt.Errorf("resolve hosting account: %w", err)
	}

	s := &domain.Site{
		ID:               id,
		OwnerID:          input.OwnerID,
		ClientID:         input.ClientID,
		Domain:           input.Domain,
		RegistrarURL:     input.RegistrarURL,
		HostingAccountID: input.HostingAccountID,
		HostName:         hostName,
		ExpiryDate:       input.ExpiryDate,
		Notes:            input.Notes,
	}
	updated, err := u.repo.Update(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("update site: %w", err)
	}
	return updated, nil
}

func (u *SiteUsecase) Delete(ctx context.Context, id, ownerID string) error {
	if err := u.repo.Delete(ctx, id, ownerID); err != nil {
		return fmt.Errorf("delete site: %w", err)
	}
	return nil
}
