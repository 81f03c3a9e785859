package usecase

import (
	"context"
	"fmt"

	"github.com/agencydesk/agencydesk/internal/domain"
	"github.com/agencydesk/agencydesk/internal/repository"
)

type ClientUsecase struct {
	repo repository.ClientRepository
}

func NewClientUsecase(repo repository.ClientRepository) *ClientUsecase {
	return &ClientUsecase{repo: repo}
}

type ClientInput struct {
	OwnerID string
	Name    string
	Company string
	Email   string
	Phone   string
	Notes   string
}

func (u *ClientUsecase) Create(ctx context.Context, input ClientInput) (*domain.Client, error) {
	c := &domain.Client{
		OwnerID: input.OwnerID,
		Name:    input.Name,
		Company: input.Company,
		Email:   input.Email,
		Phone:   input.Phone,
		Notes:   input.Notes,
	}
	created, err := u.repo.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return created, nil
}

func (u *ClientUsecase) GetByID(ctx context.Context, id, ownerID string) (*domain.Client, error) {
	c, err := u.repo.GetByID(ctx, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

func (u *ClientUsecase) List(ctx context.Context, ownerID string) ([]*domain.Client, error) {
	clients, err := u.repo.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

func (u *ClientUsecase) Update(ctx context.Context, id string, input ClientInput) (*domain.Client, error) {
	c := &domain.Client{
		ID:      id,
		OwnerID: input.OwnerID,
		Name:    input.Name,
		Company: input.Company,
		Email:   input.Email,
		Phone:   input.Phone,
		Notes:   input.Notes,
	}
	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}
	return updated, nil
}

func (u *ClientUsecase) Delete(ctx context.Context, id, ownerID string) error {
	if err := u.repo.Delete(ctx, id, ownerID); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}
