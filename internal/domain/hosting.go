package domain

import (
	"errors"
	"time"
)

var ErrHostingAccountNotFound = errors.New("hosting account not found")

type HostingAccount struct {
	ID      string
	OwnerID string

	Name         string
	Provider     string
	AccountEmail string
	URL          string

	RenewalDate time.Time
	Notes       string

	CreatedAt time.Time
	UpdatedAt time.Time
}
