package domain

import (
	"errors"
	"time"
)

var ErrDeveloperAccountNotFound = errors.New("developer account not found")

type DeveloperAccount struct {
	ID      string
	OwnerID string

	Provider     string // apple, google, ...
	AccountEmail string
	URL          string

	RenewalDate time.Time
	Notes       string

	CreatedAt time.Time
	UpdatedAt time.Time
}
