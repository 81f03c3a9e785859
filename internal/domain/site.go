package domain

import (
	"errors"
	"time"
)

var ErrSiteNotFound = errors.New("site not found")

type Site struct {
	ID       string
	OwnerID  string
	ClientID *string

	Domain       string
	RegistrarURL string

	// HostName is a copy of the hosting account's name taken at write time,
	// so lists render without a join. Stale after a hosting rename until the
	// site is next saved.
	HostingAccountID *string
	HostName         string

	ExpiryDate time.Time
	Notes      string

	CreatedAt time.Time
	UpdatedAt time.Time
}
