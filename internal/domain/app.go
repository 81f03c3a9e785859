package domain

import (
	"errors"
	"time"
)

var (
	ErrMobileAppNotFound = errors.New("mobile app not found")
	ErrInvalidPlatform   = errors.New("invalid platform")
)

type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
)

type MobileApp struct {
	ID       string
	OwnerID  string
	ClientID *string

	Name     string
	Platform Platform
	StoreURL string

	DeveloperAccountID *string

	RenewalDate time.Time
	Notes       string

	CreatedAt time.Time
	UpdatedAt time.Time
}
