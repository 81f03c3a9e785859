package domain

import (
	"errors"
	"time"
)

var ErrClientNotFound = errors.New("client not found")

type Client struct {
	ID        string
	OwnerID   string
	Name      string
	Company   string
	Email     string
	Phone     string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
