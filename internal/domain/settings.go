package domain

import "time"

// ReminderSettings controls which renewal reminders a user receives.
// Exactly one row exists per owner; first access creates it with every
// lead time enabled.
type ReminderSettings struct {
	ID      string
	OwnerID string

	EmailEnabled bool

	OneMonth    bool
	TwoWeeks    bool
	ThreeDays   bool
	OnExpiryDay bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultReminderSettings is the record shape created on first access.
func DefaultReminderSettings(ownerID string) *ReminderSettings {
	return &ReminderSettings{
		OwnerID:      ownerID,
		EmailEnabled: true,
		OneMonth:     true,
		TwoWeeks:     true,
		ThreeDays:    true,
		OnExpiryDay:  true,
	}
}
