package domain

import "time"

// SourceKind tags which collection an expiring item came from.
type SourceKind string

const (
	KindSite      SourceKind = "site"
	KindHosting   SourceKind = "hosting"
	KindMobileApp SourceKind = "mobile-app"
)

// Tier is the urgency bucket of an expiring item. Boundaries belong to the
// more urgent tier: exactly 3 days is Critical, exactly 14 is Warning,
// exactly 30 is Notice.
type Tier string

const (
	TierExpired  Tier = "expired"
	TierCritical Tier = "critical" // 1-3 days
	TierWarning  Tier = "warning"  // 4-14 days
	TierNotice   Tier = "notice"   // 15-30 days
)

// ExpiringItem is derived on each aggregation pass and never persisted.
type ExpiringItem struct {
	SourceID    string
	Kind        SourceKind
	DisplayName string
	ExpiryDate  time.Time
	DaysLeft    int
	Tier        Tier
}

// DefaultLookaheadDays bounds how far ahead the aggregator looks.
const DefaultLookaheadDays = 30

// DaysUntil returns the number of days from asOf until expiry, rounded up.
// Zero means expiry day, negative means already expired.
func DaysUntil(expiry, asOf time.Time) int {
	d := expiry.Sub(asOf)
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) > 0 {
		days++
	}
	return days
}

// Classify maps days-until-expiry to an urgency tier. Anything past the
// lookahead window never reaches classification; the aggregator excludes it.
func Classify(daysLeft int) Tier {
	switch {
	case daysLeft <= 0:
		return TierExpired
	case daysLeft <= 3:
		return TierCritical
	case daysLeft <= 14:
		return TierWarning
	default:
		return TierNotice
	}
}

// Aggregate produces the unified expiring-items list for one owner. It is a
// pure function: callers supply the owner's complete collections and the
// reference date. A record is included iff its expiry falls on or before
// asOf + lookaheadDays; already-expired records are always included. Input
// order is preserved within each kind.
func Aggregate(asOf time.Time, lookaheadDays int, sites []*Site, hosts []*HostingAccount, apps []*MobileApp) []ExpiringItem {
	if lookaheadDays <= 0 {
		lookaheadDays = DefaultLookaheadDays
	}
	cutoff := asOf.AddDate(0, 0, lookaheadDays)

	var items []ExpiringItem

	add := func(id string, kind SourceKind, name string, expiry time.Time) {
		if expiry.After(cutoff) {
			return
		}
		days := DaysUntil(expiry, asOf)
		items = append(items, ExpiringItem{
			SourceID:    id,
			Kind:        kind,
			DisplayName: name,
			ExpiryDate:  expiry,
			DaysLeft:    days,
			Tier:        Classify(days),
		})
	}

	for _, s := range sites {
		add(s.ID, KindSite, s.Domain, s.ExpiryDate)
	}
	for _, h := range hosts {
		add(h.ID, KindHosting, h.Name, h.RenewalDate)
	}
	for _, a := range apps {
		add(a.ID, KindMobileApp, a.Name, a.RenewalDate)
	}

	return items
}

// ReminderDue reports whether a reminder fires today for the given
// days-until-expiry. This is an exact-match schedule: each enabled lead time
// fires once, on its matching day, unlike the aggregator's inclusive window.
func ReminderDue(daysLeft int, s *ReminderSettings) bool {
	switch daysLeft {
	case 30:
		return s.OneMonth
	case 14:
		return s.TwoWeeks
	case 3:
		return s.ThreeDays
	case 0:
		return s.OnExpiryDay
	default:
		return false
	}
}
