package domain_test

import (
	"testing"
	"time"

	"github.com/agencydesk/agencydesk/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ---- DaysUntil ----

func TestDaysUntil_WholeDays(t *testing.T) {
	asOf := date(2024, 1, 1)

	cases := []struct {
		expiry time.Time
		want   int
	}{
		{date(2024, 1, 1), 0},
		{date(2024, 1, 2), 1},
		{date(2024, 1, 31), 30},
		{date(2023, 12, 20), -12},
	}
	for _, c := range cases {
		if got := domain.DaysUntil(c.expiry, asOf); got != c.want {
			t.Errorf("DaysUntil(%s) = %d, want %d", c.expiry.Format("2006-01-02"), got, c.want)
		}
	}
}

func TestDaysUntil_PartialDayRoundsUp(t *testing.T) {
	// Scan running at 08:00 with an expiry at next midnight still counts
	// the remaining fraction as a full day.
	asOf := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	expiry := date(2024, 1, 4)

	if got := domain.DaysUntil(expiry, asOf); got != 3 {
		t.Errorf("DaysUntil = %d, want 3", got)
	}
}

// ---- Classify ----

func TestClassify_TierBoundaries(t *testing.T) {
	cases := []struct {
		days int
		want domain.Tier
	}{
		{-12, domain.TierExpired},
		{0, domain.TierExpired},
		{1, domain.TierCritical},
		{3, domain.TierCritical}, // boundary goes to the more urgent tier
		{4, domain.TierWarning},
		{14, domain.TierWarning},
		{15, domain.TierNotice},
		{30, domain.TierNotice},
	}
	for _, c := range cases {
		if got := domain.Classify(c.days); got != c.want {
			t.Errorf("Classify(%d) = %s, want %s", c.days, got, c.want)
		}
	}
}

// ---- Aggregate ----

func TestAggregate_InclusiveLookaheadBoundary(t *testing.T) {
	asOf := date(2024, 1, 1)
	sites := []*domain.Site{
		{ID: "on-boundary", Domain: "a.com", ExpiryDate: date(2024, 1, 31)},  // asOf + 30
		{ID: "past-boundary", Domain: "b.com", ExpiryDate: date(2024, 2, 1)}, // asOf + 31
	}

	items := domain.Aggregate(asOf, 30, sites, nil, nil)

	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].SourceID != "on-boundary" {
		t.Errorf("included %q, want on-boundary", items[0].SourceID)
	}
	if items[0].DaysLeft != 30 {
		t.Errorf("DaysLeft = %d, want 30", items[0].DaysLeft)
	}
}

func TestAggregate_ExpiredItemsIncluded(t *testing.T) {
	asOf := date(2024, 1, 1)
	apps := []*domain.MobileApp{
		{ID: "app-1", Name: "Loyalty", RenewalDate: date(2023, 12, 20)},
	}

	items := domain.Aggregate(asOf, 30, nil, nil, apps)

	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].DaysLeft != -12 {
		t.Errorf("DaysLeft = %d, want -12", items[0].DaysLeft)
	}
	if items[0].Tier != domain.TierExpired {
		t.Errorf("Tier = %s, want expired", items[0].Tier)
	}
}

func TestAggregate_PreservesInputOrderWithinKind(t *testing.T) {
	asOf := date(2024, 1, 1)
	sites := []*domain.Site{
		{ID: "s1", Domain: "first.com", ExpiryDate: date(2024, 1, 20)},
		{ID: "s2", Domain: "second.com", ExpiryDate: date(2024, 1, 5)},
		{ID: "s3", Domain: "third.com", ExpiryDate: date(2024, 1, 10)},
	}

	items := domain.Aggregate(asOf, 30, sites, nil, nil)

	want := []string{"s1", "s2", "s3"}
	if len(items) != len(want) {
		t.Fatalf("got %d items, want %d", len(items), len(want))
	}
	for i, id := range want {
		if items[i].SourceID != id {
			t.Errorf("items[%d].SourceID = %q, want %q", i, items[i].SourceID, id)
		}
	}
}

func TestAggregate_AllThreeKinds(t *testing.T) {
	asOf := date(2024, 1, 1)
	sites := []*domain.Site{{ID: "s", Domain: "a.com", ExpiryDate: date(2024, 1, 10)}}
	hosts := []*domain.HostingAccount{{ID: "h", Name: "box", RenewalDate: date(2024, 1, 10)}}
	apps := []*domain.MobileApp{{ID: "a", Name: "app", RenewalDate: date(2024, 1, 10)}}

	items := domain.Aggregate(asOf, 30, sites, hosts, apps)

	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	kinds := map[domain.SourceKind]bool{}
	for _, it := range items {
		kinds[it.Kind] = true
	}
	for _, k := range []domain.SourceKind{domain.KindSite, domain.KindHosting, domain.KindMobileApp} {
		if !kinds[k] {
			t.Errorf("missing kind %s", k)
		}
	}
}

func TestAggregate_ZeroLookaheadDefaultsTo30(t *testing.T) {
	asOf := date(2024, 1, 1)
	sites := []*domain.Site{
		{ID: "in", Domain: "a.com", ExpiryDate: date(2024, 1, 31)},
		{ID: "out", Domain: "b.com", ExpiryDate: date(2024, 2, 1)},
	}

	items := domain.Aggregate(asOf, 0, sites, nil, nil)

	if len(items) != 1 || items[0].SourceID != "in" {
		t.Errorf("default lookahead should include exactly the +30 site, got %v", items)
	}
}

// ---- ReminderDue ----

func allEnabled() *domain.ReminderSettings {
	return domain.DefaultReminderSettings("owner-1")
}

func TestReminderDue_ExactMatchOnly(t *testing.T) {
	s := allEnabled()

	due := map[int]bool{30: true, 14: true, 3: true, 0: true}
	for days := -40; days <= 40; days++ {
		if got := domain.ReminderDue(days, s); got != due[days] {
			t.Errorf("ReminderDue(%d) = %v, want %v", days, got, due[days])
		}
	}
}

func TestReminderDue_DisabledFlagSuppresses(t *testing.T) {
	s := allEnabled()
	s.ThreeDays = false

	if domain.ReminderDue(3, s) {
		t.Error("ReminderDue(3) with three_days off should be false")
	}
	if !domain.ReminderDue(14, s) {
		t.Error("ReminderDue(14) should still fire")
	}
}

// ---- spec-style scenarios ----

func TestScenario_HostingThreeDaysOut(t *testing.T) {
	asOf := date(2024, 1, 1)
	hosts := []*domain.HostingAccount{
		{ID: "h1", Name: "prod box", RenewalDate: date(2024, 1, 4)},
	}

	items := domain.Aggregate(asOf, 30, nil, hosts, nil)
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	item := items[0]

	if item.DaysLeft != 3 {
		t.Errorf("DaysLeft = %d, want 3", item.DaysLeft)
	}
	if item.Tier != domain.TierCritical {
		t.Errorf("Tier = %s, want critical", item.Tier)
	}

	s := allEnabled()
	if !domain.ReminderDue(item.DaysLeft, s) {
		t.Error("reminder should be due with three_days on")
	}
	s.ThreeDays = false
	if domain.ReminderDue(item.DaysLeft, s) {
		t.Error("reminder should not be due with three_days off")
	}
}

func TestScenario_ExpiredAppNeverDue(t *testing.T) {
	asOf := date(2024, 1, 1)
	apps := []*domain.MobileApp{
		{ID: "a1", Name: "Loyalty", RenewalDate: date(2023, 12, 20)},
	}

	items := domain.Aggregate(asOf, 30, nil, nil, apps)
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].Tier != domain.TierExpired {
		t.Errorf("Tier = %s, want expired", items[0].Tier)
	}
	if domain.ReminderDue(items[0].DaysLeft, allEnabled()) {
		t.Error("-12 days matches no lead time, reminder must not fire")
	}
}
