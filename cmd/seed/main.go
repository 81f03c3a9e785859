// seed inserts a test user plus records at assorted expiry offsets into the
// local dev database, so the renewal endpoints and the monitor have something
// to chew on. Run: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/agencydesk/agencydesk/internal/domain"
	"github.com/agencydesk/agencydesk/internal/infrastructure/postgres"
)

const seedEmail = "seed@test.local"

// offsets in days from today; negative means already expired
var siteOffsets = []struct {
	domain string
	days   int
}{
	{"acme-plumbing.com", 45},
	{"northside-bakery.com", 30}, // exactly on the lookahead boundary
	{"riverview-dental.com", 14},
	{"hilltop-garage.com", 3},
	{"sunset-florist.com", 0},
	{"oldtown-books.com", -12}, // expired, still surfaces
}

var hostingOffsets = []struct {
	name string
	days int
}{
	{"Hetzner shared box", 21},
	{"DigitalOcean droplet", 3},
	{"AWS Lightsail", -2},
}

var appOffsets = []struct {
	name     string
	platform domain.Platform
	days     int
}{
	{"Acme Field App", domain.PlatformIOS, 29},
	{"Bakery Loyalty", domain.PlatformAndroid, 7},
}

func main() {
	ctx := context.Background()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pool, err := postgres.NewPool(ctx, databaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	users := postgres.NewUserRepository(pool)
	user, err := users.FindOrCreate(ctx, seedEmail)
	if err != nil {
		log.Fatalf("seed user: %v", err)
	}
	fmt.Printf("seed user: %s (%s)\n", user.Email, user.ID)

	today := time.Now().UTC().Truncate(24 * time.Hour)

	sites := postgres.NewSiteRepository(pool)
	for _, s := range siteOffsets {
		_, err := sites.Create(ctx, &domain.Site{
			OwnerID:    user.ID,
			Domain:     s.domain,
			ExpiryDate: today.AddDate(0, 0, s.days),
		})
		if err != nil {
			log.Fatalf("seed site %s: %v", s.domain, err)
		}
	}
	fmt.Printf("seeded %d sites\n", len(siteOffsets))

	hosting := postgres.NewHostingAccountRepository(pool)
	for _, h := range hostingOffsets {
		_, err := hosting.Create(ctx, &domain.HostingAccount{
			OwnerID:     user.ID,
			Name:        h.name,
			RenewalDate: today.AddDate(0, 0, h.days),
		})
		if err != nil {
			log.Fatalf("seed hosting %s: %v", h.name, err)
		}
	}
	fmt.Printf("seeded %d hosting accounts\n", len(hostingOffsets))

	apps := postgres.NewMobileAppRepository(pool)
	for _, a := range appOffsets {
		_, err := apps.Create(ctx, &domain.MobileApp{
			OwnerID:     user.ID,
			Name:        a.name,
			Platform:    a.platform,
			RenewalDate: today.AddDate(0, 0, a.days),
		})
		if err != nil {
			log.Fatalf("seed app %s: %v", a.name, err)
		}
	}
	fmt.Printf("seeded %d mobile apps\n", len(appOffsets))

	settings := postgres.NewReminderSettingsRepository(pool)
	if _, err := settings.GetOrCreate(ctx, user.ID); err != nil {
		log.Fatalf("seed settings: %v", err)
	}
	fmt.Println("seeded reminder settings (all lead times on)")
}
