// seedadmin bootstraps a fresh installation: it creates the admin account
// and the station-settings row if they do not exist yet.
//
// Usage:
//
//	SEED_ADMIN_USERNAME=admin SEED_ADMIN_PASSWORD=... SEED_STATION_NAME="Emirate FM" go run ./cmd/seedadmin
//
// Idempotent: running it against an already-seeded database changes nothing.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/emiratefm/airtime-billing/internal/domain/entity"
	"github.com/emiratefm/airtime-billing/internal/infrastructure/postgres"
	"github.com/emiratefm/airtime-billing/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("load configuration: %v", err)
	}

	username := envOr("SEED_ADMIN_USERNAME", "admin")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		fail("SEED_ADMIN_PASSWORD is required")
	}
	stationName := envOr("SEED_STATION_NAME", "Emirate FM")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("connect to PostgreSQL: %v", err)
	}
	defer pool.Close()

	now := time.Now()

	// ── Admin account ─────────────────────────────────────────────────────────
	userRepo := postgres.NewUserRepository(pool)
	existing, err := userRepo.GetByUsername(username)
	if err != nil {
		fail("look up admin: %v", err)
	}
	if existing != nil {
		fmt.Printf("user %q already exists, skipping\n", username)
	} else {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			fail("hash password: %v", err)
		}
		err = userRepo.Create(&entity.User{
			ID:           uuid.New().String(),
			Username:     username,
			PasswordHash: string(hash),
			Role:         entity.RoleAdmin,
			Active:       true,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			fail("create admin: %v", err)
		}
		fmt.Printf("created admin user %q\n", username)
	}

	// ── Station row ───────────────────────────────────────────────────────────
	stationRepo := postgres.NewStationRepository(pool)
	station, err := stationRepo.Get()
	if err != nil {
		fail("look up station: %v", err)
	}
	if station != nil {
		fmt.Printf("station %q already exists, skipping\n", station.Name)
		return
	}
	err = stationRepo.Create(&entity.Station{
		ID:            uuid.New().String(),
		Name:          stationName,
		InvoicePrefix: cfg.Billing.InvoicePrefix,
		ReceiptPrefix: cfg.Billing.ReceiptPrefix,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		fail("create station: %v", err)
	}
	fmt.Printf("created station %q\n", stationName)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
