package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/auth"
)

// Demo devotee credentials seeded with MATHA_DO_SEED=true.
const (
	DemoUserEmail    = "demo@example.com"
	DemoUserPassword = "changeme"
	DemoUserName     = "Demo User"
)

// Seed creates initial demo data in the database when enabled.
func Seed(ctx context.Context, db *sql.DB, enabled bool) error {
	if !enabled {
		return nil
	}

	queries := New(db)

	// Check if the demo devotee already exists
	_, err := queries.GetUserByEmail(ctx, DemoUserEmail)
	if err == nil {
		slog.Info("demo devotee already exists, skipping seed")
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("checking for demo devotee: %w", err)
	}

	passwordHash, err := auth.HashPassword(DemoUserPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	now := time.Now()
	user, err := queries.CreateUser(ctx, CreateUserParams{
		Email:        DemoUserEmail,
		PasswordHash: passwordHash,
		FullName:     DemoUserName,
		Mobile:       "9000000000",
		Consent:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return fmt.Errorf("creating demo devotee: %w", err)
	}

	slog.Info("created demo devotee account",
		"id", user.ID,
		"email", user.Email,
	)

	return nil
}
