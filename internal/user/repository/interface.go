package repository

import (
	"context"

	"calendar-assistant/internal/model"
)

// Repository is the token store: one row per user email.
type Repository interface {
	// GetByEmail returns the zero-value User (Email == "") when not found.
	// Absent is not an error.
	GetByEmail(ctx context.Context, email string) (model.User, error)

	// UpsertTokens atomically inserts or updates the row keyed by email.
	// An empty RefreshToken preserves the stored one (Google omits
	// refresh_token on re-consent).
	UpsertTokens(ctx context.Context, opt UpsertTokensOptions) error
}
