package postgre

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"calendar-assistant/internal/model"
	repo "calendar-assistant/internal/user/repository"
)

// GetByEmail retrieves a single user by email.
// Returns zero-value User (Email == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	const query = `
		SELECT id, email, google_refresh_token,
		       COALESCE(google_access_token, ''),
		       COALESCE(google_access_token_expires_at, 0)
		FROM users WHERE email = $1`

	var u model.User
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.RefreshToken, &u.AccessToken, &u.AccessTokenExpiresAt,
	)
	if err == sql.ErrNoRows {
		return model.User{}, nil // not found → zero value, no error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetByEmail"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

// UpsertTokens inserts or updates the row keyed by email in one statement.
// The CASE keeps the stored refresh token when the incoming one is empty, so
// concurrent writers racing on a refresh cannot null it out.
func (r *implRepository) UpsertTokens(ctx context.Context, opt repo.UpsertTokensOptions) error {
	const query = `
		INSERT INTO users (id, email, google_refresh_token, google_access_token, google_access_token_expires_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE SET
			google_refresh_token = CASE
				WHEN EXCLUDED.google_refresh_token = '' THEN users.google_refresh_token
				ELSE EXCLUDED.google_refresh_token
			END,
			google_access_token = EXCLUDED.google_access_token,
			google_access_token_expires_at = EXCLUDED.google_access_token_expires_at`

	_, err := r.db.ExecContext(ctx, query,
		uuid.NewString(), opt.Email, opt.RefreshToken, opt.AccessToken, opt.ExpiresAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertTokens"), err)
		return repo.ErrFailedToUpsert
	}
	return nil
}
