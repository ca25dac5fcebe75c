package usecase

import (
	"context"
	"time"

	"calendar-assistant/internal/auth"
	repo "calendar-assistant/internal/user/repository"
)

// expiryMargin guards against clock skew and in-flight request latency: a
// cached token expiring within the margin is treated as already expired.
const expiryMargin = 60

// AccessToken implements the freshness protocol: reuse the cached access
// token while it has more than expiryMargin seconds left, otherwise refresh
// from the stored refresh token and persist the result. Two requests racing
// here may both refresh; both tokens are valid and the atomic upsert keeps
// the stored row consistent, so the race is accepted.
func (uc *implUseCase) AccessToken(ctx context.Context, email string) (string, error) {
	user, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		uc.l.Errorf(ctx, "uc.AccessToken GetByEmail: %v", err)
		return "", err
	}
	if user.Email == "" {
		return "", auth.ErrReauthRequired
	}

	now := time.Now().Unix()
	if user.AccessToken != "" && user.AccessTokenExpiresAt-expiryMargin > now {
		return user.AccessToken, nil
	}

	refreshed, err := uc.oauth.Refresh(ctx, user.RefreshToken)
	if err != nil {
		uc.l.Errorf(ctx, "uc.AccessToken Refresh: %v", err)
		return "", auth.ErrReauthRequired
	}

	if err := uc.repo.UpsertTokens(ctx, repo.UpsertTokensOptions{
		Email:        email,
		RefreshToken: user.RefreshToken,
		AccessToken:  refreshed.AccessToken,
		ExpiresAt:    expiryEpoch(refreshed.Expiry),
	}); err != nil {
		uc.l.Errorf(ctx, "uc.AccessToken UpsertTokens: %v", err)
		return "", err
	}

	return refreshed.AccessToken, nil
}
