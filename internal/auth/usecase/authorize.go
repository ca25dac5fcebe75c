package usecase

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"calendar-assistant/internal/auth"
	repo "calendar-assistant/internal/user/repository"
)

// defaultExpiresIn applies when the provider reports no token expiry.
const defaultExpiresIn = 3600 * time.Second

// BeginAuth issues a fresh anti-forgery state and the authorization URL.
func (uc *implUseCase) BeginAuth(ctx context.Context) (auth.BeginAuthOutput, error) {
	state, err := randomState()
	if err != nil {
		uc.l.Errorf(ctx, "uc.BeginAuth randomState: %v", err)
		return auth.BeginAuthOutput{}, err
	}
	return auth.BeginAuthOutput{
		URL:   uc.oauth.AuthCodeURL(state),
		State: state,
	}, nil
}

// HandleCallback exchanges the code, fetches identity and persists tokens.
// When Google omits refresh_token (re-consent), the stored one is kept.
func (uc *implUseCase) HandleCallback(ctx context.Context, code string) (auth.CallbackOutput, error) {
	tokens, err := uc.oauth.Exchange(ctx, code)
	if err != nil {
		uc.l.Errorf(ctx, "uc.HandleCallback Exchange: %v", err)
		return auth.CallbackOutput{}, err
	}

	info, err := uc.oauth.UserInfo(ctx, tokens.AccessToken)
	if err != nil {
		uc.l.Errorf(ctx, "uc.HandleCallback UserInfo: %v", err)
		return auth.CallbackOutput{}, err
	}

	existing, err := uc.repo.GetByEmail(ctx, info.Email)
	if err != nil {
		uc.l.Errorf(ctx, "uc.HandleCallback GetByEmail: %v", err)
		return auth.CallbackOutput{}, err
	}

	refreshToken := tokens.RefreshToken
	if refreshToken == "" {
		refreshToken = existing.RefreshToken
	}
	if refreshToken == "" {
		return auth.CallbackOutput{}, auth.ErrNoRefreshToken
	}

	if err := uc.repo.UpsertTokens(ctx, repo.UpsertTokensOptions{
		Email:        info.Email,
		RefreshToken: refreshToken,
		AccessToken:  tokens.AccessToken,
		ExpiresAt:    expiryEpoch(tokens.Expiry),
	}); err != nil {
		uc.l.Errorf(ctx, "uc.HandleCallback UpsertTokens: %v", err)
		return auth.CallbackOutput{}, err
	}

	return auth.CallbackOutput{Email: info.Email}, nil
}

// expiryEpoch converts a provider-reported expiry into epoch seconds,
// defaulting to now+3600s when the provider reported none.
func expiryEpoch(expiry time.Time) int64 {
	if expiry.IsZero() {
		return time.Now().Add(defaultExpiresIn).Unix()
	}
	return expiry.Unix()
}

// randomState returns a URL-safe one-time value binding the redirect to its
// callback.
func randomState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate state: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
