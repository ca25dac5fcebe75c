package auth

import (
	"context"

	"calendar-assistant/pkg/goauth"
)

// UseCase drives the OAuth token lifecycle: authorize, exchange, store,
// refresh-on-expiry.
type UseCase interface {
	// BeginAuth issues a fresh anti-forgery state and the authorization URL
	// embedding it.
	BeginAuth(ctx context.Context) (BeginAuthOutput, error)

	// HandleCallback exchanges the authorization code, resolves the user's
	// identity and persists tokens. When the provider omits a refresh token
	// the previously stored one is kept; ErrNoRefreshToken when neither exists.
	HandleCallback(ctx context.Context, code string) (CallbackOutput, error)

	// AccessToken returns a bearer token for the user, refreshing and
	// persisting it when the cached one expires within the safety margin.
	// ErrReauthRequired when no credentials are stored or the refresh fails.
	AccessToken(ctx context.Context, email string) (string, error)
}

// OAuthProvider is the slice of pkg/goauth the usecase needs; narrowed for tests.
type OAuthProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (goauth.Token, error)
	Refresh(ctx context.Context, refreshToken string) (goauth.Token, error)
	UserInfo(ctx context.Context, accessToken string) (goauth.UserInfo, error)
}
