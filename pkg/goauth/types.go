package goauth

import (
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// Config holds Google OAuth client configuration.
// Endpoint and UserInfoURL are overridable for tests.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string

	Endpoint    oauth2.Endpoint
	UserInfoURL string
	HTTPClient  *http.Client
}

// Token is the subset of a provider token response this service cares about.
// A zero Expiry means the provider did not report one.
type Token struct {
	AccessToken  string
	RefreshToken string
	Expiry       time.Time
}

// UserInfo is the authenticated user's identity.
type UserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
