package auth

import "errors"

var (
	// ErrNoRefreshToken means the provider withheld a refresh token and none
	// was previously stored for this user.
	ErrNoRefreshToken = errors.New("no refresh token obtainable")

	// ErrReauthRequired means no usable credentials exist for the user; they
	// must go through /auth/google again.
	ErrReauthRequired = errors.New("reauthorization required")
)
