package goauth

import "errors"

var (
	ErrTokenExchange = errors.New("goauth: token exchange failed")
	ErrRefresh       = errors.New("goauth: access token refresh failed")
	ErrUserInfo      = errors.New("goauth: user info fetch failed")
)
