package http

import (
	"calendar-assistant/internal/auth"
	"calendar-assistant/pkg/log"
)

// Cookie lifetimes. The state cookie only needs to survive the provider
// round-trip; the session cookie matches the original 30-day window.
const (
	StateCookieName   = "oauth_state"
	StateCookieMaxAge = 600 // seconds

	SessionCookieMaxAge = 60 * 60 * 24 * 30 // seconds
)

type handler struct {
	l             log.Logger
	uc            auth.UseCase
	sessionSecret string
}

// New creates a new HTTP handler for the auth domain.
func New(l log.Logger, uc auth.UseCase, sessionSecret string) *handler {
	return &handler{
		l:             l,
		uc:            uc,
		sessionSecret: sessionSecret,
	}
}
