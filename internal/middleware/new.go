package middleware

import (
	"calendar-assistant/pkg/log"
)

// ContextKeyEmail is the gin context key the Auth middleware stores the
// verified user email under.
const ContextKeyEmail = "email"

type Middleware struct {
	l             log.Logger
	sessionSecret string
}

func New(l log.Logger, sessionSecret string) Middleware {
	return Middleware{
		l:             l,
		sessionSecret: sessionSecret,
	}
}
