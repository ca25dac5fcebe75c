package httpserver

import (
	"context"

	"calendar-assistant/internal/assistant"
	"calendar-assistant/internal/auth"
	authHTTP "calendar-assistant/internal/auth/delivery/http"
	authUC "calendar-assistant/internal/auth/usecase"
	calendarHTTP "calendar-assistant/internal/calendar/delivery/http"
	calendarUC "calendar-assistant/internal/calendar/usecase"
	"calendar-assistant/internal/middleware"
	userRepo "calendar-assistant/internal/user/repository/postgre"
)

// setupAuthDomain initializes the OAuth/session domain and registers its
// routes. Returns the usecase so the calendar domain can mint access tokens.
func (srv HTTPServer) setupAuthDomain(ctx context.Context, mw middleware.Middleware) auth.UseCase {
	// 1. Repository
	repo := userRepo.New(srv.postgresDB, srv.l)

	// 2. UseCase
	uc := authUC.New(srv.l, repo, srv.oauth)

	// 3. HTTP Handler
	h := authHTTP.New(srv.l, uc, srv.sessionSecret)

	// 4. Routes: /auth/google, /oauth2/callback, /logout, /api/me
	authHTTP.RegisterRoutes(srv.gin, h, mw)

	srv.l.Infof(ctx, "Auth domain registered")
	return uc
}

// setupCalendarDomain initializes the calendar and assistant domain and
// registers its routes.
func (srv HTTPServer) setupCalendarDomain(ctx context.Context, mw middleware.Middleware, tokens auth.UseCase) {
	// 1. Translator (one LLM call per schedule request)
	translator := assistant.New(srv.l, srv.llm)

	// 2. UseCase: nil factory means real per-request Google Calendar clients
	uc := calendarUC.New(srv.l, tokens, translator, nil)

	// 3. HTTP Handler
	h := calendarHTTP.New(srv.l, uc)

	// 4. Routes: /api/calendar/events, /api/assistant/schedule
	calendarHTTP.RegisterRoutes(srv.gin, h, mw, srv.assistantRateLimitPerMin)

	srv.l.Infof(ctx, "Calendar domain registered")
}
