package http

import (
	"errors"
	"net/http"

	"google.golang.org/api/googleapi"

	"calendar-assistant/internal/assistant"
	"calendar-assistant/internal/auth"
	"calendar-assistant/internal/calendar"

	gcal "google.golang.org/api/calendar/v3"

	pkgErrors "calendar-assistant/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Upstream failures carry the upstream status where the API reported one.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrReauthRequired):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "No tokens. Re-auth at /auth/google")
	case errors.Is(err, calendar.ErrMissingQuery):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Missing query")
	case errors.Is(err, assistant.ErrEmptyResponse),
		errors.Is(err, assistant.ErrMalformedJSON),
		errors.Is(err, assistant.ErrIncompleteEvent):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, err.Error())
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return pkgErrors.NewHTTPError(apiErr.Code, apiErr.Message)
	}

	return pkgErrors.NewHTTPError(http.StatusBadGateway, "upstream service error")
}

// createInput builds the usecase input for event creation.
func createInput(email string, event *gcal.Event) calendar.CreateEventInput {
	return calendar.CreateEventInput{Email: email, Event: event}
}
