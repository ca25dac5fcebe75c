package usecase

import (
	"context"

	gcal "google.golang.org/api/calendar/v3"

	"calendar-assistant/internal/calendar"
	"calendar-assistant/pkg/gcalendar"
)

// ListEvents lists the user's events in the requested window.
func (uc *implUseCase) ListEvents(ctx context.Context, input calendar.ListEventsInput) (*gcal.Events, error) {
	client, err := uc.clientFor(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	events, err := client.ListEvents(ctx, gcalendar.ListEventsRequest{
		TimeMin: input.TimeMin,
		TimeMax: input.TimeMax,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListEvents: %v", err)
		return nil, err
	}
	return events, nil
}

// CreateEvent forwards the event payload to the calendar API unchanged.
func (uc *implUseCase) CreateEvent(ctx context.Context, input calendar.CreateEventInput) (*gcal.Event, error) {
	client, err := uc.clientFor(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	created, err := client.CreateEvent(ctx, "", input.Event)
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateEvent: %v", err)
		return nil, err
	}
	return created, nil
}

// clientFor runs the token freshness check and builds a per-request client.
func (uc *implUseCase) clientFor(ctx context.Context, email string) (calendar.Client, error) {
	accessToken, err := uc.tokens.AccessToken(ctx, email)
	if err != nil {
		return nil, err
	}
	return uc.newClient(ctx, accessToken)
}
