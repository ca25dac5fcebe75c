package calendar

import (
	"context"

	gcal "google.golang.org/api/calendar/v3"

	"calendar-assistant/pkg/gcalendar"
)

// UseCase exposes the calendar operations behind the API surface. Results
// are the calendar API's own payloads, relayed unchanged to the caller.
type UseCase interface {
	ListEvents(ctx context.Context, input ListEventsInput) (*gcal.Events, error)
	CreateEvent(ctx context.Context, input CreateEventInput) (*gcal.Event, error)

	// Schedule translates a natural-language request into an event and
	// creates it: exactly one LLM call, then exactly one create call.
	Schedule(ctx context.Context, input ScheduleInput) (*gcal.Event, error)
}

// TokenSource yields a fresh bearer token for a user (the auth usecase).
type TokenSource interface {
	AccessToken(ctx context.Context, email string) (string, error)
}

// Client is the slice of pkg/gcalendar the usecase needs; narrowed for tests.
type Client interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) (*gcal.Events, error)
	CreateEvent(ctx context.Context, calendarID string, event *gcal.Event) (*gcal.Event, error)
}

// ClientFactory builds a Client per request from the caller's access token;
// clients are stateless and never shared across requests.
type ClientFactory func(ctx context.Context, accessToken string) (Client, error)
