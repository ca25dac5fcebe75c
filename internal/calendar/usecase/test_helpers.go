package usecase

import (
	"context"

	gcal "google.golang.org/api/calendar/v3"

	"calendar-assistant/internal/assistant"
	"calendar-assistant/internal/calendar"
	"calendar-assistant/pkg/gcalendar"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock token source for testing
type mockTokenSource struct {
	token string
	err   error
	calls int
	email string
}

func (m *mockTokenSource) AccessToken(ctx context.Context, email string) (string, error) {
	m.calls++
	m.email = email
	return m.token, m.err
}

// Mock translator for testing
type mockTranslator struct {
	event     *gcal.Event
	err       error
	calls     int
	lastInput assistant.TranslateInput
}

func (m *mockTranslator) Translate(ctx context.Context, input assistant.TranslateInput) (*gcal.Event, error) {
	m.calls++
	m.lastInput = input
	return m.event, m.err
}

// Mock calendar client for testing
type mockClient struct {
	events      *gcal.Events
	listErr     error
	created     *gcal.Event
	createErr   error
	listCalls   int
	createCalls int
	lastListReq gcalendar.ListEventsRequest
	lastCreated *gcal.Event
	lastCalID   string
}

func (m *mockClient) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) (*gcal.Events, error) {
	m.listCalls++
	m.lastListReq = req
	return m.events, m.listErr
}

func (m *mockClient) CreateEvent(ctx context.Context, calendarID string, event *gcal.Event) (*gcal.Event, error) {
	m.createCalls++
	m.lastCalID = calendarID
	m.lastCreated = event
	return m.created, m.createErr
}

// factoryFor returns a ClientFactory handing out the given mock, recording
// the access token it was built with.
func factoryFor(client *mockClient, gotToken *string) calendar.ClientFactory {
	return func(ctx context.Context, accessToken string) (calendar.Client, error) {
		if gotToken != nil {
			*gotToken = accessToken
		}
		return client, nil
	}
}
