package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/googleapi"

	gcal "google.golang.org/api/calendar/v3"

	"calendar-assistant/internal/assistant"
	"calendar-assistant/internal/auth"
	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/middleware"
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

// Mock calendar usecase for testing
type mockUseCase struct {
	events    *gcal.Events
	listErr   error
	created   *gcal.Event
	createErr error
	scheduled *gcal.Event
	schedErr  error

	lastList     calendar.ListEventsInput
	lastCreate   calendar.CreateEventInput
	lastSchedule calendar.ScheduleInput
}

func (m *mockUseCase) ListEvents(ctx context.Context, input calendar.ListEventsInput) (*gcal.Events, error) {
	m.lastList = input
	return m.events, m.listErr
}

func (m *mockUseCase) CreateEvent(ctx context.Context, input calendar.CreateEventInput) (*gcal.Event, error) {
	m.lastCreate = input
	return m.created, m.createErr
}

func (m *mockUseCase) Schedule(ctx context.Context, input calendar.ScheduleInput) (*gcal.Event, error) {
	m.lastSchedule = input
	return m.scheduled, m.schedErr
}

const testSecret = "test-session-secret"

func newTestEngine(uc calendar.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	h := New(&mockLogger{}, uc)
	mw := middleware.New(&mockLogger{}, testSecret)
	RegisterRoutes(e, h, mw, 100)
	return e
}

func sessionCookie(t *testing.T, email string) *http.Cookie {
	t.Helper()
	return &http.Cookie{
		Name:  middleware.SessionCookieName,
		Value: auth.SignSession(testSecret, email, time.Now().Add(time.Hour)),
	}
}

func TestList(t *testing.T) {
	uc := &mockUseCase{events: &gcal.Events{
		Kind:  "calendar#events",
		Items: []*gcal.Event{{Id: "evt-1", Summary: "Standup"}},
	}}
	e := newTestEngine(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/calendar/events?timeMin=2026-03-01T00:00:00Z&timeMax=2026-03-08T00:00:00Z", nil)
	req.AddCookie(sessionCookie(t, "a@example.com"))
	e.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
	}

	if uc.lastList.Email != "a@example.com" {
		t.Errorf("Email = %q", uc.lastList.Email)
	}
	if uc.lastList.TimeMin != "2026-03-01T00:00:00Z" || uc.lastList.TimeMax != "2026-03-08T00:00:00Z" {
		t.Errorf("window = %q..%q", uc.lastList.TimeMin, uc.lastList.TimeMax)
	}

	// The calendar API payload is relayed unchanged, not wrapped.
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["kind"] != "calendar#events" {
		t.Errorf(`body["kind"] = %v`, body["kind"])
	}
	if _, wrapped := body["data"]; wrapped {
		t.Error("payload must not be wrapped in a response envelope")
	}
}

func TestList_DefaultWindow(t *testing.T) {
	uc := &mockUseCase{events: &gcal.Events{}}
	e := newTestEngine(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/calendar/events", nil)
	req.AddCookie(sessionCookie(t, "a@example.com"))
	e.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	min, err := time.Parse(time.RFC3339, uc.lastList.TimeMin)
	if err != nil {
		t.Fatalf("TimeMin %q not RFC3339: %v", uc.lastList.TimeMin, err)
	}
	max, err := time.Parse(time.RFC3339, uc.lastList.TimeMax)
	if err != nil {
		t.Fatalf("TimeMax %q not RFC3339: %v", uc.lastList.TimeMax, err)
	}
	if got := max.Sub(min); got != defaultListWindow {
		t.Errorf("window span = %v, want %v", got, defaultListWindow)
	}
}

func TestList_Unauthenticated(t *testing.T) {
	e := newTestEngine(&mockUseCase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/calendar/events", nil)
	e.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestCreate(t *testing.T) {
	uc := &mockUseCase{created: &gcal.Event{Id: "evt-9", Summary: "Lunch"}}
	e := newTestEngine(uc)

	body := `{"summary": "Lunch", "start": {"dateTime": "2026-03-02T12:00:00Z"}, "end": {"dateTime": "2026-03-02T13:00:00Z"}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/calendar/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(sessionCookie(t, "a@example.com"))
	e.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
	}
	if uc.lastCreate.Event == nil || uc.lastCreate.Event.Summary != "Lunch" {
		t.Errorf("forwarded event = %+v", uc.lastCreate.Event)
	}
	if !strings.Contains(w.Body.String(), "evt-9") {
		t.Errorf("body = %q, want the created event relayed", w.Body.String())
	}
}

func TestSchedule(t *testing.T) {
	uc := &mockUseCase{scheduled: &gcal.Event{Id: "evt-2", Summary: "Dentist"}}
	e := newTestEngine(uc)

	body := `{"query": "dentist monday 3pm", "timeZone": "Europe/Berlin", "defaultDurationMinutes": 45}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/assistant/schedule", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(sessionCookie(t, "a@example.com"))
	e.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", w.Code, w.Body.String())
	}
	got := uc.lastSchedule
	if got.Email != "a@example.com" || got.Query != "dentist monday 3pm" ||
		got.TimeZone != "Europe/Berlin" || got.DefaultDurationMinutes != 45 {
		t.Errorf("schedule input = %+v", got)
	}
	if !strings.Contains(w.Body.String(), "evt-2") {
		t.Errorf("body = %q, want the created event relayed", w.Body.String())
	}
}

func TestSchedule_MissingQuery(t *testing.T) {
	e := newTestEngine(&mockUseCase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/assistant/schedule", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(sessionCookie(t, "a@example.com"))
	e.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantInBody string
	}{
		{
			name:       "re-auth required",
			err:        auth.ErrReauthRequired,
			wantStatus: http.StatusUnauthorized,
			wantInBody: "Re-auth at /auth/google",
		},
		{
			name:       "model returned no JSON",
			err:        assistant.ErrMalformedJSON,
			wantStatus: http.StatusBadGateway,
			wantInBody: assistant.ErrMalformedJSON.Error(),
		},
		{
			name:       "model returned nothing",
			err:        assistant.ErrEmptyResponse,
			wantStatus: http.StatusBadGateway,
			wantInBody: assistant.ErrEmptyResponse.Error(),
		},
		{
			name:       "calendar API error keeps upstream status",
			err:        &googleapi.Error{Code: http.StatusForbidden, Message: "insufficient permissions"},
			wantStatus: http.StatusForbidden,
			wantInBody: "insufficient permissions",
		},
		{
			name:       "opaque upstream failure",
			err:        context.DeadlineExceeded,
			wantStatus: http.StatusBadGateway,
			wantInBody: "upstream service error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{schedErr: tt.err}
			e := newTestEngine(uc)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/assistant/schedule", strings.NewReader(`{"query": "dentist"}`))
			req.Header.Set("Content-Type", "application/json")
			req.AddCookie(sessionCookie(t, "a@example.com"))
			e.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if !strings.Contains(w.Body.String(), tt.wantInBody) {
				t.Errorf("body = %q, want %q in it", w.Body.String(), tt.wantInBody)
			}
		})
	}
}
