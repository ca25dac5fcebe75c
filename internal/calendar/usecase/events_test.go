package usecase

import (
	"context"
	"errors"
	"testing"

	gcal "google.golang.org/api/calendar/v3"

	"calendar-assistant/internal/auth"
	"calendar-assistant/internal/calendar"
)

func TestListEvents(t *testing.T) {
	tokens := &mockTokenSource{token: "access-1"}
	client := &mockClient{events: &gcal.Events{
		Items: []*gcal.Event{{Summary: "Standup"}},
	}}
	var builtWith string
	uc := New(&mockLogger{}, tokens, &mockTranslator{}, factoryFor(client, &builtWith))

	events, err := uc.ListEvents(context.Background(), calendar.ListEventsInput{
		Email:   "a@example.com",
		TimeMin: "2026-03-01T00:00:00Z",
		TimeMax: "2026-03-08T00:00:00Z",
	})
	if err != nil {
		t.Fatalf("ListEvents() error = %v", err)
	}

	if tokens.email != "a@example.com" {
		t.Errorf("token requested for %q", tokens.email)
	}
	if builtWith != "access-1" {
		t.Errorf("client built with token %q, want access-1", builtWith)
	}
	if client.lastListReq.TimeMin != "2026-03-01T00:00:00Z" || client.lastListReq.TimeMax != "2026-03-08T00:00:00Z" {
		t.Errorf("list request = %+v", client.lastListReq)
	}
	if len(events.Items) != 1 || events.Items[0].Summary != "Standup" {
		t.Errorf("events relayed incorrectly: %+v", events)
	}
}

func TestListEvents_ReauthRequired(t *testing.T) {
	tokens := &mockTokenSource{err: auth.ErrReauthRequired}
	client := &mockClient{}
	uc := New(&mockLogger{}, tokens, &mockTranslator{}, factoryFor(client, nil))

	_, err := uc.ListEvents(context.Background(), calendar.ListEventsInput{Email: "a@example.com"})
	if !errors.Is(err, auth.ErrReauthRequired) {
		t.Fatalf("ListEvents() error = %v, want ErrReauthRequired", err)
	}
	if client.listCalls != 0 {
		t.Error("the calendar API must not be called without a token")
	}
}

func TestCreateEvent(t *testing.T) {
	tokens := &mockTokenSource{token: "access-1"}
	client := &mockClient{created: &gcal.Event{Id: "evt-1", Summary: "Lunch"}}
	uc := New(&mockLogger{}, tokens, &mockTranslator{}, factoryFor(client, nil))

	input := &gcal.Event{Summary: "Lunch"}
	created, err := uc.CreateEvent(context.Background(), calendar.CreateEventInput{
		Email: "a@example.com",
		Event: input,
	})
	if err != nil {
		t.Fatalf("CreateEvent() error = %v", err)
	}
	if client.lastCreated != input {
		t.Error("the event payload must be forwarded unchanged")
	}
	if created.Id != "evt-1" {
		t.Errorf("created.Id = %q", created.Id)
	}
}

func TestCreateEvent_UpstreamError(t *testing.T) {
	upstream := errors.New("googleapi: Error 403: forbidden")
	tokens := &mockTokenSource{token: "access-1"}
	client := &mockClient{createErr: upstream}
	uc := New(&mockLogger{}, tokens, &mockTranslator{}, factoryFor(client, nil))

	_, err := uc.CreateEvent(context.Background(), calendar.CreateEventInput{
		Email: "a@example.com",
		Event: &gcal.Event{Summary: "Lunch"},
	})
	if !errors.Is(err, upstream) {
		t.Fatalf("CreateEvent() error = %v, want upstream passthrough", err)
	}
	if client.createCalls != 1 {
		t.Errorf("create calls = %d, want exactly 1 (no retry)", client.createCalls)
	}
}
