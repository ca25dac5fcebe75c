package usecase

import (
	"context"
	"time"

	gcal "google.golang.org/api/calendar/v3"

	"calendar-assistant/internal/assistant"
	"calendar-assistant/internal/calendar"
)

// Schedule translates the free-text request and creates the resulting event.
// The translator is consulted before the calendar client so a bad model
// response never reaches the calendar API.
func (uc *implUseCase) Schedule(ctx context.Context, input calendar.ScheduleInput) (*gcal.Event, error) {
	if input.Query == "" {
		return nil, calendar.ErrMissingQuery
	}

	client, err := uc.clientFor(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	event, err := uc.translator.Translate(ctx, assistant.TranslateInput{
		Query:                  input.Query,
		Now:                    time.Now(),
		TimeZone:               input.TimeZone,
		DefaultDurationMinutes: input.DefaultDurationMinutes,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Schedule Translate: %v", err)
		return nil, err
	}

	created, err := client.CreateEvent(ctx, "", event)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Schedule CreateEvent: %v", err)
		return nil, err
	}
	return created, nil
}
