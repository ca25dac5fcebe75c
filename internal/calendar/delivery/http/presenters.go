package http

import (
	"time"

	"calendar-assistant/internal/calendar"
)

// defaultListWindow is applied when the caller omits window bounds.
const defaultListWindow = 7 * 24 * time.Hour

// --- Request DTOs ---

type listEventsReq struct {
	TimeMin string `form:"timeMin"`
	TimeMax string `form:"timeMax"`
}

func (r listEventsReq) validate() error { return nil }

func (r listEventsReq) toInput(email string) calendar.ListEventsInput {
	now := time.Now()
	timeMin := r.TimeMin
	if timeMin == "" {
		timeMin = now.Format(time.RFC3339)
	}
	timeMax := r.TimeMax
	if timeMax == "" {
		timeMax = now.Add(defaultListWindow).Format(time.RFC3339)
	}
	return calendar.ListEventsInput{
		Email:   email,
		TimeMin: timeMin,
		TimeMax: timeMax,
	}
}

// ---

type scheduleReq struct {
	Query                  string `json:"query"`
	TimeZone               string `json:"timeZone"`
	DefaultDurationMinutes int    `json:"defaultDurationMinutes"`
}

func (r scheduleReq) validate() error {
	if r.Query == "" {
		return calendar.ErrMissingQuery
	}
	return nil
}

func (r scheduleReq) toInput(email string) calendar.ScheduleInput {
	return calendar.ScheduleInput{
		Email:                  email,
		Query:                  r.Query,
		TimeZone:               r.TimeZone,
		DefaultDurationMinutes: r.DefaultDurationMinutes,
	}
}
