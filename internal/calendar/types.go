package calendar

import (
	gcal "google.golang.org/api/calendar/v3"
)

// --- UseCase Inputs ---

// ListEventsInput bounds the listing window with RFC3339 instants.
type ListEventsInput struct {
	Email   string
	TimeMin string
	TimeMax string
}

type CreateEventInput struct {
	Email string
	Event *gcal.Event
}

// ScheduleInput is a free-text scheduling request.
type ScheduleInput struct {
	Email                  string
	Query                  string
	TimeZone               string
	DefaultDurationMinutes int
}
