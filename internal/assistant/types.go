package assistant

import (
	"context"
	"time"

	"google.golang.org/api/calendar/v3"
)

// Translator turns a free-text scheduling request into a calendar event.
type Translator interface {
	Translate(ctx context.Context, input TranslateInput) (*calendar.Event, error)
}

// TranslateInput anchors the request in time so the model can resolve
// relative dates ("tomorrow at 3pm").
type TranslateInput struct {
	Query                  string
	Now                    time.Time
	TimeZone               string
	DefaultDurationMinutes int
}
