package gcalendar

// ListEventsRequest is the input for listing Google Calendar events.
// TimeMin/TimeMax are RFC3339 instants, passed through to the API unchanged.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    string
	TimeMax    string
}
