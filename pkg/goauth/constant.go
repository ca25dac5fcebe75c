package goauth

const (
	// DefaultUserInfoURL is Google's OpenID userinfo endpoint.
	DefaultUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

	// ScopeCalendarEvents grants read/write access to calendar events.
	ScopeCalendarEvents = "https://www.googleapis.com/auth/calendar.events"
)
