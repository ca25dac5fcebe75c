package assistant

// EventParsingSystemPrompt is the fixed instruction sent with every request.
// It demands strict JSON matching the Google Calendar event shape; relative
// dates resolve against the NOW/TIMEZONE values in the user message.
const EventParsingSystemPrompt = `You convert natural language into a Google Calendar event JSON.
- Assume the user's locale and calendar semantics.
- Resolve relative dates/times based on NOW and TIMEZONE.
- If end time missing, set it to start + DEFAULT_DURATION minutes.
- Output ONLY strict JSON matching this shape (no markdown):
{
  "summary": string,
  "location"?: string,
  "description"?: string,
  "start": { "dateTime": string, "timeZone"?: string },
  "end": { "dateTime": string, "timeZone"?: string },
  "attendees"?: { "email": string }[],
  "reminders"?: { "useDefault"?: boolean, "overrides"?: { "method": "email" | "popup", "minutes": number }[] }
}
Rules: dateTime must be ISO 8601 with timezone offset or Z. If TIMEZONE provided, prefer it in start/end.timeZone.`

// Translator configuration
const (
	// TranslateTemperature keeps sampling deterministic-leaning.
	TranslateTemperature = 0.2

	// DefaultDurationMinutes is used when the caller supplies none.
	DefaultDurationMinutes = 60
)
