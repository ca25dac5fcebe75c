package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/calendar/v3"

	"calendar-assistant/pkg/openai"
)

// Translate sends the request plus temporal context to the model and parses
// the strict-JSON reply. No retry on any failure; the caller sees it directly.
func (s *Service) Translate(ctx context.Context, input TranslateInput) (*calendar.Event, error) {
	duration := input.DefaultDurationMinutes
	if duration <= 0 {
		duration = DefaultDurationMinutes
	}

	userPrompt := fmt.Sprintf("NOW=%s\nTIMEZONE=%s\nDEFAULT_DURATION=%d\nREQUEST=%s",
		input.Now.UTC().Format(time.RFC3339), input.TimeZone, duration, input.Query)

	resp, err := s.llm.CreateChatCompletion(ctx, &openai.Request{
		Messages: []openai.Message{
			{Role: "system", Content: EventParsingSystemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature:    TranslateTemperature,
		ResponseFormat: &openai.ResponseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return nil, ErrEmptyResponse
	}
	content := stripCodeFences(resp.Choices[0].Message.Content)

	var event calendar.Event
	if err := json.Unmarshal([]byte(content), &event); err != nil {
		s.l.Warnf(ctx, "internal.assistant.Translate: unparseable model output: %v", err)
		return nil, ErrMalformedJSON
	}

	// Presence check only; timestamp format is the model's prompt contract.
	if event.Summary == "" || event.Start == nil || event.Start.DateTime == "" ||
		event.End == nil || event.End.DateTime == "" {
		return nil, ErrIncompleteEvent
	}

	return &event, nil
}

// stripCodeFences removes markdown code blocks some models wrap JSON in.
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	}
	return text
}
