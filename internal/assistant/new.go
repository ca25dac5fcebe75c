package assistant

import (
	"calendar-assistant/pkg/log"
	"calendar-assistant/pkg/openai"
)

// Service translates natural-language scheduling requests using one LLM call.
type Service struct {
	llm openai.IOpenAI
	l   log.Logger
}

// Ensure Service implements Translator
var _ Translator = (*Service)(nil)

// New creates a new translator Service.
// Convention: factory returns concrete type (not interface) for internal packages.
func New(l log.Logger, llm openai.IOpenAI) *Service {
	return &Service{
		llm: llm,
		l:   l,
	}
}
