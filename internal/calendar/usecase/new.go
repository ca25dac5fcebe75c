package usecase

import (
	"context"

	"calendar-assistant/internal/assistant"
	"calendar-assistant/internal/calendar"
	"calendar-assistant/pkg/gcalendar"
	"calendar-assistant/pkg/log"
)

// implUseCase is the private implementation of calendar.UseCase.
type implUseCase struct {
	tokens     calendar.TokenSource
	translator assistant.Translator
	newClient  calendar.ClientFactory
	l          log.Logger
}

// New creates a new calendar UseCase implementation. A nil factory defaults
// to per-request pkg/gcalendar clients.
func New(l log.Logger, tokens calendar.TokenSource, translator assistant.Translator, newClient calendar.ClientFactory) *implUseCase {
	if newClient == nil {
		newClient = func(ctx context.Context, accessToken string) (calendar.Client, error) {
			return gcalendar.NewClientFromToken(ctx, accessToken)
		}
	}
	return &implUseCase{
		tokens:     tokens,
		translator: translator,
		newClient:  newClient,
		l:          l,
	}
}
