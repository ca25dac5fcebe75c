package usecase

import (
	"calendar-assistant/internal/auth"
	"calendar-assistant/internal/user/repository"
	"calendar-assistant/pkg/log"
)

// implUseCase is the private implementation of auth.UseCase.
type implUseCase struct {
	repo  repository.Repository
	oauth auth.OAuthProvider
	l     log.Logger
}

// New creates a new auth UseCase implementation.
func New(l log.Logger, repo repository.Repository, oauth auth.OAuthProvider) *implUseCase {
	return &implUseCase{
		repo:  repo,
		oauth: oauth,
		l:     l,
	}
}
