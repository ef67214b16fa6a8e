package usecase

import (
	"time"

	"eva-assistant/internal/admin/repository"
	convRepository "eva-assistant/internal/conversation/repository"
	pkgLog "eva-assistant/pkg/log"
)

const DefaultTokenTTL = time.Hour

type implUseCase struct {
	l        pkgLog.Logger
	users    repository.UserRepository
	convo    convRepository.Repository
	secret   []byte
	tokenTTL time.Duration
}

// New creates a new admin UseCase instance.
func New(
	l pkgLog.Logger,
	users repository.UserRepository,
	convo convRepository.Repository,
	jwtSecret string,
	tokenTTL time.Duration,
) *implUseCase {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &implUseCase{
		l:        l,
		users:    users,
		convo:    convo,
		secret:   []byte(jwtSecret),
		tokenTTL: tokenTTL,
	}
}
