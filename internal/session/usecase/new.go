package usecase

import (
	"insight-srv/internal/session"
	"insight-srv/internal/session/repository"
	"insight-srv/pkg/backend"
	"insight-srv/pkg/log"
)

type implUseCase struct {
	l       log.Logger
	cache   repository.CacheRepository
	backend backend.IBackend
}

func New(l log.Logger, cache repository.CacheRepository, backend backend.IBackend) session.UseCase {
	return &implUseCase{
		l:       l,
		cache:   cache,
		backend: backend,
	}
}
