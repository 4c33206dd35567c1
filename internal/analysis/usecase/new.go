package usecase

import (
	"insight-srv/internal/analysis"
	"insight-srv/internal/analysis/repository"
	"insight-srv/pkg/backend"
	"insight-srv/pkg/log"
)

// systemUserID owns analyses ingested without a user.
const systemUserID = "system"

type implUseCase struct {
	l         log.Logger
	repo      repository.PostgresRepository
	cache     repository.CacheRepository
	backend   backend.IBackend
	publisher analysis.Publisher
}

// New creates a new analysis UseCase implementation.
func New(
	l log.Logger,
	repo repository.PostgresRepository,
	cache repository.CacheRepository,
	backend backend.IBackend,
	publisher analysis.Publisher,
) analysis.UseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		cache:     cache,
		backend:   backend,
		publisher: publisher,
	}
}
