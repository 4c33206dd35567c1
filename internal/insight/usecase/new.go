package usecase

import (
	"insight-srv/internal/insight"
	"insight-srv/pkg/log"
)

type implUseCase struct {
	l log.Logger
}

// New creates a new insight UseCase implementation.
func New(l log.Logger) insight.UseCase {
	return &implUseCase{l: l}
}
