package repository

import (
	"context"

	"insight-srv/internal/session"
)

// CacheRepository keeps the backend's view of a user for a short while.
//
//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetSnapshot(ctx context.Context, userID string) (*session.Snapshot, error)
	SaveSnapshot(ctx context.Context, userID string, s session.Snapshot) error
	DeleteSnapshot(ctx context.Context, userID string) error
}
