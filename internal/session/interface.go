package session

import (
	"context"

	"insight-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Get(ctx context.Context, sc model.Scope, input GetInput) (SessionOutput, error)
	Logout(ctx context.Context, sc model.Scope) error
}
