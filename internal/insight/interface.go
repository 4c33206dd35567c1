package insight

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Normalize(ctx context.Context, input NormalizeInput) (Dashboard, error)
	Cards(ctx context.Context, input CardsInput) ([]InsightCard, error)
}
