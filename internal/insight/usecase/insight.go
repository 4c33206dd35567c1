package usecase

import (
	"context"

	"insight-srv/internal/insight"
)

func (uc *implUseCase) Normalize(ctx context.Context, input insight.NormalizeInput) (insight.Dashboard, error) {
	labels := insight.DefaultsFor(input.Lang)
	dashboard := labels.Dashboard(input.Raw)

	uc.l.Debugf(ctx, "insight.usecase.Normalize: kind=%s lang=%s metrics=%d comments=%d",
		input.Raw.Kind(), labels.Lang, len(dashboard.Metrics), len(dashboard.Comments))
	return dashboard, nil
}

func (uc *implUseCase) Cards(ctx context.Context, input insight.CardsInput) ([]insight.InsightCard, error) {
	cards := insight.DefaultsFor(input.Lang).Cards(input.Raw)

	uc.l.Debugf(ctx, "insight.usecase.Cards: kind=%s cards=%d", input.Raw.Kind(), len(cards))
	return cards, nil
}
