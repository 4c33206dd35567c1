package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"insight-srv/internal/analysis"
	"insight-srv/internal/insight"
	"insight-srv/internal/model"
	"insight-srv/pkg/payload"
)

// storedResult keeps a JSON body as is and wraps anything else as a JSON
// string. An empty body stores no result.
func storedResult(body []byte) json.RawMessage {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil
	}
	if _, err := payload.Parse(body); err == nil {
		return json.RawMessage(body)
	}
	wrapped, err := json.Marshal(string(body))
	if err != nil {
		return nil
	}
	return wrapped
}

func langOf(lang string) string {
	return insight.DefaultsFor(lang).Lang
}

// buildDashboard normalizes the stored result and caches it. A cache failure
// only costs the next read a rebuild.
func (uc *implUseCase) buildDashboard(ctx context.Context, a model.Analysis, lang string) insight.Dashboard {
	raw, err := payload.Parse(a.Raw)
	if err != nil {
		uc.l.Warnf(ctx, "analysis.usecase.buildDashboard: stored result of %s is not JSON: %v", a.ID, err)
	}

	labels := insight.DefaultsFor(lang)
	d := labels.Dashboard(raw)

	if err := uc.cache.SaveDashboard(ctx, a.ID, labels.Lang, d); err != nil {
		uc.l.Warnf(ctx, "analysis.usecase.buildDashboard: Failed to cache dashboard of %s: %v", a.ID, err)
	}
	return d
}

func (uc *implUseCase) publishReady(ctx context.Context, a model.Analysis, metrics []insight.MetricCard) {
	if uc.publisher == nil {
		return
	}

	err := uc.publisher.PublishDashboardReady(ctx, analysis.DashboardReadyEvent{
		AnalysisID: a.ID,
		UserID:     a.UserID,
		Platform:   a.Platform,
		Metrics:    metrics,
		ReadyAt:    time.Now().UTC(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "analysis.usecase.publishReady: Failed to publish dashboard of %s: %v", a.ID, err)
	}
}
