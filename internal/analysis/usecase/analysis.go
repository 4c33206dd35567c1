package usecase

import (
	"context"
	"errors"
	"fmt"

	"insight-srv/internal/analysis"
	"insight-srv/internal/analysis/repository"
	"insight-srv/internal/model"
	"insight-srv/pkg/backend"
	"insight-srv/pkg/paginator"

	"github.com/google/uuid"
)

// Analyze submits a post link to the analysis backend, stores the outcome
// either way and returns the dashboard of a successful run. Any 2xx body is a
// successful run; shapes the dashboard cannot read degrade to its defaults.
func (uc *implUseCase) Analyze(ctx context.Context, sc model.Scope, input analysis.AnalyzeInput) (analysis.AnalysisOutput, error) {
	link, err := analysis.ValidateURL(input.URL)
	if err != nil {
		return analysis.AnalysisOutput{}, err
	}
	platform := analysis.DetectPlatform(link)

	body, err := uc.backend.Analyze(ctx, input.Token, link)
	if err != nil {
		msg := upstreamMessage(err)
		uc.l.Warnf(ctx, "analysis.usecase.Analyze: backend rejected %s: %v", link, err)
		if _, cerr := uc.repo.CreateAnalysis(ctx, repository.CreateAnalysisOptions{
			ID:           uuid.New().String(),
			UserID:       sc.UserID,
			URL:          link,
			Platform:     platform,
			Status:       analysis.StatusFailed,
			ErrorMessage: msg,
		}); cerr != nil {
			uc.l.Errorf(ctx, "analysis.usecase.Analyze: Failed to record failed analysis: %v", cerr)
		}
		return analysis.AnalysisOutput{}, fmt.Errorf("%w: %s", analysis.ErrUpstreamFailed, msg)
	}

	a, err := uc.repo.CreateAnalysis(ctx, repository.CreateAnalysisOptions{
		ID:       uuid.New().String(),
		UserID:   sc.UserID,
		URL:      link,
		Platform: platform,
		Status:   analysis.StatusCompleted,
		Raw:      storedResult(body),
	})
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.Analyze: Failed to create analysis: %v", err)
		return analysis.AnalysisOutput{}, err
	}

	d := uc.buildDashboard(ctx, *a, input.Lang)
	uc.publishReady(ctx, *a, d.Metrics)

	return analysis.AnalysisOutput{Analysis: *a, Dashboard: &d}, nil
}

// Detail returns an analysis of the caller with its dashboard, served from
// the cache when possible.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, input analysis.DetailInput) (analysis.AnalysisOutput, error) {
	a, err := uc.getOwned(ctx, sc, input.ID)
	if err != nil {
		return analysis.AnalysisOutput{}, err
	}

	out := analysis.AnalysisOutput{Analysis: *a}
	if a.Status != analysis.StatusCompleted {
		return out, nil
	}

	lang := langOf(input.Lang)
	cached, err := uc.cache.GetDashboard(ctx, a.ID, lang)
	if err == nil {
		out.Dashboard = cached
		return out, nil
	}
	if !errors.Is(err, repository.ErrCacheMiss) {
		uc.l.Warnf(ctx, "analysis.usecase.Detail: cache unavailable, rebuilding: %v", err)
	}

	d := uc.buildDashboard(ctx, *a, lang)
	out.Dashboard = &d
	return out, nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input analysis.ListInput) (analysis.ListOutput, error) {
	if input.Platform != "" && !analysis.IsValidPlatform(input.Platform) {
		return analysis.ListOutput{}, analysis.ErrInvalidPlatform
	}
	if input.Status != "" && !analysis.IsValidStatus(input.Status) {
		return analysis.ListOutput{}, analysis.ErrInvalidStatus
	}

	input.Paginate.Adjust()
	rows, total, err := uc.repo.ListAnalyses(ctx, repository.ListAnalysesOptions{
		UserID:   sc.UserID,
		Platform: input.Platform,
		Status:   input.Status,
		Limit:    input.Paginate.Limit,
		Offset:   input.Paginate.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.List: Failed to list analyses: %v", err)
		return analysis.ListOutput{}, err
	}

	analyses := make([]model.Analysis, 0, len(rows))
	for _, r := range rows {
		analyses = append(analyses, *r)
	}

	return analysis.ListOutput{
		Analyses:  analyses,
		Paginator: paginator.New(total, int64(len(analyses)), input.Paginate),
	}, nil
}

// Ingest stores an analysis pushed by the pipeline. Re-delivery of the same
// external id replaces the stored result and its cached dashboards.
func (uc *implUseCase) Ingest(ctx context.Context, input analysis.IngestInput) (analysis.AnalysisOutput, error) {
	if input.ExternalID == "" {
		return analysis.AnalysisOutput{}, analysis.ErrExternalIDMissing
	}
	link, err := analysis.ValidateURL(input.URL)
	if err != nil {
		return analysis.AnalysisOutput{}, err
	}
	if !input.Payload.IsObject() {
		return analysis.AnalysisOutput{}, analysis.ErrInvalidPayload
	}

	userID := input.UserID
	if userID == "" {
		userID = systemUserID
	}

	a, err := uc.repo.UpsertByExternalID(ctx, repository.UpsertAnalysisOptions{
		ID:         uuid.New().String(),
		ExternalID: input.ExternalID,
		UserID:     userID,
		URL:        link,
		Platform:   analysis.DetectPlatform(link),
		Raw:        []byte(input.Payload.JSON()),
	})
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.Ingest: Failed to upsert analysis %s: %v", input.ExternalID, err)
		return analysis.AnalysisOutput{}, err
	}

	if err := uc.cache.InvalidateDashboard(ctx, a.ID); err != nil {
		uc.l.Warnf(ctx, "analysis.usecase.Ingest: Failed to invalidate dashboards of %s: %v", a.ID, err)
	}

	d := uc.buildDashboard(ctx, *a, "")
	uc.publishReady(ctx, *a, d.Metrics)

	return analysis.AnalysisOutput{Analysis: *a, Dashboard: &d}, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	a, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteAnalysis(ctx, a.ID); err != nil {
		if errors.Is(err, repository.ErrAnalysisNotFound) {
			return analysis.ErrNotFound
		}
		uc.l.Errorf(ctx, "analysis.usecase.Delete: Failed to delete analysis: %v", err)
		return err
	}

	if err := uc.cache.InvalidateDashboard(ctx, a.ID); err != nil {
		uc.l.Warnf(ctx, "analysis.usecase.Delete: Failed to invalidate dashboards of %s: %v", a.ID, err)
	}
	return nil
}

// ----------- Private helpers -----------

func (uc *implUseCase) getOwned(ctx context.Context, sc model.Scope, id string) (*model.Analysis, error) {
	a, err := uc.repo.GetAnalysisByID(ctx, id)
	if errors.Is(err, repository.ErrAnalysisNotFound) {
		return nil, analysis.ErrNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.getOwned: Failed to get analysis: %v", err)
		return nil, err
	}
	if a.UserID != sc.UserID {
		return nil, analysis.ErrForbidden
	}
	return a, nil
}

// upstreamMessage keeps the backend's own wording when there is one.
func upstreamMessage(err error) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
