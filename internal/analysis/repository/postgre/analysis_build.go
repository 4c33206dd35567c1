package postgre

import (
	"time"

	"insight-srv/internal/analysis"
	"insight-srv/internal/analysis/repository"
	"insight-srv/internal/model"
	"insight-srv/internal/sqlboiler"
)

func buildCreateAnalysis(opts repository.CreateAnalysisOptions) *sqlboiler.Analysis {
	now := time.Now().UTC()
	a := model.Analysis{
		ID:           opts.ID,
		UserID:       opts.UserID,
		URL:          opts.URL,
		Platform:     opts.Platform,
		Status:       opts.Status,
		Raw:          opts.Raw,
		ErrorMessage: opts.ErrorMessage,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return a.ToDBAnalysis()
}

func buildUpsertAnalysis(opts repository.UpsertAnalysisOptions) *sqlboiler.Analysis {
	a := model.Analysis{
		ID:         opts.ID,
		ExternalID: opts.ExternalID,
		UserID:     opts.UserID,
		URL:        opts.URL,
		Platform:   opts.Platform,
		Status:     analysis.StatusCompleted,
		Raw:        opts.Raw,
	}
	return a.ToDBAnalysis()
}
