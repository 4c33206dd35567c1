package repository

import (
	"context"

	"insight-srv/internal/insight"
	"insight-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	CreateAnalysis(ctx context.Context, opts CreateAnalysisOptions) (*model.Analysis, error)
	UpsertByExternalID(ctx context.Context, opts UpsertAnalysisOptions) (*model.Analysis, error)
	GetAnalysisByID(ctx context.Context, id string) (*model.Analysis, error)
	ListAnalyses(ctx context.Context, opts ListAnalysesOptions) ([]*model.Analysis, int64, error)
	DeleteAnalysis(ctx context.Context, id string) error
}

// CacheRepository keeps built dashboards so reads skip normalization.
//
//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetDashboard(ctx context.Context, analysisID, lang string) (*insight.Dashboard, error)
	SaveDashboard(ctx context.Context, analysisID, lang string, d insight.Dashboard) error
	InvalidateDashboard(ctx context.Context, analysisID string) error
}
