package analysis

import (
	"context"

	"insight-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Analyze(ctx context.Context, sc model.Scope, input AnalyzeInput) (AnalysisOutput, error)
	Detail(ctx context.Context, sc model.Scope, input DetailInput) (AnalysisOutput, error)
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Ingest(ctx context.Context, input IngestInput) (AnalysisOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
}

// Publisher announces dashboards that are ready to be displayed.
//
//go:generate mockery --name Publisher
type Publisher interface {
	PublishDashboardReady(ctx context.Context, event DashboardReadyEvent) error
}
