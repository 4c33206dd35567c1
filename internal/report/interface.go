package report

import (
	"context"

	"insight-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Export(ctx context.Context, sc model.Scope, input ExportInput) (ExportOutput, error)
	Process(ctx context.Context, sc model.Scope, input ProcessInput) error
	Get(ctx context.Context, sc model.Scope, id string) (model.Report, error)
	Download(ctx context.Context, sc model.Scope, id string) (DownloadOutput, error)
	List(ctx context.Context, sc model.Scope, analysisID string) ([]model.Report, error)
}

// Publisher queues export jobs for the report worker.
//
//go:generate mockery --name Publisher
type Publisher interface {
	PublishExport(ctx context.Context, job ExportJob) error
}
