package usecase

import (
	"time"

	"insight-srv/internal/analysis"
	"insight-srv/internal/report"
	"insight-srv/internal/report/repository"
	"insight-srv/pkg/backend"
	"insight-srv/pkg/log"
	"insight-srv/pkg/minio"
)

const (
	defaultReportBucket = "insight-reports"
	defaultURLExpiry    = 30 * time.Minute
)

// Config holds configuration for report exports.
type Config struct {
	ReportBucket string
	URLExpiry    time.Duration
}

// Storage is the part of the object store the exports need.
type Storage interface {
	minio.FileUploader
	minio.FileDownloader
}

type implUseCase struct {
	l          log.Logger
	repo       repository.PostgresRepository
	analysisUC analysis.UseCase
	backend    backend.IBackend
	storage    Storage
	publisher  report.Publisher
	config     Config
	now        func() time.Time
}

// New creates a new report UseCase implementation.
func New(
	l log.Logger,
	repo repository.PostgresRepository,
	analysisUC analysis.UseCase,
	backend backend.IBackend,
	storage Storage,
	publisher report.Publisher,
	cfg Config,
) report.UseCase {
	if cfg.ReportBucket == "" {
		cfg.ReportBucket = defaultReportBucket
	}
	if cfg.URLExpiry <= 0 {
		cfg.URLExpiry = defaultURLExpiry
	}

	return &implUseCase{
		l:          l,
		repo:       repo,
		analysisUC: analysisUC,
		backend:    backend,
		storage:    storage,
		publisher:  publisher,
		config:     cfg,
		now:        time.Now,
	}
}
