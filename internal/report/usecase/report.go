package usecase

import (
	"context"
	"strings"

	"insight-srv/internal/analysis"
	"insight-srv/internal/model"
	"insight-srv/internal/report"
	"insight-srv/internal/report/repository"
	"insight-srv/pkg/minio"

	"github.com/google/uuid"
)

// Export registers an export of an analysis and queues it. An identical
// export still in flight is returned instead of starting a new one.
func (uc *implUseCase) Export(ctx context.Context, sc model.Scope, input report.ExportInput) (report.ExportOutput, error) {
	if input.AnalysisID == "" {
		return report.ExportOutput{}, report.ErrAnalysisRequired
	}
	format := strings.ToLower(strings.TrimSpace(input.Format))
	if !isValidFormat(format) {
		return report.ExportOutput{}, report.ErrInvalidFormat
	}

	a, err := uc.analysisUC.Detail(ctx, sc, analysis.DetailInput{ID: input.AnalysisID, Lang: input.Lang})
	if err != nil {
		return report.ExportOutput{}, err
	}
	if a.Analysis.Status != analysis.StatusCompleted {
		return report.ExportOutput{}, report.ErrAnalysisNotReady
	}

	paramsHash, err := generateParamsHash(a.Analysis.ID, format)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Export: Failed to generate params hash: %v", err)
		return report.ExportOutput{}, report.ErrExportFailed
	}

	existing, err := uc.repo.FindByParamsHash(ctx, repository.FindByParamsHashOptions{
		ParamsHash: paramsHash,
		UserID:     sc.UserID,
		Status:     report.StatusProcessing,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Export: Failed to check existing report: %v", err)
		return report.ExportOutput{}, report.ErrExportFailed
	}
	if existing != nil {
		return report.ExportOutput{Report: *existing, Reused: true}, nil
	}

	rpt, err := uc.repo.CreateReport(ctx, repository.CreateReportOptions{
		ID:         uuid.New().String(),
		AnalysisID: a.Analysis.ID,
		UserID:     sc.UserID,
		Format:     format,
		ParamsHash: paramsHash,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Export: Failed to create report: %v", err)
		return report.ExportOutput{}, report.ErrExportFailed
	}

	if err := uc.publisher.PublishExport(ctx, report.ExportJob{
		ReportID: rpt.ID,
		Scope:    sc,
		Token:    input.Token,
		Lang:     input.Lang,
	}); err != nil {
		uc.l.Errorf(ctx, "report.usecase.Export: Failed to queue report %s: %v", rpt.ID, err)
		uc.fail(ctx, rpt.ID, "export queue unavailable")
		return report.ExportOutput{}, report.ErrExportFailed
	}

	return report.ExportOutput{Report: *rpt}, nil
}

func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, id string) (model.Report, error) {
	rpt, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return model.Report{}, err
	}
	return *rpt, nil
}

// Download returns a short-lived link to a completed export.
func (uc *implUseCase) Download(ctx context.Context, sc model.Scope, id string) (report.DownloadOutput, error) {
	rpt, err := uc.getOwned(ctx, sc, id)
	if err != nil {
		return report.DownloadOutput{}, err
	}
	if rpt.Status != report.StatusCompleted {
		return report.DownloadOutput{}, report.ErrReportNotCompleted
	}

	name := fileName(rpt.Format)
	presigned, err := uc.storage.GetPresignedDownloadURL(ctx, &minio.PresignedURLRequest{
		BucketName: uc.config.ReportBucket,
		ObjectName: rpt.ObjectName,
		Expiry:     uc.config.URLExpiry,
		FileName:   name,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Download: Failed to generate presigned URL: %v", err)
		return report.DownloadOutput{}, report.ErrDownloadURLFailed
	}

	return report.DownloadOutput{
		URL:       presigned.URL,
		ExpiresAt: presigned.ExpiresAt,
		FileName:  name,
		FileSize:  rpt.FileSizeBytes,
	}, nil
}

// List returns the caller's exports of one analysis, newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, analysisID string) ([]model.Report, error) {
	if analysisID == "" {
		return nil, report.ErrAnalysisRequired
	}

	rpts, err := uc.repo.ListReports(ctx, repository.ListReportsOptions{
		AnalysisID: analysisID,
		UserID:     sc.UserID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.List: Failed to list reports: %v", err)
		return nil, err
	}

	out := make([]model.Report, 0, len(rpts))
	for _, r := range rpts {
		out = append(out, *r)
	}
	return out, nil
}
