package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"insight-srv/internal/analysis"
	"insight-srv/internal/model"
	"insight-srv/internal/report"
	"insight-srv/internal/report/repository"
	"insight-srv/pkg/minio"
)

var errNoDashboard = errors.New("analysis has no dashboard")

type renderedFile struct {
	Body        []byte
	ContentType string
}

// Process renders a queued export, stores it and records the outcome. Jobs
// for reports that are no longer processing are ignored.
func (uc *implUseCase) Process(ctx context.Context, sc model.Scope, input report.ProcessInput) (err error) {
	rpt, err := uc.getOwned(ctx, sc, input.ReportID)
	if err != nil {
		return err
	}
	if rpt.Status != report.StatusProcessing {
		uc.l.Infof(ctx, "report.usecase.Process: Report %s is %s, skipping", rpt.ID, rpt.Status)
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "report.usecase.Process: Panic for report %s: %v", rpt.ID, r)
			uc.fail(ctx, rpt.ID, fmt.Sprintf("internal error: %v", r))
			err = report.ErrExportFailed
		}
	}()

	file, err := uc.render(ctx, sc, *rpt, input)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Process: Failed to render report %s: %v", rpt.ID, err)
		uc.fail(ctx, rpt.ID, failureMessage(err))
		return fmt.Errorf("%w: %v", report.ErrExportFailed, err)
	}

	name := objectName(*rpt)
	info, err := uc.storage.UploadFile(ctx, &minio.UploadRequest{
		BucketName:   uc.config.ReportBucket,
		ObjectName:   name,
		OriginalName: fileName(rpt.Format),
		Reader:       bytes.NewReader(file.Body),
		Size:         int64(len(file.Body)),
		ContentType:  file.ContentType,
		Metadata: map[string]string{
			"report-id":   rpt.ID,
			"analysis-id": rpt.AnalysisID,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.Process: Failed to upload report %s: %v", rpt.ID, err)
		uc.fail(ctx, rpt.ID, "failed to store the report")
		return fmt.Errorf("%w: %v", report.ErrExportFailed, err)
	}

	size := int64(len(file.Body))
	if info != nil && info.Size > 0 {
		size = info.Size
	}

	if err := uc.repo.UpdateCompleted(ctx, repository.UpdateCompletedOptions{
		ReportID:      rpt.ID,
		ObjectName:    name,
		ContentType:   file.ContentType,
		FileSizeBytes: size,
		CompletedAt:   uc.now(),
	}); err != nil {
		uc.l.Errorf(ctx, "report.usecase.Process: Failed to mark report %s as completed: %v", rpt.ID, err)
		return err
	}

	uc.l.Infof(ctx, "report.usecase.Process: Report %s completed (%d bytes)", rpt.ID, size)
	return nil
}

func (uc *implUseCase) render(ctx context.Context, sc model.Scope, rpt model.Report, input report.ProcessInput) (renderedFile, error) {
	out, err := uc.analysisUC.Detail(ctx, sc, analysis.DetailInput{ID: rpt.AnalysisID, Lang: input.Lang})
	if err != nil {
		return renderedFile{}, err
	}

	switch rpt.Format {
	case report.FormatPDF, report.FormatExcel:
		f, err := uc.backend.Export(ctx, input.Token, rpt.Format, analysis.BackendID(out.Analysis))
		if err != nil {
			return renderedFile{}, err
		}
		ct := f.ContentType
		if ct == "" {
			ct = contentTypePDF
			if rpt.Format == report.FormatExcel {
				ct = contentTypeExcel
			}
		}
		return renderedFile{Body: f.Body, ContentType: ct}, nil
	}

	if out.Dashboard == nil {
		return renderedFile{}, errNoDashboard
	}
	md, err := renderMarkdown(out.Analysis, *out.Dashboard, uc.now())
	if err != nil {
		return renderedFile{}, err
	}
	if rpt.Format == report.FormatMarkdown {
		return renderedFile{Body: md, ContentType: contentTypeMarkdown}, nil
	}

	page, err := renderHTML(md, out.Dashboard.Lang)
	if err != nil {
		return renderedFile{}, err
	}
	return renderedFile{Body: page, ContentType: contentTypeHTML}, nil
}
