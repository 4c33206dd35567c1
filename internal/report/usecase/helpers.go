package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"

	"insight-srv/internal/model"
	"insight-srv/internal/report"
	"insight-srv/internal/report/repository"
	"insight-srv/pkg/backend"
)

const (
	contentTypeMarkdown = "text/markdown; charset=utf-8"
	contentTypeHTML     = "text/html; charset=utf-8"
	contentTypePDF      = "application/pdf"
	contentTypeExcel    = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	fileBaseName = "insights"
)

var extensions = map[string]string{
	report.FormatMarkdown: "md",
	report.FormatHTML:     "html",
	report.FormatPDF:      "pdf",
	report.FormatExcel:    "xlsx",
}

func isValidFormat(format string) bool {
	_, ok := extensions[format]
	return ok
}

func objectName(rpt model.Report) string {
	return fmt.Sprintf("reports/%s.%s", rpt.ID, extensions[rpt.Format])
}

func fileName(format string) string {
	return fileBaseName + "." + extensions[format]
}

// generateParamsHash creates a SHA-256 hash for deduplication.
func generateParamsHash(analysisID, format string) (string, error) {
	data := map[string]interface{}{
		"analysis_id": analysisID,
		"format":      format,
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	hash := sha256.Sum256(b)
	return fmt.Sprintf("%x", hash), nil
}

// getOwned loads a report of the caller.
func (uc *implUseCase) getOwned(ctx context.Context, sc model.Scope, id string) (*model.Report, error) {
	rpt, err := uc.repo.GetReportByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			return nil, report.ErrReportNotFound
		}
		uc.l.Errorf(ctx, "report.usecase.getOwned: Failed to get report %s: %v", id, err)
		return nil, err
	}
	if rpt.UserID != sc.UserID {
		return nil, report.ErrForbidden
	}
	return rpt, nil
}

func (uc *implUseCase) fail(ctx context.Context, reportID, message string) {
	if err := uc.repo.UpdateFailed(ctx, repository.UpdateFailedOptions{
		ReportID:     reportID,
		ErrorMessage: message,
	}); err != nil {
		uc.l.Errorf(ctx, "report.usecase.fail: Failed to mark report %s as failed: %v", reportID, err)
	}
}

// failureMessage is what the user reads on a failed export.
func failureMessage(err error) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
