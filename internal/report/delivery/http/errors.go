package http

import (
	"errors"

	"insight-srv/internal/analysis"
	"insight-srv/internal/report"
	pkgErrors "insight-srv/pkg/errors"
)

var (
	errInvalidFormat      = pkgErrors.NewHTTPError(400, "Format must be one of md, html, pdf or excel")
	errAnalysisRequired   = pkgErrors.NewHTTPError(400, "Analysis ID is required")
	errAnalysisNotReady   = pkgErrors.NewHTTPError(409, "Analysis is not completed yet")
	errAnalysisNotFound   = pkgErrors.NewHTTPError(404, "Analysis not found")
	errReportNotFound     = pkgErrors.NewHTTPError(404, "Report not found")
	errForbidden          = pkgErrors.NewHTTPError(403, "Report belongs to another user")
	errReportNotCompleted = pkgErrors.NewHTTPError(400, "Report is not completed yet")
	errExportFailed       = pkgErrors.NewHTTPError(500, "Report export failed")
	errDownloadURLFailed  = pkgErrors.NewHTTPError(500, "Failed to generate download URL")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, report.ErrInvalidFormat):
		return errInvalidFormat
	case errors.Is(err, report.ErrAnalysisRequired):
		return errAnalysisRequired
	case errors.Is(err, report.ErrAnalysisNotReady):
		return errAnalysisNotReady
	case errors.Is(err, analysis.ErrNotFound):
		return errAnalysisNotFound
	case errors.Is(err, report.ErrReportNotFound):
		return errReportNotFound
	case errors.Is(err, report.ErrForbidden), errors.Is(err, analysis.ErrForbidden):
		return errForbidden
	case errors.Is(err, report.ErrReportNotCompleted):
		return errReportNotCompleted
	case errors.Is(err, report.ErrExportFailed):
		return errExportFailed
	case errors.Is(err, report.ErrDownloadURLFailed):
		return errDownloadURLFailed
	default:
		panic(err)
	}
}
