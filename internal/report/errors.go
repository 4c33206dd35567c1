package report

import "errors"

var (
	ErrInvalidFormat      = errors.New("report: invalid format")
	ErrAnalysisRequired   = errors.New("report: analysis id is required")
	ErrAnalysisNotReady   = errors.New("report: analysis is not completed")
	ErrReportNotFound     = errors.New("report: not found")
	ErrForbidden          = errors.New("report: not the owner")
	ErrReportNotCompleted = errors.New("report: not completed")
	ErrExportFailed       = errors.New("report: export failed")
	ErrDownloadURLFailed  = errors.New("report: failed to generate download url")
)
