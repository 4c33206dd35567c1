package report

import (
	"time"

	"insight-srv/internal/model"
)

const (
	FormatMarkdown = "md"
	FormatHTML     = "html"
	FormatPDF      = "pdf"
	FormatExcel    = "excel"
)

const (
	StatusProcessing = "PROCESSING"
	StatusCompleted  = "COMPLETED"
	StatusFailed     = "FAILED"
)

type ExportInput struct {
	AnalysisID string
	Format     string
	Token      string
	Lang       string
}

type ExportOutput struct {
	Report model.Report
	// Reused is set when an identical export was already in flight.
	Reused bool
}

// ExportJob is what travels through the queue. Token is the caller's bearer
// token, needed by formats rendered upstream.
type ExportJob struct {
	ReportID string
	Scope    model.Scope
	Token    string
	Lang     string
}

type ProcessInput struct {
	ReportID string
	Token    string
	Lang     string
}

type DownloadOutput struct {
	URL       string
	ExpiresAt time.Time
	FileName  string
	FileSize  int64
}
