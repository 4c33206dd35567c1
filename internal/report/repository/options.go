package repository

import "time"

type CreateReportOptions struct {
	ID         string
	AnalysisID string
	UserID     string
	Format     string
	ParamsHash string
}

type FindByParamsHashOptions struct {
	ParamsHash string
	UserID     string
	Status     string
}

type UpdateCompletedOptions struct {
	ReportID      string
	ObjectName    string
	ContentType   string
	FileSizeBytes int64
	CompletedAt   time.Time
}

type UpdateFailedOptions struct {
	ReportID     string
	ErrorMessage string
}

type ListReportsOptions struct {
	AnalysisID string
	UserID     string
	Status     string
	Limit      int
	Offset     int
}
