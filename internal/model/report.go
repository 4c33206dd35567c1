package model

import (
	"time"

	"insight-srv/internal/sqlboiler"

	"github.com/aarondl/null/v8"
)

// Report is an exported document of an analysis.
type Report struct {
	ID         string
	AnalysisID string
	UserID     string

	Format     string // md | html | pdf | excel
	ParamsHash string

	// Status
	Status       string // PROCESSING | COMPLETED | FAILED
	ErrorMessage string

	// Output
	ObjectName    string
	ContentType   string
	FileSizeBytes int64

	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewReportFromDB converts a database row to model Report.
func NewReportFromDB(db *sqlboiler.Report) *Report {
	if db == nil {
		return nil
	}

	rpt := &Report{
		ID:         db.ID,
		AnalysisID: db.AnalysisID,
		UserID:     db.UserID,
		Format:     db.Format,
		ParamsHash: db.ParamsHash,
		Status:     db.Status,
		CreatedAt:  db.CreatedAt,
		UpdatedAt:  db.UpdatedAt,
	}

	if db.ErrorMessage.Valid {
		rpt.ErrorMessage = db.ErrorMessage.String
	}
	if db.ObjectName.Valid {
		rpt.ObjectName = db.ObjectName.String
	}
	if db.ContentType.Valid {
		rpt.ContentType = db.ContentType.String
	}
	if db.FileSizeBytes.Valid {
		rpt.FileSizeBytes = db.FileSizeBytes.Int64
	}
	if db.CompletedAt.Valid {
		t := db.CompletedAt.Time
		rpt.CompletedAt = &t
	}

	return rpt
}

// ToDBReport converts model Report to a database row.
func (r *Report) ToDBReport() *sqlboiler.Report {
	db := &sqlboiler.Report{
		ID:         r.ID,
		AnalysisID: r.AnalysisID,
		UserID:     r.UserID,
		Format:     r.Format,
		ParamsHash: r.ParamsHash,
		Status:     r.Status,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}

	if r.ErrorMessage != "" {
		db.ErrorMessage = null.StringFrom(r.ErrorMessage)
	}
	if r.ObjectName != "" {
		db.ObjectName = null.StringFrom(r.ObjectName)
	}
	if r.ContentType != "" {
		db.ContentType = null.StringFrom(r.ContentType)
	}
	if r.FileSizeBytes > 0 {
		db.FileSizeBytes = null.Int64From(r.FileSizeBytes)
	}
	if r.CompletedAt != nil {
		db.CompletedAt = null.TimeFrom(*r.CompletedAt)
	}

	return db
}
