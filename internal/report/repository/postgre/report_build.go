package postgre

import (
	"time"

	"insight-srv/internal/model"
	"insight-srv/internal/report"
	"insight-srv/internal/report/repository"
	"insight-srv/internal/sqlboiler"
)

// buildCreateReport - Build a PROCESSING row from CreateReportOptions.
func buildCreateReport(opts repository.CreateReportOptions) *sqlboiler.Report {
	now := time.Now().UTC()
	rpt := model.Report{
		ID:         opts.ID,
		AnalysisID: opts.AnalysisID,
		UserID:     opts.UserID,
		Format:     opts.Format,
		ParamsHash: opts.ParamsHash,
		Status:     report.StatusProcessing,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return rpt.ToDBReport()
}
