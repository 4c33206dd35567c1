package sqlboiler

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

// Report is a row of the reports table.
type Report struct {
	ID            string      `boil:"id" json:"id"`
	AnalysisID    string      `boil:"analysis_id" json:"analysis_id"`
	UserID        string      `boil:"user_id" json:"user_id"`
	Format        string      `boil:"format" json:"format"`
	ParamsHash    string      `boil:"params_hash" json:"params_hash"`
	Status        string      `boil:"status" json:"status"`
	ErrorMessage  null.String `boil:"error_message" json:"error_message,omitempty"`
	ObjectName    null.String `boil:"object_name" json:"object_name,omitempty"`
	ContentType   null.String `boil:"content_type" json:"content_type,omitempty"`
	FileSizeBytes null.Int64  `boil:"file_size_bytes" json:"file_size_bytes,omitempty"`
	CompletedAt   null.Time   `boil:"completed_at" json:"completed_at,omitempty"`
	CreatedAt     time.Time   `boil:"created_at" json:"created_at"`
	UpdatedAt     time.Time   `boil:"updated_at" json:"updated_at"`
}

var ReportColumns = struct {
	ID            string
	AnalysisID    string
	UserID        string
	Format        string
	ParamsHash    string
	Status        string
	ErrorMessage  string
	ObjectName    string
	ContentType   string
	FileSizeBytes string
	CompletedAt   string
	CreatedAt     string
	UpdatedAt     string
}{
	ID:            "id",
	AnalysisID:    "analysis_id",
	UserID:        "user_id",
	Format:        "format",
	ParamsHash:    "params_hash",
	Status:        "status",
	ErrorMessage:  "error_message",
	ObjectName:    "object_name",
	ContentType:   "content_type",
	FileSizeBytes: "file_size_bytes",
	CompletedAt:   "completed_at",
	CreatedAt:     "created_at",
	UpdatedAt:     "updated_at",
}

const reportSelect = `"id", "analysis_id", "user_id", "format", "params_hash", "status", "error_message", "object_name", "content_type", "file_size_bytes", "completed_at", "created_at", "updated_at"`

type reportQuery struct {
	*queries.Query
}

// Reports starts a query on the reports table.
func Reports(mods ...qm.QueryMod) reportQuery {
	mods = append([]qm.QueryMod{qm.From(`"reports"`)}, mods...)
	return reportQuery{NewQuery(mods...)}
}

func (q reportQuery) One(ctx context.Context, exec boil.ContextExecutor) (*Report, error) {
	o := &Report{}
	qm.Apply(q.Query, qm.Select(reportSelect), qm.Limit(1))
	if err := q.Bind(ctx, exec, o); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("sqlboiler: failed to execute a one query for reports: %w", err)
	}
	return o, nil
}

func (q reportQuery) All(ctx context.Context, exec boil.ContextExecutor) ([]*Report, error) {
	var o []*Report
	qm.Apply(q.Query, qm.Select(reportSelect))
	if err := q.Bind(ctx, exec, &o); err != nil {
		return nil, fmt.Errorf("sqlboiler: failed to assign all query results to Report slice: %w", err)
	}
	return o, nil
}

func FindReport(ctx context.Context, exec boil.ContextExecutor, id string) (*Report, error) {
	return Reports(qm.Where(`"id" = ?`, id)).One(ctx, exec)
}

func (o *Report) Insert(ctx context.Context, exec boil.ContextExecutor) error {
	now := time.Now().UTC()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	if o.UpdatedAt.IsZero() {
		o.UpdatedAt = now
	}

	_, err := queries.Raw(`INSERT INTO "reports" (`+reportSelect+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		o.ID, o.AnalysisID, o.UserID, o.Format, o.ParamsHash, o.Status, o.ErrorMessage,
		o.ObjectName, o.ContentType, o.FileSizeBytes, o.CompletedAt, o.CreatedAt, o.UpdatedAt,
	).ExecContext(ctx, exec)
	if err != nil {
		return fmt.Errorf("sqlboiler: unable to insert into reports: %w", err)
	}
	return nil
}

// Update writes every mutable column of o and bumps UpdatedAt.
func (o *Report) Update(ctx context.Context, exec boil.ContextExecutor) (int64, error) {
	o.UpdatedAt = time.Now().UTC()

	res, err := queries.Raw(`UPDATE "reports" SET
			"status" = $2,
			"error_message" = $3,
			"object_name" = $4,
			"content_type" = $5,
			"file_size_bytes" = $6,
			"completed_at" = $7,
			"updated_at" = $8
		WHERE "id" = $1`,
		o.ID, o.Status, o.ErrorMessage, o.ObjectName, o.ContentType, o.FileSizeBytes, o.CompletedAt, o.UpdatedAt,
	).ExecContext(ctx, exec)
	if err != nil {
		return 0, fmt.Errorf("sqlboiler: unable to update reports row: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("sqlboiler: failed to get rows affected by update for reports: %w", err)
	}
	return n, nil
}
