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

// Analysis is a row of the analyses table.
type Analysis struct {
	ID           string      `boil:"id" json:"id"`
	ExternalID   null.String `boil:"external_id" json:"external_id,omitempty"`
	UserID       string      `boil:"user_id" json:"user_id"`
	URL          string      `boil:"url" json:"url"`
	Platform     string      `boil:"platform" json:"platform"`
	Status       string      `boil:"status" json:"status"`
	Raw          null.JSON   `boil:"raw" json:"raw,omitempty"`
	ErrorMessage null.String `boil:"error_message" json:"error_message,omitempty"`
	CreatedAt    time.Time   `boil:"created_at" json:"created_at"`
	UpdatedAt    time.Time   `boil:"updated_at" json:"updated_at"`
}

var AnalysisColumns = struct {
	ID           string
	ExternalID   string
	UserID       string
	URL          string
	Platform     string
	Status       string
	Raw          string
	ErrorMessage string
	CreatedAt    string
	UpdatedAt    string
}{
	ID:           "id",
	ExternalID:   "external_id",
	UserID:       "user_id",
	URL:          "url",
	Platform:     "platform",
	Status:       "status",
	Raw:          "raw",
	ErrorMessage: "error_message",
	CreatedAt:    "created_at",
	UpdatedAt:    "updated_at",
}

const analysisSelect = `"id", "external_id", "user_id", "url", "platform", "status", "raw", "error_message", "created_at", "updated_at"`

// analysisUpsertQuery repeats the predicate of the partial unique index on
// external_id so Postgres can infer it as the conflict target.
const analysisUpsertQuery = `INSERT INTO "analyses" (` + analysisSelect + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT ("external_id") WHERE "external_id" IS NOT NULL DO UPDATE SET
		"user_id" = EXCLUDED."user_id",
		"url" = EXCLUDED."url",
		"platform" = EXCLUDED."platform",
		"status" = EXCLUDED."status",
		"raw" = EXCLUDED."raw",
		"error_message" = EXCLUDED."error_message",
		"updated_at" = EXCLUDED."updated_at"
	RETURNING ` + analysisSelect

type analysisQuery struct {
	*queries.Query
}

// Analyses starts a query on the analyses table.
func Analyses(mods ...qm.QueryMod) analysisQuery {
	mods = append([]qm.QueryMod{qm.From(`"analyses"`)}, mods...)
	return analysisQuery{NewQuery(mods...)}
}

// One returns a single row. sql.ErrNoRows when none matches.
func (q analysisQuery) One(ctx context.Context, exec boil.ContextExecutor) (*Analysis, error) {
	o := &Analysis{}
	qm.Apply(q.Query, qm.Select(analysisSelect), qm.Limit(1))
	if err := q.Bind(ctx, exec, o); err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("sqlboiler: failed to execute a one query for analyses: %w", err)
	}
	return o, nil
}

func (q analysisQuery) All(ctx context.Context, exec boil.ContextExecutor) ([]*Analysis, error) {
	var o []*Analysis
	qm.Apply(q.Query, qm.Select(analysisSelect))
	if err := q.Bind(ctx, exec, &o); err != nil {
		return nil, fmt.Errorf("sqlboiler: failed to assign all query results to Analysis slice: %w", err)
	}
	return o, nil
}

func (q analysisQuery) Count(ctx context.Context, exec boil.ContextExecutor) (int64, error) {
	var count int64
	queries.SetSelect(q.Query, nil)
	queries.SetCount(q.Query)
	if err := q.QueryRowContext(ctx, exec).Scan(&count); err != nil {
		return 0, fmt.Errorf("sqlboiler: failed to count analyses rows: %w", err)
	}
	return count, nil
}

// FindAnalysis retrieves a row by primary key.
func FindAnalysis(ctx context.Context, exec boil.ContextExecutor, id string) (*Analysis, error) {
	return Analyses(qm.Where(`"id" = ?`, id)).One(ctx, exec)
}

// Insert writes o. CreatedAt and UpdatedAt are set when zero.
func (o *Analysis) Insert(ctx context.Context, exec boil.ContextExecutor) error {
	now := time.Now().UTC()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	if o.UpdatedAt.IsZero() {
		o.UpdatedAt = now
	}

	_, err := queries.Raw(`INSERT INTO "analyses" (`+analysisSelect+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		o.ID, o.ExternalID, o.UserID, o.URL, o.Platform, o.Status, o.Raw, o.ErrorMessage, o.CreatedAt, o.UpdatedAt,
	).ExecContext(ctx, exec)
	if err != nil {
		return fmt.Errorf("sqlboiler: unable to insert into analyses: %w", err)
	}
	return nil
}

// Upsert inserts o or, when a row with the same external_id exists, replaces
// its mutable columns. o is refreshed from the stored row.
func (o *Analysis) Upsert(ctx context.Context, exec boil.ContextExecutor) error {
	now := time.Now().UTC()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = now
	}
	o.UpdatedAt = now

	err := queries.Raw(analysisUpsertQuery,
		o.ID, o.ExternalID, o.UserID, o.URL, o.Platform, o.Status, o.Raw, o.ErrorMessage, o.CreatedAt, o.UpdatedAt,
	).Bind(ctx, exec, o)
	if err != nil {
		return fmt.Errorf("sqlboiler: unable to upsert analyses: %w", err)
	}
	return nil
}

// Delete removes o by primary key and returns the number of rows affected.
func (o *Analysis) Delete(ctx context.Context, exec boil.ContextExecutor) (int64, error) {
	res, err := queries.Raw(`DELETE FROM "analyses" WHERE "id" = $1`, o.ID).ExecContext(ctx, exec)
	if err != nil {
		return 0, fmt.Errorf("sqlboiler: unable to delete from analyses: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("sqlboiler: failed to get rows affected by delete for analyses: %w", err)
	}
	return n, nil
}
