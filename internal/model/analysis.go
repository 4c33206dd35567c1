package model

import (
	"encoding/json"
	"time"

	"insight-srv/internal/sqlboiler"

	"github.com/aarondl/null/v8"
)

// Analysis is one analysed social media post.
type Analysis struct {
	ID         string
	ExternalID string
	UserID     string

	URL      string
	Platform string // instagram | facebook | tiktok | youtube | other

	Status       string // PROCESSING | COMPLETED | FAILED
	ErrorMessage string

	// Raw is the analysis result exactly as the backend returned it.
	Raw json.RawMessage

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAnalysisFromDB converts a database row to model Analysis.
func NewAnalysisFromDB(db *sqlboiler.Analysis) *Analysis {
	if db == nil {
		return nil
	}

	a := &Analysis{
		ID:        db.ID,
		UserID:    db.UserID,
		URL:       db.URL,
		Platform:  db.Platform,
		Status:    db.Status,
		CreatedAt: db.CreatedAt,
		UpdatedAt: db.UpdatedAt,
	}
	if db.ExternalID.Valid {
		a.ExternalID = db.ExternalID.String
	}
	if db.ErrorMessage.Valid {
		a.ErrorMessage = db.ErrorMessage.String
	}
	if db.Raw.Valid {
		a.Raw = json.RawMessage(db.Raw.JSON)
	}
	return a
}

// ToDBAnalysis converts model Analysis to a database row.
func (a *Analysis) ToDBAnalysis() *sqlboiler.Analysis {
	db := &sqlboiler.Analysis{
		ID:        a.ID,
		UserID:    a.UserID,
		URL:       a.URL,
		Platform:  a.Platform,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if a.ExternalID != "" {
		db.ExternalID = null.StringFrom(a.ExternalID)
	}
	if a.ErrorMessage != "" {
		db.ErrorMessage = null.StringFrom(a.ErrorMessage)
	}
	if len(a.Raw) > 0 && string(a.Raw) != "null" {
		db.Raw = null.JSONFrom(a.Raw)
	}
	return db
}
