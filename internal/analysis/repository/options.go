package repository

import "encoding/json"

type CreateAnalysisOptions struct {
	ID           string
	UserID       string
	URL          string
	Platform     string
	Status       string
	Raw          json.RawMessage
	ErrorMessage string
}

type UpsertAnalysisOptions struct {
	ID         string
	ExternalID string
	UserID     string
	URL        string
	Platform   string
	Raw        json.RawMessage
}

type ListAnalysesOptions struct {
	UserID   string
	Platform string
	Status   string
	Limit    int64
	Offset   int64
}
