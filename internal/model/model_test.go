package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAnalysisDBConversion(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tcs := map[string]Analysis{
		"completed": {
			ID:         "a1",
			ExternalID: "ext-1",
			UserID:     "u1",
			URL:        "https://instagram.com/p/1",
			Platform:   "instagram",
			Status:     "COMPLETED",
			Raw:        json.RawMessage(`{"id":"x"}`),
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		"failed without raw": {
			ID:           "a2",
			UserID:       "u1",
			URL:          "https://youtu.be/1",
			Platform:     "youtube",
			Status:       "FAILED",
			ErrorMessage: "Post privado",
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}

	for name, in := range tcs {
		t.Run(name, func(t *testing.T) {
			got := NewAnalysisFromDB(in.ToDBAnalysis())
			assert.Equal(t, in, *got)
		})
	}
}

func TestAnalysisNullRawIsDropped(t *testing.T) {
	a := Analysis{ID: "a", Raw: json.RawMessage("null")}
	assert.False(t, a.ToDBAnalysis().Raw.Valid)
	assert.Nil(t, NewAnalysisFromDB(nil))
}

func TestReportDBConversion(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	done := now.Add(time.Minute)

	in := Report{
		ID:            "r1",
		AnalysisID:    "a1",
		UserID:        "u1",
		Format:        "pdf",
		ParamsHash:    "h",
		Status:        "COMPLETED",
		ObjectName:    "reports/r1.pdf",
		ContentType:   "application/pdf",
		FileSizeBytes: 42,
		CompletedAt:   &done,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	got := NewReportFromDB(in.ToDBReport())
	assert.Equal(t, in, *got)
	assert.Nil(t, NewReportFromDB(nil))
}
