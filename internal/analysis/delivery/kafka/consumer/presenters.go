package consumer

import (
	"insight-srv/internal/analysis"
	kafkaDelivery "insight-srv/internal/analysis/delivery/kafka"
	"insight-srv/pkg/payload"
)

func toIngestInput(m kafkaDelivery.AnalysisCompletedMessage) (analysis.IngestInput, error) {
	raw, err := payload.Parse(m.Result)
	if err != nil {
		return analysis.IngestInput{}, err
	}

	return analysis.IngestInput{
		ExternalID: m.AnalysisID,
		UserID:     m.UserID,
		URL:        m.URL,
		Payload:    raw,
	}, nil
}
