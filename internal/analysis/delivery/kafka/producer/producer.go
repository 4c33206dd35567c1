package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"insight-srv/internal/analysis"
	kafkaDelivery "insight-srv/internal/analysis/delivery/kafka"
)

// PublishDashboardReady publishes the event keyed by analysis id so that
// events of one analysis stay ordered.
func (p *implProducer) PublishDashboardReady(ctx context.Context, event analysis.DashboardReadyEvent) error {
	metrics := make([]kafkaDelivery.MetricMessage, 0, len(event.Metrics))
	for _, m := range event.Metrics {
		metrics = append(metrics, kafkaDelivery.MetricMessage{
			Key:   m.Key,
			Label: m.Label,
			Value: m.Value,
		})
	}

	body, err := json.Marshal(kafkaDelivery.DashboardReadyMessage{
		AnalysisID: event.AnalysisID,
		UserID:     event.UserID,
		Platform:   event.Platform,
		Metrics:    metrics,
		ReadyAt:    event.ReadyAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal dashboard ready event: %w", err)
	}

	if err := p.producer.Publish([]byte(event.AnalysisID), body); err != nil {
		return fmt.Errorf("failed to publish dashboard ready event: %w", err)
	}

	p.l.Debugf(ctx, "analysis.delivery.kafka.producer.PublishDashboardReady: Published dashboard of %s", event.AnalysisID)
	return nil
}
