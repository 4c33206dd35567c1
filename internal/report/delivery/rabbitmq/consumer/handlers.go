package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"insight-srv/internal/report"
	rabbitDelivery "insight-srv/internal/report/delivery/rabbitmq"
	"insight-srv/pkg/scope"

	amqp "github.com/rabbitmq/amqp091-go"
)

// handleExportMessage runs one export job. Malformed jobs and jobs whose
// failure is already recorded on the report are dropped with nil.
func (c *consumer) handleExportMessage(ctx context.Context, d amqp.Delivery) error {
	var msg rabbitDelivery.ExportMessage
	if err := json.Unmarshal(d.Body, &msg); err != nil {
		c.l.Warnf(ctx, "report.delivery.rabbitmq.consumer.handleExportMessage: Invalid message, skipping: %v", err)
		return nil
	}
	if msg.ReportID == "" {
		c.l.Warnf(ctx, "report.delivery.rabbitmq.consumer.handleExportMessage: Message without report id, skipping")
		return nil
	}

	scopeToken, _ := d.Headers[rabbitDelivery.HeaderScopeToken].(string)
	payload, err := c.scopeMgr.Verify(scopeToken)
	if err != nil {
		c.l.Warnf(ctx, "report.delivery.rabbitmq.consumer.handleExportMessage: Invalid scope for report %s, skipping: %v", msg.ReportID, err)
		return nil
	}
	sc := scope.NewScope(payload)
	if sc.IsZero() {
		c.l.Warnf(ctx, "report.delivery.rabbitmq.consumer.handleExportMessage: Scope without user for report %s, skipping", msg.ReportID)
		return nil
	}

	input, err := c.toProcessInput(msg)
	if err != nil {
		c.l.Warnf(ctx, "report.delivery.rabbitmq.consumer.handleExportMessage: Failed to decrypt token of report %s, skipping: %v", msg.ReportID, err)
		return nil
	}

	if err := c.uc.Process(ctx, sc, input); err != nil {
		if isPermanent(err) {
			c.l.Warnf(ctx, "report.delivery.rabbitmq.consumer.handleExportMessage: Report %s not exported: %v", msg.ReportID, err)
			return nil
		}
		return fmt.Errorf("process report %s: %w", msg.ReportID, err)
	}
	return nil
}

func isPermanent(err error) bool {
	return errors.Is(err, report.ErrReportNotFound) ||
		errors.Is(err, report.ErrForbidden) ||
		errors.Is(err, report.ErrExportFailed)
}
