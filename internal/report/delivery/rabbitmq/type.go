package rabbitmq

import (
	"fmt"

	pkgRabbit "insight-srv/pkg/rabbitmq"
)

const (
	ExchangeReport   = "insight.report"
	QueueExport      = "insight.report.export"
	RoutingKeyExport = "report.export"
	ConsumerExport   = "insight-consumer-report-export"

	// HeaderScopeToken carries a short-lived signed token with the scope of
	// the user that requested the export.
	HeaderScopeToken = "x-scope-token"
)

// ExportMessage is the body of an export job. Token is the caller's bearer
// token, encrypted.
type ExportMessage struct {
	ReportID string `json:"report_id"`
	Token    string `json:"token,omitempty"`
	Lang     string `json:"lang,omitempty"`
}

// DeclareTopology declares the export exchange and queue. Both sides call it
// so that either can start first.
func DeclareTopology(ch pkgRabbit.IChannel) error {
	if err := ch.ExchangeDeclare(pkgRabbit.ExchangeArgs{
		Name:    ExchangeReport,
		Type:    pkgRabbit.ExchangeTypeDirect,
		Durable: true,
	}); err != nil {
		return fmt.Errorf("declare exchange %s: %w", ExchangeReport, err)
	}

	if _, err := ch.QueueDeclare(pkgRabbit.QueueArgs{
		Name:    QueueExport,
		Durable: true,
	}); err != nil {
		return fmt.Errorf("declare queue %s: %w", QueueExport, err)
	}

	if err := ch.QueueBind(pkgRabbit.QueueBindArgs{
		Queue:      QueueExport,
		Exchange:   ExchangeReport,
		RoutingKey: RoutingKeyExport,
	}); err != nil {
		return fmt.Errorf("bind queue %s: %w", QueueExport, err)
	}
	return nil
}
