package producer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"insight-srv/internal/report"
	rabbitDelivery "insight-srv/internal/report/delivery/rabbitmq"
	pkgRabbit "insight-srv/pkg/rabbitmq"
	"insight-srv/pkg/scope"

	amqp "github.com/rabbitmq/amqp091-go"
)

// PublishExport queues an export job. The caller's scope travels as a signed
// header and the bearer token is encrypted in the body.
func (p *implProducer) PublishExport(ctx context.Context, job report.ExportJob) error {
	scopeToken, err := p.scopeMgr.CreateToken(scope.NewPayload(job.Scope, p.scopeTTL))
	if err != nil {
		return fmt.Errorf("failed to sign scope: %w", err)
	}

	msg := rabbitDelivery.ExportMessage{
		ReportID: job.ReportID,
		Lang:     job.Lang,
	}
	if job.Token != "" {
		msg.Token, err = p.encrypter.Encrypt(job.Token)
		if err != nil {
			return fmt.Errorf("failed to encrypt token: %w", err)
		}
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal export job: %w", err)
	}

	if err := p.ch.Publish(ctx, pkgRabbit.PublishArgs{
		Exchange:   rabbitDelivery.ExchangeReport,
		RoutingKey: rabbitDelivery.RoutingKeyExport,
		Msg: pkgRabbit.Publishing{
			ContentType:  pkgRabbit.ContentTypeJSON,
			DeliveryMode: amqp.Persistent,
			MessageId:    job.ReportID,
			Timestamp:    time.Now(),
			Headers:      amqp.Table{rabbitDelivery.HeaderScopeToken: scopeToken},
			Body:         body,
		},
	}); err != nil {
		return fmt.Errorf("failed to publish export job: %w", err)
	}

	p.l.Debugf(ctx, "report.delivery.rabbitmq.producer.PublishExport: Queued report %s", job.ReportID)
	return nil
}
