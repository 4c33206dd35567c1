package producer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"insight-srv/internal/model"
	"insight-srv/internal/report"
	rabbitDelivery "insight-srv/internal/report/delivery/rabbitmq"
	"insight-srv/pkg/encrypter"
	"insight-srv/pkg/log"
	pkgRabbit "insight-srv/pkg/rabbitmq"
	"insight-srv/pkg/scope"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type fakeChannel struct {
	pkgRabbit.IChannel
	published []pkgRabbit.PublishArgs
	err       error
}

func (f *fakeChannel) Publish(_ context.Context, args pkgRabbit.PublishArgs) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, args)
	return nil
}

func TestPublishExport(t *testing.T) {
	mgr := scope.New(testSecret)
	enc := encrypter.New(testSecret)
	sc := model.Scope{UserID: "u1", Username: "ana", Role: "USER"}

	t.Run("signs scope and encrypts token", func(t *testing.T) {
		ch := &fakeChannel{}
		p := New(log.NewNop(), ch, mgr, enc, time.Minute)

		require.NoError(t, p.PublishExport(context.Background(), report.ExportJob{ReportID: "r1", Scope: sc, Token: "bearer", Lang: "en"}))
		require.Len(t, ch.published, 1)

		args := ch.published[0]
		assert.Equal(t, rabbitDelivery.ExchangeReport, args.Exchange)
		assert.Equal(t, rabbitDelivery.RoutingKeyExport, args.RoutingKey)
		assert.Equal(t, uint8(amqp.Persistent), args.Msg.DeliveryMode)
		assert.Equal(t, "r1", args.Msg.MessageId)

		token, ok := args.Msg.Headers[rabbitDelivery.HeaderScopeToken].(string)
		require.True(t, ok)
		payload, err := mgr.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, sc, scope.NewScope(payload))

		var msg rabbitDelivery.ExportMessage
		require.NoError(t, json.Unmarshal(args.Msg.Body, &msg))
		assert.Equal(t, "r1", msg.ReportID)
		assert.Equal(t, "en", msg.Lang)
		assert.NotEqual(t, "bearer", msg.Token)

		plain, err := enc.Decrypt(msg.Token)
		require.NoError(t, err)
		assert.Equal(t, "bearer", plain)
	})

	t.Run("without token", func(t *testing.T) {
		ch := &fakeChannel{}
		p := New(log.NewNop(), ch, mgr, enc, 0)

		require.NoError(t, p.PublishExport(context.Background(), report.ExportJob{ReportID: "r1", Scope: sc}))
		var msg rabbitDelivery.ExportMessage
		require.NoError(t, json.Unmarshal(ch.published[0].Msg.Body, &msg))
		assert.Empty(t, msg.Token)
	})

	t.Run("broker error", func(t *testing.T) {
		boom := errors.New("channel closed")
		p := New(log.NewNop(), &fakeChannel{err: boom}, mgr, enc, time.Minute)

		err := p.PublishExport(context.Background(), report.ExportJob{ReportID: "r1", Scope: sc})
		assert.ErrorIs(t, err, boom)
	})
}
