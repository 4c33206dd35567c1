package rabbitmq

import (
	"errors"
	"testing"

	pkgRabbit "insight-srv/pkg/rabbitmq"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	pkgRabbit.IChannel
	exchanges []pkgRabbit.ExchangeArgs
	queues    []pkgRabbit.QueueArgs
	binds     []pkgRabbit.QueueBindArgs
	queueErr  error
}

func (f *fakeChannel) ExchangeDeclare(exc pkgRabbit.ExchangeArgs) error {
	f.exchanges = append(f.exchanges, exc)
	return nil
}

func (f *fakeChannel) QueueDeclare(queue pkgRabbit.QueueArgs) (amqp.Queue, error) {
	if f.queueErr != nil {
		return amqp.Queue{}, f.queueErr
	}
	f.queues = append(f.queues, queue)
	return amqp.Queue{Name: queue.Name}, nil
}

func (f *fakeChannel) QueueBind(bind pkgRabbit.QueueBindArgs) error {
	f.binds = append(f.binds, bind)
	return nil
}

func TestDeclareTopology(t *testing.T) {
	ch := &fakeChannel{}
	require.NoError(t, DeclareTopology(ch))

	assert.Equal(t, []pkgRabbit.ExchangeArgs{{Name: ExchangeReport, Type: pkgRabbit.ExchangeTypeDirect, Durable: true}}, ch.exchanges)
	assert.Equal(t, []pkgRabbit.QueueArgs{{Name: QueueExport, Durable: true}}, ch.queues)
	assert.Equal(t, []pkgRabbit.QueueBindArgs{{Queue: QueueExport, Exchange: ExchangeReport, RoutingKey: RoutingKeyExport}}, ch.binds)

	boom := errors.New("access refused")
	err := DeclareTopology(&fakeChannel{queueErr: boom})
	assert.ErrorIs(t, err, boom)
}
