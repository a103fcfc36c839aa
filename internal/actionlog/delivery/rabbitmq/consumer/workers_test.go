package consumer

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"sg-console-srv/internal/actionlog"
	"sg-console-srv/internal/model"
	"sg-console-srv/pkg/log"
	"sg-console-srv/pkg/rabbitmq"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUseCase struct {
	actionlog.UseCase
	stored []actionlog.ActionEvent
	err    error
}

func (u *fakeUseCase) Store(ctx context.Context, event actionlog.ActionEvent) error {
	if u.err != nil {
		return u.err
	}
	u.stored = append(u.stored, event)
	return nil
}

func (u *fakeUseCase) Record(ctx context.Context, sc model.Scope, input actionlog.RecordInput) {}

type fakeAcknowledger struct {
	acked   atomic.Int32
	nacked  atomic.Int32
	requeue atomic.Bool
}

func (a *fakeAcknowledger) Ack(tag uint64, multiple bool) error {
	a.acked.Add(1)
	return nil
}

func (a *fakeAcknowledger) Nack(tag uint64, multiple, requeue bool) error {
	a.nacked.Add(1)
	a.requeue.Store(requeue)
	return nil
}

func (a *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	return nil
}

type fakeChannel struct {
	rabbitmq.IChannel
	exchange   rabbitmq.ExchangeArgs
	queue      rabbitmq.QueueArgs
	bind       rabbitmq.QueueBindArgs
	prefetch   int
	deliveries chan amqp.Delivery
}

func (f *fakeChannel) ExchangeDeclare(exc rabbitmq.ExchangeArgs) error {
	f.exchange = exc
	return nil
}

func (f *fakeChannel) QueueDeclare(queue rabbitmq.QueueArgs) (amqp.Queue, error) {
	f.queue = queue
	return amqp.Queue{Name: queue.Name}, nil
}

func (f *fakeChannel) QueueBind(queueBind rabbitmq.QueueBindArgs) error {
	f.bind = queueBind
	return nil
}

func (f *fakeChannel) Qos(prefetchCount int) error {
	f.prefetch = prefetchCount
	return nil
}

func (f *fakeChannel) Consume(consume rabbitmq.ConsumeArgs) (<-chan amqp.Delivery, error) {
	return f.deliveries, nil
}

func newTestConsumer(uc actionlog.UseCase, ch rabbitmq.IChannel) *consumer {
	return &consumer{
		l:          log.NewNop(),
		ch:         ch,
		exchange:   "sg-console.actions",
		queue:      "sg-console.action-log",
		uc:         uc,
		retryDelay: time.Millisecond,
	}
}

var validBody = []byte(`{"id":"evt-1","action":"delete","resource_type":"volume","resource_id":"vol-1","created_at":"2026-03-01T10:00:00Z"}`)

func TestProcess(t *testing.T) {
	tcs := map[string]struct {
		body       []byte
		storeErr   error
		wantStored int
		wantAck    int32
		wantNack   int32
	}{
		"stored and acked":        {body: validBody, wantStored: 1, wantAck: 1},
		"malformed json is acked": {body: []byte("{"), wantAck: 1},
		"invalid event is acked":  {body: []byte(`{}`), storeErr: actionlog.ErrInvalidEvent, wantAck: 1},
		"store failure requeues":  {body: validBody, storeErr: errors.New("db down"), wantNack: 1},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			uc := &fakeUseCase{err: tc.storeErr}
			ack := &fakeAcknowledger{}
			c := newTestConsumer(uc, &fakeChannel{})

			c.process(context.Background(), amqp.Delivery{Acknowledger: ack, Body: tc.body})

			assert.Len(t, uc.stored, tc.wantStored)
			assert.Equal(t, tc.wantAck, ack.acked.Load())
			assert.Equal(t, tc.wantNack, ack.nacked.Load())
			if tc.wantNack > 0 {
				assert.True(t, ack.requeue.Load())
			}
		})
	}
}

func TestProcess_DelaysRequeue(t *testing.T) {
	uc := &fakeUseCase{err: errors.New("db down")}
	ack := &fakeAcknowledger{}
	c := newTestConsumer(uc, &fakeChannel{})
	c.retryDelay = 50 * time.Millisecond

	started := time.Now()
	c.process(context.Background(), amqp.Delivery{Acknowledger: ack, Body: validBody})

	assert.GreaterOrEqual(t, time.Since(started), 50*time.Millisecond)
	assert.Equal(t, int32(1), ack.nacked.Load())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c.retryDelay = time.Hour
	c.process(ctx, amqp.Delivery{Acknowledger: ack, Body: validBody})
	assert.Equal(t, int32(2), ack.nacked.Load())
}

func TestConsumeActions(t *testing.T) {
	uc := &fakeUseCase{}
	ch := &fakeChannel{deliveries: make(chan amqp.Delivery, 1)}
	c := newTestConsumer(uc, ch)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, c.ConsumeActions(ctx))

	assert.Equal(t, rabbitmq.ExchangeTypeTopic, ch.exchange.Type)
	assert.True(t, ch.queue.Durable)
	assert.Equal(t, "action.#", ch.bind.RoutingKey)
	assert.Equal(t, "sg-console.actions", ch.bind.Exchange)
	assert.Positive(t, ch.prefetch)

	ack := &fakeAcknowledger{}
	ch.deliveries <- amqp.Delivery{Acknowledger: ack, Body: validBody}
	assert.Eventually(t, func() bool { return ack.acked.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestNew_RequiresDependencies(t *testing.T) {
	_, err := New(Config{Logger: log.NewNop(), Exchange: "x", Queue: "q", UseCase: &fakeUseCase{}})
	assert.Error(t, err)

	_, err = New(Config{Logger: log.NewNop(), Channel: &fakeChannel{}, Queue: "q", UseCase: &fakeUseCase{}})
	assert.Error(t, err)

	c, err := New(Config{Logger: log.NewNop(), Channel: &fakeChannel{}, Exchange: "x", Queue: "q", UseCase: &fakeUseCase{}})
	require.NoError(t, err)
	assert.Equal(t, rabbitmq.DefaultRetryDelay, c.(*consumer).retryDelay)
}
