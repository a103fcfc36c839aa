package consumer

import (
	"context"
	"errors"
	"testing"
	"time"

	"sg-console-srv/internal/actionlog"
	"sg-console-srv/internal/model"
	"sg-console-srv/pkg/log"

	"github.com/IBM/sarama"
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

func newTestConsumer(uc actionlog.UseCase) *consumer {
	return &consumer{l: log.NewNop(), topic: "sg-console.actions", uc: uc, retryDelay: time.Millisecond}
}

type fakeSession struct {
	sarama.ConsumerGroupSession
	marked []int64
}

func (s *fakeSession) Context() context.Context {
	return context.Background()
}

func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, metadata string) {
	s.marked = append(s.marked, msg.Offset)
}

type fakeClaim struct {
	sarama.ConsumerGroupClaim
	messages chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage {
	return c.messages
}

func newFakeClaim(bodies ...[]byte) *fakeClaim {
	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage, len(bodies))}
	for i, body := range bodies {
		claim.messages <- &sarama.ConsumerMessage{Offset: int64(i), Value: body}
	}
	close(claim.messages)
	return claim
}

func TestHandleActionMessage(t *testing.T) {
	body := []byte(`{"id":"evt-1","action":"delete","resource_type":"volume","resource_id":"vol-1","project_id":"p1","created_at":"2026-03-01T10:00:00Z"}`)

	t.Run("stores event", func(t *testing.T) {
		uc := &fakeUseCase{}
		err := newTestConsumer(uc).handleActionMessage(context.Background(), &sarama.ConsumerMessage{Value: body})
		require.NoError(t, err)
		require.Len(t, uc.stored, 1)
		assert.Equal(t, "evt-1", uc.stored[0].ID)
		assert.Equal(t, "vol-1", uc.stored[0].ResourceID)
		assert.Equal(t, "p1", uc.stored[0].ProjectID)
		assert.Equal(t, 2026, uc.stored[0].CreatedAt.Year())
	})

	t.Run("skips malformed json", func(t *testing.T) {
		uc := &fakeUseCase{}
		err := newTestConsumer(uc).handleActionMessage(context.Background(), &sarama.ConsumerMessage{Value: []byte("{")})
		assert.NoError(t, err)
		assert.Empty(t, uc.stored)
	})

	t.Run("skips invalid event", func(t *testing.T) {
		uc := &fakeUseCase{err: actionlog.ErrInvalidEvent}
		err := newTestConsumer(uc).handleActionMessage(context.Background(), &sarama.ConsumerMessage{Value: []byte(`{}`)})
		assert.NoError(t, err)
	})

	t.Run("store failure is returned", func(t *testing.T) {
		uc := &fakeUseCase{err: errors.New("db down")}
		err := newTestConsumer(uc).handleActionMessage(context.Background(), &sarama.ConsumerMessage{Value: body})
		assert.ErrorContains(t, err, "db down")
	})
}

func TestConsumeClaim(t *testing.T) {
	body := []byte(`{"id":"evt-1","action":"delete","resource_type":"volume","resource_id":"vol-1","created_at":"2026-03-01T10:00:00Z"}`)

	t.Run("marks stored and skipped messages", func(t *testing.T) {
		uc := &fakeUseCase{}
		session := &fakeSession{}
		h := &actionHandler{consumer: newTestConsumer(uc)}

		err := h.ConsumeClaim(session, newFakeClaim(body, []byte("{"), body))
		require.NoError(t, err)
		assert.Equal(t, []int64{0, 1, 2}, session.marked)
		assert.Len(t, uc.stored, 2)
	})

	t.Run("store failure stops before marking", func(t *testing.T) {
		uc := &fakeUseCase{err: errors.New("db down")}
		session := &fakeSession{}
		claim := newFakeClaim(body, body)
		h := &actionHandler{consumer: newTestConsumer(uc)}

		err := h.ConsumeClaim(session, claim)
		assert.ErrorContains(t, err, "offset 0")
		assert.Empty(t, session.marked)
		assert.Len(t, claim.messages, 1)
	})
}

func TestNew_RequiresDependencies(t *testing.T) {
	_, err := New(Config{Logger: log.NewNop(), Topic: "t", UseCase: &fakeUseCase{}})
	assert.Error(t, err)

	_, err = New(Config{Logger: log.NewNop(), UseCase: &fakeUseCase{}})
	assert.Error(t, err)
}
