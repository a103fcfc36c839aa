package kafka

import (
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProducer_ValidatesConfig(t *testing.T) {
	_, err := NewProducer(Config{Topic: "t"})
	assert.Error(t, err)

	_, err = NewProducer(Config{Brokers: []string{"localhost:9092"}})
	assert.Error(t, err)
}

func TestNewConsumer_ValidatesConfig(t *testing.T) {
	_, err := NewConsumer(ConsumerConfig{GroupID: "g"})
	assert.Error(t, err)

	_, err = NewConsumer(ConsumerConfig{Brokers: []string{"localhost:9092"}})
	assert.Error(t, err)
}

func TestProducer_Publish(t *testing.T) {
	sp := mocks.NewSyncProducer(t, producerConfig())
	sp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		assert.JSONEq(t, `{"a":1}`, string(val))
		return nil
	})
	sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := &producerImpl{producer: sp, topic: "actions"}

	require.NoError(t, p.Publish([]byte("k"), []byte(`{"a":1}`)))
	assert.ErrorIs(t, p.Publish([]byte("k"), []byte(`{}`)), sarama.ErrOutOfBrokers)
	require.NoError(t, p.HealthCheck())
	require.NoError(t, p.Close())
}
