package kafka

import (
	"testing"

	"github.com/alimikegami/shopigo/config"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateKafkaProducer(t *testing.T) {
	producer := CreateKafkaProducer(&config.Config{
		KafkaConfig: config.KafkaConfig{
			BrokerAddress: "localhost:9092",
			BrokerTopic:   "product-events",
		},
	})
	require.NotNil(t, producer.writer)
	defer producer.Close()

	assert.Equal(t, "localhost:9092", producer.writer.Addr.String())
	assert.Equal(t, "product-events", producer.writer.Topic)
	assert.Equal(t, kafka.RequireOne, producer.writer.RequiredAcks)
	assert.True(t, producer.writer.Async)
	assert.IsType(t, &kafka.Hash{}, producer.writer.Balancer)
	assert.NotNil(t, producer.writer.Completion)
}
