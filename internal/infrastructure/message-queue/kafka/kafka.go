package kafka

import (
	"context"
	"time"

	"github.com/alimikegami/shopigo/config"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

// Producer publishes product events. Publish returns once the message is
// queued; delivery failures are only logged.
type Producer struct {
	writer *kafka.Writer
}

func CreateKafkaProducer(config *config.Config) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(config.KafkaConfig.BrokerAddress),
		Topic:        config.KafkaConfig.BrokerTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 100 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		Async:        true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				log.Error().Err(err).Str("component", "KafkaProducer").Int("messages", len(messages)).Msg("failed to deliver product events")
			}
		},
	}

	return &Producer{writer: writer}
}

func (p *Producer) Publish(ctx context.Context, key string, value []byte) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	})
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
