package kafka

import (
	"context"

	"github.com/iwtcode/slideService/internal/config"
	"github.com/iwtcode/slideService/internal/interfaces"
	"github.com/iwtcode/slideService/internal/middleware/logging"

	"github.com/segmentio/kafka-go"
)

type KafkaProducer struct {
	writer *kafka.Writer
}

// NewKafkaProducer создает новый экземпляр продюсера Kafka.
// Если Kafka выключена в конфигурации, возвращается nil.
func NewKafkaProducer(cfg *config.AppConfig, logger *logging.Logger) (interfaces.MessageProducer, error) {
	if !cfg.Kafka.Enable {
		logger.Info("Kafka producer disabled")
		return nil, nil
	}
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Kafka.Broker),
		Topic:                  cfg.Kafka.Topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	logger.Info("Kafka producer configured", "broker", cfg.Kafka.Broker, "topic", cfg.Kafka.Topic)
	return &KafkaProducer{writer: writer}, nil
}

// Produce отправляет сообщение в Kafka
func (p *KafkaProducer) Produce(ctx context.Context, key, value []byte) error {
	return p.writer.WriteMessages(ctx,
		kafka.Message{
			Key:   key,
			Value: value,
		},
	)
}

// Close закрывает соединение с Kafka
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}
