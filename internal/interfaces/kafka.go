package interfaces

import (
	"context"

	"github.com/iwtcode/slideService/internal/domain/models"
)

// MessageProducer определяет контракт для отправки данных во внешние системы (Kafka, MQTT)
type MessageProducer interface {
	Produce(ctx context.Context, key, value []byte) error
	Close() error
}

// EventPublisher рассылает события слайд-шоу всем подключенным продюсерам
type EventPublisher interface {
	Publish(ctx context.Context, event models.SlideEvent) error
	Close() error
}
