package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iwtcode/slideService/internal/domain/models"
	"github.com/iwtcode/slideService/internal/interfaces"
	"github.com/iwtcode/slideService/internal/middleware/logging"
)

// Publisher сериализует событие в JSON и отправляет его всем продюсерам.
// Ключом сообщения служит тип события.
type Publisher struct {
	producers []interfaces.MessageProducer
	logger    *logging.Logger
}

// NewPublisher принимает продюсеров; nil-продюсеры (выключенные) пропускаются.
func NewPublisher(producers []interfaces.MessageProducer, logger *logging.Logger) interfaces.EventPublisher {
	active := make([]interfaces.MessageProducer, 0, len(producers))
	for _, p := range producers {
		if p != nil {
			active = append(active, p)
		}
	}
	return &Publisher{
		producers: active,
		logger:    logger.WithPrefix("EVENTS"),
	}
}

func (p *Publisher) Publish(ctx context.Context, event models.SlideEvent) error {
	if len(p.producers) == 0 {
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("не удалось сериализовать событие %s: %w", event.ID, err)
	}

	var errs []error
	for _, producer := range p.producers {
		if err := producer.Produce(ctx, []byte(event.Type), payload); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	p.logger.Debug("Slide event published", "eventID", event.ID, "slide", event.Slide, "producers", len(p.producers))
	return nil
}

func (p *Publisher) Close() error {
	var errs []error
	for _, producer := range p.producers {
		if err := producer.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
