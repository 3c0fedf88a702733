package usecases

import (
	"github.com/iwtcode/slideService/internal/interfaces"
	"github.com/iwtcode/slideService/internal/middleware/logging"
)

// UseCases - агрегатор всех use case интерфейсов
type UseCases struct {
	interfaces.Usecases
}

// NewUsecases - конструктор для UseCases
func NewUsecases(
	slideSvc interfaces.SlideshowService,
	settings interfaces.SettingsRepository,
	logger *logging.Logger,
) interfaces.Usecases {
	return NewUsecase(slideSvc, settings, logger)
}
