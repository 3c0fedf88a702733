package interfaces

import (
	"context"
	"time"

	"github.com/iwtcode/slideService/internal/domain/models"
)

// ConfigStore загружает пороги и изображения (action=getConfig).
type ConfigStore interface {
	LoadConfig(ctx context.Context) (*models.Configuration, error)
}

// MetricFetcher получает текущее значение метрики (action=getData).
type MetricFetcher interface {
	FetchCurrentValue(ctx context.Context) (float64, error)
}

// RemoteSource - удаленный источник данных, обслуживающий оба действия.
type RemoteSource interface {
	ConfigStore
	MetricFetcher
}

// SourceFactory создает RemoteSource для сохраненного адреса.
type SourceFactory func(endpoint string) RemoteSource

// SlideshowService - это агрегирующий интерфейс для всей бизнес-логики.
type SlideshowService interface {
	Initialize(ctx context.Context) error
	ReloadConfig(ctx context.Context) error
	Refresh(ctx context.Context) error
	Config() (*models.Configuration, bool)
	State() models.ViewState
	Subscribe() (<-chan models.ViewState, func())
	Resolve(value float64, thresholds []float64) (int, error)
	PollingManager
	Shutdown()
}

// PollingManager определяет контракт для периодического опроса источника.
type PollingManager interface {
	StartPolling(interval time.Duration) error
	StopPolling()
	PollingStatus() models.PollingStatus
}
