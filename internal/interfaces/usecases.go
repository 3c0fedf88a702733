package interfaces

import (
	"context"
	"time"

	"github.com/iwtcode/slideService/internal/domain/models"
)

// Usecases - это агрегирующий интерфейс для всех use cases
type Usecases interface {
	Initialize(ctx context.Context) error
	ReloadConfig(ctx context.Context) error
	Refresh(ctx context.Context) error
	GetConfig() (*models.Configuration, error)
	GetState() models.ViewState
	SubscribeState() (<-chan models.ViewState, func())
	Resolve(value float64, thresholds []float64) (int, error)

	GetEndpoint() (string, error)
	SetEndpoint(url string) error
	DeleteEndpoint() error

	StartPolling(interval time.Duration) error
	StopPolling()
	GetPollingStatus() models.PollingStatus
}
