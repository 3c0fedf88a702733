package usecases

import (
	"context"
	"time"

	"github.com/iwtcode/slideService/internal/domain/models"
	"github.com/iwtcode/slideService/internal/interfaces"
	"github.com/iwtcode/slideService/internal/middleware/logging"
	apperrors "github.com/iwtcode/slideService/pkg/errors"
)

type Usecase struct {
	slideSvc interfaces.SlideshowService
	settings interfaces.SettingsRepository
	logger   *logging.Logger
}

func NewUsecase(slideSvc interfaces.SlideshowService, settings interfaces.SettingsRepository, logger *logging.Logger) interfaces.Usecases {
	return &Usecase{
		slideSvc: slideSvc,
		settings: settings,
		logger:   logger.WithPrefix("USECASE"),
	}
}

func (u *Usecase) Initialize(ctx context.Context) error {
	return u.slideSvc.Initialize(ctx)
}

func (u *Usecase) ReloadConfig(ctx context.Context) error {
	return u.slideSvc.ReloadConfig(ctx)
}

func (u *Usecase) Refresh(ctx context.Context) error {
	return u.slideSvc.Refresh(ctx)
}

func (u *Usecase) GetConfig() (*models.Configuration, error) {
	cfg, ok := u.slideSvc.Config()
	if !ok {
		return nil, apperrors.ErrNotInitialized
	}
	return cfg, nil
}

func (u *Usecase) GetState() models.ViewState {
	return u.slideSvc.State()
}

func (u *Usecase) SubscribeState() (<-chan models.ViewState, func()) {
	return u.slideSvc.Subscribe()
}

func (u *Usecase) Resolve(value float64, thresholds []float64) (int, error) {
	return u.slideSvc.Resolve(value, thresholds)
}

func (u *Usecase) StartPolling(interval time.Duration) error {
	return u.slideSvc.StartPolling(interval)
}

func (u *Usecase) StopPolling() {
	u.slideSvc.StopPolling()
}

func (u *Usecase) GetPollingStatus() models.PollingStatus {
	return u.slideSvc.PollingStatus()
}
