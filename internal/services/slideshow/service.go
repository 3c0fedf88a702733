package slideshow

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/iwtcode/slideService/internal/domain/entities"
	"github.com/iwtcode/slideService/internal/domain/models"
	"github.com/iwtcode/slideService/internal/interfaces"
	"github.com/iwtcode/slideService/internal/middleware/logging"
	apperrors "github.com/iwtcode/slideService/pkg/errors"
)

// publishTimeout ограничивает отправку одного события во внешние системы.
const publishTimeout = 5 * time.Second

type Options struct {
	PollInterval time.Duration
	FadeDelay    time.Duration
	BannerTTL    time.Duration
}

// Service - слайд-шоу: загрузка конфигурации, периодический опрос
// источника и управление экраном.
type Service struct {
	settings  interfaces.SettingsRepository
	newSource interfaces.SourceFactory
	publisher interfaces.EventPublisher
	opts      Options

	view      *View
	display   *DisplayController
	scheduler *Scheduler
	logger    *logging.Logger

	mu          sync.Mutex
	config      *models.Configuration
	source      interfaces.RemoteSource
	total       float64
	tickSeq     uint64
	appliedSeq  uint64
	cancelTicks context.CancelFunc
}

// New собирает слайд-шоу из хранилища настроек, фабрики источников,
// загрузчика изображений и издателя событий.
func New(
	settings interfaces.SettingsRepository,
	newSource interfaces.SourceFactory,
	acquirer ImageAcquirer,
	publisher interfaces.EventPublisher,
	opts Options,
	logger *logging.Logger,
) *Service {
	base, cancel := context.WithCancel(context.Background())

	view := NewView(opts.BannerTTL)
	s := &Service{
		settings:    settings,
		newSource:   newSource,
		publisher:   publisher,
		opts:        opts,
		view:        view,
		display:     NewDisplayController(acquirer, view, opts.FadeDelay, logger),
		scheduler:   NewScheduler(base, logger),
		logger:      logger.WithPrefix("SLIDESHOW"),
		cancelTicks: cancel,
	}
	s.display.OnChange(s.slideChanged)
	return s
}

// Initialize выполняет запуск: читает сохраненный адрес, загружает
// конфигурацию, выполняет первый тик и запускает периодический опрос.
// Ошибка на любом шаге прерывает запуск, опрос не начинается.
func (s *Service) Initialize(ctx context.Context) error {
	s.logger.Info("Initializing slideshow")

	endpoint, err := s.endpoint()
	if err != nil {
		s.view.ShowError("API URL is not configured. Set it from the admin screen.")
		return err
	}

	if err := s.loadConfig(ctx, s.newSource(endpoint)); err != nil {
		s.view.ShowError(fmt.Sprintf("Initialization failed: %v", err))
		return fmt.Errorf("%w: %w", apperrors.ErrConfigLoad, err)
	}

	// Ошибка первого тика уже показана баннером и не мешает запуску опроса.
	_ = s.Refresh(ctx)

	return s.StartPolling(s.opts.PollInterval)
}

func (s *Service) endpoint() (string, error) {
	setting, err := s.settings.Get(entities.EndpointSettingKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrConfigUnavailable
		}
		return "", fmt.Errorf("%w: %v", apperrors.ErrConfigUnavailable, err)
	}
	if setting.Value == "" {
		return "", apperrors.ErrConfigUnavailable
	}
	return setting.Value, nil
}

// ReloadConfig перечитывает сохраненный адрес и конфигурацию.
// Текущий слайд пересчитывается на следующем тике.
func (s *Service) ReloadConfig(ctx context.Context) error {
	endpoint, err := s.endpoint()
	if err != nil {
		return err
	}
	if err := s.loadConfig(ctx, s.newSource(endpoint)); err != nil {
		s.view.ShowError(fmt.Sprintf("Failed to reload configuration: %v", err))
		return fmt.Errorf("%w: %w", apperrors.ErrConfigLoad, err)
	}
	return nil
}

func (s *Service) loadConfig(ctx context.Context, source interfaces.RemoteSource) error {
	s.view.BeginLoading()
	defer s.view.EndLoading()

	cfg, err := source.LoadConfig(ctx)
	if err != nil {
		s.logger.Error("Failed to load configuration", "error", err)
		return err
	}

	s.mu.Lock()
	s.config = cfg
	s.source = source
	s.mu.Unlock()
	return nil
}

// Refresh выполняет один тик: получение значения, вычисление слайда,
// применение к экрану. Ошибка получения показывается баннером и не влияет
// на следующие тики. Ответ тика, начатого раньше уже примененного,
// отбрасывается.
func (s *Service) Refresh(ctx context.Context) error {
	s.mu.Lock()
	source := s.source
	if source == nil {
		s.mu.Unlock()
		return apperrors.ErrNotInitialized
	}
	s.tickSeq++
	seq := s.tickSeq
	s.mu.Unlock()

	s.view.BeginLoading()
	defer s.view.EndLoading()

	value, err := source.FetchCurrentValue(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch data", "tick", seq, "error", err)
		s.view.ShowError(fmt.Sprintf("Failed to fetch data: %v", err))
		return fmt.Errorf("%w: %w", apperrors.ErrDataFetch, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq < s.appliedSeq {
		s.logger.Warn("Discarding stale tick result", "tick", seq, "applied", s.appliedSeq, "value", value)
		return nil
	}
	s.appliedSeq = seq
	s.total = value

	s.view.SetTotal(value)
	slide := Resolve(value, s.config.Thresholds)
	s.logger.Debug("Tick applied", "tick", seq, "value", value, "slide", slide)
	s.display.Apply(ctx, slide, s.config.Images)
	return nil
}

// slideChanged вызывается DisplayController под s.mu из Refresh.
func (s *Service) slideChanged(change SlideChange) {
	if s.publisher == nil {
		return
	}
	event := models.SlideEvent{
		ID:            uuid.New().String(),
		Type:          models.EventSlideChanged,
		PreviousSlide: change.Previous,
		Slide:         change.Current,
		TotalValue:    s.total,
		ImageURL:      change.ImageURL,
		Timestamp:     time.Now().UTC(),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Error("Failed to publish slide event", "eventID", event.ID, "error", err)
		}
	}()
}

func (s *Service) tick(ctx context.Context) {
	_ = s.Refresh(ctx)
}

func (s *Service) StartPolling(interval time.Duration) error {
	s.mu.Lock()
	initialized := s.source != nil
	s.mu.Unlock()
	if !initialized {
		return apperrors.ErrNotInitialized
	}

	if _, err := s.scheduler.Start(interval, s.tick); err != nil {
		return err
	}
	s.logger.Info("Polling started", "interval", interval)
	return nil
}

func (s *Service) StopPolling() {
	s.scheduler.Stop()
}

func (s *Service) PollingStatus() models.PollingStatus {
	return models.PollingStatus{
		Active:   s.scheduler.IsActive(),
		Interval: int(s.scheduler.Interval().Milliseconds()),
	}
}

func (s *Service) Config() (*models.Configuration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.config == nil {
		return nil, false
	}
	cfg := *s.config
	return &cfg, true
}

func (s *Service) State() models.ViewState {
	return s.view.Snapshot()
}

func (s *Service) Subscribe() (<-chan models.ViewState, func()) {
	return s.view.Subscribe()
}

// Resolve вычисляет слайд без изменения экрана. Без thresholds используются
// пороги текущей конфигурации.
func (s *Service) Resolve(value float64, thresholds []float64) (int, error) {
	if thresholds == nil {
		cfg, ok := s.Config()
		if !ok {
			return 0, apperrors.ErrNotInitialized
		}
		thresholds = cfg.Thresholds
	}
	return Resolve(value, thresholds), nil
}

// Shutdown останавливает опрос и отменяет выполняющиеся тики.
func (s *Service) Shutdown() {
	s.scheduler.Stop()
	s.cancelTicks()
	s.display.Wait()
	s.view.Close()
}
