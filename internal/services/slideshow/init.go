package slideshow

import (
	"github.com/iwtcode/slideService/internal/config"
	"github.com/iwtcode/slideService/internal/interfaces"
	"github.com/iwtcode/slideService/internal/middleware/logging"
	"github.com/iwtcode/slideService/internal/services/source"
)

// NewSlideshowService собирает сервис из конфигурации приложения.
func NewSlideshowService(cfg *config.AppConfig, repo interfaces.SettingsRepository, publisher interfaces.EventPublisher, logger *logging.Logger) interfaces.SlideshowService {
	opts := Options{
		PollInterval: cfg.Slides.PollInterval(),
		FadeDelay:    cfg.Slides.FadeDelay(),
		BannerTTL:    cfg.Slides.BannerTTL(),
	}
	return New(
		repo,
		source.NewFactory(cfg.Slides.HTTPTimeout(), logger),
		NewHTTPImageAcquirer(cfg.Slides.HTTPTimeout()),
		publisher,
		opts,
		logger,
	)
}
