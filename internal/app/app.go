package app

import (
	"context"
	"net/http"
	"time"

	"github.com/iwtcode/slideService/internal/adapters/handlers"
	"github.com/iwtcode/slideService/internal/adapters/repositories/database"
	"github.com/iwtcode/slideService/internal/config"
	"github.com/iwtcode/slideService/internal/interfaces"
	"github.com/iwtcode/slideService/internal/middleware/logging"
	"github.com/iwtcode/slideService/internal/middleware/swagger"
	"github.com/iwtcode/slideService/internal/services/events"
	"github.com/iwtcode/slideService/internal/services/kafka"
	"github.com/iwtcode/slideService/internal/services/mqtt"
	"github.com/iwtcode/slideService/internal/services/slideshow"
	"github.com/iwtcode/slideService/internal/usecases"

	"go.uber.org/fx"
)

// New создает новый экземпляр fx.App
func New() *fx.App {
	return fx.New(
		ConfigModule,
		LoggingModule,
		RepositoryModule,
		ProducerModule,
		ServiceModule,
		UsecaseModule,
		HttpServerModule,
		// Invoke-функции для запуска фоновых задач и хуков жизненного цикла
		fx.Invoke(InvokeSlideshow),
	)
}

// --- Модули FX ---

var ConfigModule = fx.Module("config_module",
	fx.Provide(config.LoadConfiguration),
)

func ProvideLogger(lc fx.Lifecycle, cfg *config.AppConfig) *logging.Logger {
	loggerCfg := &logging.Config{
		Enabled:    cfg.Logging.Enable,
		Level:      cfg.Logging.Level,
		LogsDir:    cfg.Logging.LogsDir,
		SavingDays: uint(cfg.Logging.SavingDays),
	}
	logger := logging.NewLogger(loggerCfg, "SlideServiceApp")
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return logger.Close()
		},
	})
	return logger
}

var LoggingModule = fx.Module("logging_module",
	fx.Provide(ProvideLogger),
)

var RepositoryModule = fx.Module("repository_module",
	fx.Provide(database.NewRepository),
)

// Продюсеры собираются в группу; выключенные возвращают nil и пропускаются издателем.
var ProducerModule = fx.Module("producer_module",
	fx.Provide(
		fx.Annotate(kafka.NewKafkaProducer, fx.ResultTags(`group:"producers"`)),
		fx.Annotate(mqtt.NewMQTTProducer, fx.ResultTags(`group:"producers"`)),
		fx.Annotate(events.NewPublisher, fx.ParamTags(`group:"producers"`)),
	),
)

var ServiceModule = fx.Module("service_module",
	fx.Provide(slideshow.NewSlideshowService),
)

var UsecaseModule = fx.Module("usecases_module",
	fx.Provide(usecases.NewUsecases),
)

func NewSwaggerConfig(cfg *config.AppConfig) *swagger.Config {
	return &swagger.Config{
		Enabled: cfg.Swagger.Enable,
		Path:    cfg.Swagger.Path,
	}
}

var HttpServerModule = fx.Module("http_server_module",
	fx.Provide(
		NewSwaggerConfig,
		handlers.NewHandler,
		handlers.ProvideRouter,
	),
	fx.Invoke(InvokeHttpServer),
)

// InvokeSlideshow запускает инициализацию слайд-шоу при старте и
// останавливает опрос и продюсеров при завершении.
func InvokeSlideshow(lc fx.Lifecycle, cfg *config.AppConfig, usecase interfaces.Usecases, slideSvc interfaces.SlideshowService, publisher interfaces.EventPublisher, logger *logging.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if !cfg.Slides.AutoStart {
				logger.Info("Auto start disabled, waiting for POST /api/v1/slides/init")
				return nil
			}
			// Инициализация ходит в сеть, поэтому не держит запуск приложения.
			go func() {
				logger.Info("Initializing slideshow...")
				if err := usecase.Initialize(context.Background()); err != nil {
					logger.Error("Slideshow initialization failed", "error", err)
					return
				}
				logger.Info("Slideshow initialized", "interval", cfg.Slides.PollInterval())
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping slideshow...")
			slideSvc.Shutdown()
			if err := publisher.Close(); err != nil {
				logger.Warn("Failed to close event producers", "error", err)
			}
			return nil
		},
	})
}

// InvokeHttpServer запускает HTTP-сервер.
func InvokeHttpServer(lc fx.Lifecycle, cfg *config.AppConfig, h http.Handler, logger *logging.Logger) {
	serverAddr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      h,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("HTTP Server is starting", "address", serverAddr)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("Failed to start server", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server...")
			return server.Shutdown(ctx)
		},
	})
}
