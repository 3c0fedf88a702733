package handlers

import (
	"net/http"

	"github.com/iwtcode/slideService/internal/config"
	"github.com/iwtcode/slideService/internal/interfaces"
	"github.com/iwtcode/slideService/internal/middleware/logging"
	"github.com/iwtcode/slideService/internal/middleware/swagger"

	"github.com/gin-gonic/gin"
)

// Handler - структура для обработчиков HTTP-запросов
type Handler struct {
	usecase interfaces.Usecases
	logger  *logging.Logger
}

// NewHandler создает новый экземпляр Handler
func NewHandler(usecase interfaces.Usecases, logger *logging.Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger.WithPrefix("HANDLER"),
	}
}

// ProvideRouter настраивает и возвращает HTTP-роутер
func ProvideRouter(h *Handler, cfg *config.AppConfig, swagCfg *swagger.Config) http.Handler {
	gin.SetMode(cfg.GinMode)

	router := gin.Default()

	// Swagger
	swagger.Setup(router, swagCfg)

	// Logger Middleware
	router.Use(LoggingMiddleware(h.logger))

	// Группа API v1
	v1 := router.Group("/api/v1")
	{
		slides := v1.Group("/slides")
		{
			slides.GET("/state", h.GetState)
			slides.GET("/ws", h.StreamState)
			slides.POST("/init", h.Initialize)
			slides.POST("/refresh", h.Refresh)
			slides.POST("/resolve", h.Resolve)
		}

		cfgGroup := v1.Group("/config")
		{
			cfgGroup.GET("", h.GetConfig)
			cfgGroup.POST("/reload", h.ReloadConfig)
		}

		settings := v1.Group("/settings")
		{
			settings.GET("/endpoint", h.GetEndpoint)
			settings.PUT("/endpoint", h.SetEndpoint)
			settings.DELETE("/endpoint", h.DeleteEndpoint)
		}

		polling := v1.Group("/polling")
		{
			polling.GET("", h.GetPolling)
			polling.POST("/start", h.StartPolling)
			polling.POST("/stop", h.StopPolling)
		}
	}

	return router
}
