package handlers

import (
	"net/http"

	"github.com/iwtcode/slideService/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// GetState возвращает текущее состояние экрана.
// @Summary Состояние экрана
// @Description Возвращает номер слайда, итоговое значение, изображение, индикатор загрузки и баннер ошибки.
// @Tags Slides
// @Produce json
// @Success 200 {object} models.StateResponse
// @Router /slides/state [get]
func (h *Handler) GetState(c *gin.Context) {
	state := h.usecase.GetState()
	c.JSON(http.StatusOK, models.StateResponse{Status: "ok", State: &state})
}

// Initialize запускает инициализацию: чтение адреса, загрузку конфигурации, первый опрос и запуск таймера.
// @Summary Инициализировать слайд-шоу
// @Tags Slides
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Failure 409 {object} models.ErrorResponse "Адрес источника не сохранен"
// @Failure 502 {object} models.ErrorResponse "Не удалось загрузить конфигурацию"
// @Router /slides/init [post]
func (h *Handler) Initialize(c *gin.Context) {
	if err := h.usecase.Initialize(c.Request.Context()); err != nil {
		h.HandleError(c, err)
		return
	}
	h.logger.Info("Slideshow initialized via API")
	h.OK(c, "Slideshow initialized")
}

// Refresh выполняет внеочередной опрос источника.
// @Summary Обновить сейчас
// @Tags Slides
// @Produce json
// @Success 200 {object} models.StateResponse
// @Failure 409 {object} models.ErrorResponse "Конфигурация не загружена"
// @Failure 502 {object} models.ErrorResponse "Источник вернул ошибку"
// @Router /slides/refresh [post]
func (h *Handler) Refresh(c *gin.Context) {
	if err := h.usecase.Refresh(c.Request.Context()); err != nil {
		h.HandleError(c, err)
		return
	}
	state := h.usecase.GetState()
	c.JSON(http.StatusOK, models.StateResponse{Status: "ok", State: &state})
}

// Resolve вычисляет номер слайда для значения, не меняя состояние экрана.
// @Summary Пробное вычисление слайда
// @Tags Slides
// @Accept json
// @Produce json
// @Param input body models.ResolveRequest true "Значение и, опционально, пороги"
// @Success 200 {object} models.ResolveResponse
// @Failure 400 {object} models.ErrorResponse "Неверный формат запроса"
// @Failure 409 {object} models.ErrorResponse "Пороги не переданы и конфигурация не загружена"
// @Router /slides/resolve [post]
func (h *Handler) Resolve(c *gin.Context) {
	var req models.ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Invalid request payload")
		return
	}

	slide, err := h.usecase.Resolve(*req.Value, req.Thresholds)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ResolveResponse{Status: "ok", Value: *req.Value, Slide: slide})
}

// GetConfig возвращает последнюю загруженную конфигурацию.
// @Summary Текущая конфигурация
// @Tags Config
// @Produce json
// @Success 200 {object} models.ConfigResponse
// @Failure 409 {object} models.ErrorResponse "Конфигурация не загружена"
// @Router /config [get]
func (h *Handler) GetConfig(c *gin.Context) {
	cfg, err := h.usecase.GetConfig()
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ConfigResponse{Status: "ok", Config: cfg})
}

// ReloadConfig повторно загружает пороги и изображения.
// @Summary Перезагрузить конфигурацию
// @Tags Config
// @Produce json
// @Success 200 {object} models.ConfigResponse
// @Failure 409 {object} models.ErrorResponse "Адрес источника не сохранен"
// @Failure 502 {object} models.ErrorResponse "Не удалось загрузить конфигурацию"
// @Router /config/reload [post]
func (h *Handler) ReloadConfig(c *gin.Context) {
	if err := h.usecase.ReloadConfig(c.Request.Context()); err != nil {
		h.HandleError(c, err)
		return
	}
	cfg, err := h.usecase.GetConfig()
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.logger.Info("Configuration reloaded", "thresholds", len(cfg.Thresholds), "images", len(cfg.Images))
	c.JSON(http.StatusOK, models.ConfigResponse{Status: "ok", Config: cfg})
}
