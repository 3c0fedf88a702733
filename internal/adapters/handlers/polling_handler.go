package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/iwtcode/slideService/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// GetPolling возвращает состояние периодического опроса.
// @Summary Состояние опроса
// @Tags Polling
// @Produce json
// @Success 200 {object} models.PollingResponse
// @Router /polling [get]
func (h *Handler) GetPolling(c *gin.Context) {
	status := h.usecase.GetPollingStatus()
	c.JSON(http.StatusOK, models.PollingResponse{Status: "ok", Polling: &status})
}

// StartPolling запускает опрос с заданным интервалом, заменяя текущий таймер.
// @Summary Запустить опрос
// @Description Запускает периодическое обновление слайда с заданным интервалом в миллисекундах.
// @Tags Polling
// @Accept json
// @Produce json
// @Param input body models.PollingRequest true "Интервал опроса"
// @Success 200 {object} models.MessageResponse "Сообщение об успешном запуске"
// @Failure 400 {object} models.ErrorResponse "Неверный формат запроса"
// @Failure 409 {object} models.ErrorResponse "Конфигурация не загружена"
// @Router /polling/start [post]
func (h *Handler) StartPolling(c *gin.Context) {
	var req models.PollingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Invalid request payload")
		return
	}

	duration := time.Duration(req.Interval) * time.Millisecond
	h.logger.Info("Attempting to start polling", "interval", duration)

	if err := h.usecase.StartPolling(duration); err != nil {
		h.HandleError(c, err)
		return
	}

	h.logger.Info("Polling started successfully", "interval", duration)
	h.OK(c, fmt.Sprintf("Polling started with interval %s", duration))
}

// StopPolling останавливает опрос. Повторный вызов ничего не делает.
// @Summary Остановить опрос
// @Tags Polling
// @Produce json
// @Success 200 {object} models.MessageResponse "Сообщение об успешной остановке"
// @Router /polling/stop [post]
func (h *Handler) StopPolling(c *gin.Context) {
	h.usecase.StopPolling()
	h.logger.Info("Polling stopped")
	h.OK(c, "Polling stopped")
}
