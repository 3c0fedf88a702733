package handlers

import (
	"net/http"

	"github.com/iwtcode/slideService/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// GetEndpoint возвращает сохраненный адрес источника данных.
// @Summary Адрес источника
// @Tags Settings
// @Produce json
// @Success 200 {object} models.EndpointResponse
// @Failure 404 {object} models.ErrorResponse "Адрес не сохранен"
// @Router /settings/endpoint [get]
func (h *Handler) GetEndpoint(c *gin.Context) {
	endpoint, err := h.usecase.GetEndpoint()
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.EndpointResponse{Status: "ok", URL: endpoint})
}

// SetEndpoint сохраняет адрес источника данных.
// @Summary Сохранить адрес источника
// @Description Новый адрес используется после повторной инициализации (POST /slides/init).
// @Tags Settings
// @Accept json
// @Produce json
// @Param input body models.EndpointRequest true "Адрес источника"
// @Success 200 {object} models.EndpointResponse
// @Failure 400 {object} models.ErrorResponse "Неверный адрес"
// @Router /settings/endpoint [put]
func (h *Handler) SetEndpoint(c *gin.Context) {
	var req models.EndpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Invalid request payload")
		return
	}

	if err := h.usecase.SetEndpoint(req.URL); err != nil {
		h.HandleError(c, err)
		return
	}
	endpoint, err := h.usecase.GetEndpoint()
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.EndpointResponse{Status: "ok", URL: endpoint})
}

// DeleteEndpoint удаляет сохраненный адрес источника данных.
// @Summary Удалить адрес источника
// @Tags Settings
// @Produce json
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse "Адрес не сохранен"
// @Router /settings/endpoint [delete]
func (h *Handler) DeleteEndpoint(c *gin.Context) {
	if err := h.usecase.DeleteEndpoint(); err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, "Endpoint removed")
}
