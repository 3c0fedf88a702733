package handlers

import (
	"errors"
	"net/http"

	apperrors "github.com/iwtcode/slideService/pkg/errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ErrorResponse возвращает стандартизированный ответ с ошибкой
func (h *Handler) ErrorResponse(c *gin.Context, err error, statusCode int, message string, showError bool) {
	errorMessage := message
	if showError && err != nil {
		errorMessage = message + ": " + err.Error()
	}

	h.logger.Error(message, "error", err, "statusCode", statusCode)
	c.AbortWithStatusJSON(statusCode, gin.H{
		"status": "error",
		"error": gin.H{
			"code":    statusCode,
			"message": errorMessage,
		},
	})
}

// BadRequest возвращает ошибку 400
func (h *Handler) BadRequest(c *gin.Context, err error, message string) {
	if message == "" {
		message = apperrors.BadRequest
	}
	h.ErrorResponse(c, err, http.StatusBadRequest, message, true)
}

// InternalError возвращает ошибку 500
func (h *Handler) InternalError(c *gin.Context, err error) {
	h.ErrorResponse(c, err, http.StatusInternalServerError, apperrors.InternalServerError, false)
}

// NotFound возвращает ошибку 404
func (h *Handler) NotFound(c *gin.Context, err error) {
	h.ErrorResponse(c, err, http.StatusNotFound, apperrors.NotFound, true)
}

// Conflict возвращает ошибку 409: операция невозможна в текущем состоянии
func (h *Handler) Conflict(c *gin.Context, err error) {
	h.ErrorResponse(c, err, apperrors.ConflictErrorCode, apperrors.Conflict, true)
}

// BadGateway возвращает ошибку 502: удаленный источник ответил ошибкой
func (h *Handler) BadGateway(c *gin.Context, err error) {
	h.ErrorResponse(c, err, apperrors.BadGatewayErrorCode, apperrors.UpstreamError, true)
}

// HandleError выбирает код ответа по типу ошибки
func (h *Handler) HandleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidEndpoint), errors.Is(err, apperrors.ErrInvalidInterval):
		h.BadRequest(c, err, "")
	case errors.Is(err, gorm.ErrRecordNotFound):
		h.NotFound(c, err)
	case errors.Is(err, apperrors.ErrNotInitialized), errors.Is(err, apperrors.ErrConfigUnavailable):
		h.Conflict(c, err)
	case errors.Is(err, apperrors.ErrConfigLoad), errors.Is(err, apperrors.ErrDataFetch):
		h.BadGateway(c, err)
	default:
		h.InternalError(c, err)
	}
}

func (h *Handler) OK(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": message,
	})
}
