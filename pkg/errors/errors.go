package errors

import (
	"errors"
	"fmt"
)

const (
	InternalServerError = "internal server error"
	BadRequest          = "bad request"
	NotFound            = "not_found"
	Conflict            = "conflict"
	UpstreamError       = "upstream error"

	InternalServerErrorCode = 500
	NotFoundErrorCode       = 404
	ConflictErrorCode       = 409
	BadGatewayErrorCode     = 502
)

// AppError представляет собой стандартизированную структуру ошибки для API.
type AppError struct {
	Code         int    `json:"code"`    // HTTP статус код
	Message      string `json:"message"` // Сообщение для клиента
	Err          error  `json:"-"`       // Внутренняя ошибка, не для клиента
	IsUserFacing bool   `json:"-"`       // Флаг, указывающий, можно ли показывать `Err`
}

func (a *AppError) Error() string {
	if a == nil {
		return ""
	}
	if a.Err != nil {
		return fmt.Sprintf("%s (code: %d): %v", a.Message, a.Code, a.Err)
	}
	return fmt.Sprintf("%s (code: %d)", a.Message, a.Code)
}

func (a *AppError) Unwrap() error {
	return a.Err
}

// NewAppError создает новый экземпляр AppError.
func NewAppError(httpCode int, message string, err error, isUserFacing bool) *AppError {
	return &AppError{
		Code:         httpCode,
		Message:      message,
		Err:          err,
		IsUserFacing: isUserFacing,
	}
}

var (
	// ErrConfigUnavailable - адрес источника данных не сохранен. Инициализация прерывается.
	ErrConfigUnavailable = errors.New("api url is not configured")
	// ErrConfigLoad - не удалось получить пороги и изображения (action=getConfig).
	ErrConfigLoad = errors.New("config load failure")
	// ErrDataFetch - не удалось получить текущее значение (action=getData).
	ErrDataFetch = errors.New("data fetch failure")
	// ErrImageLoad - не удалось загрузить изображение слайда.
	ErrImageLoad = errors.New("image load failure")
	// ErrNotInitialized - конфигурация еще не загружена.
	ErrNotInitialized = errors.New("slideshow is not initialized")
	// ErrInvalidInterval - интервал опроса должен быть больше нуля.
	ErrInvalidInterval = errors.New("polling interval must be positive")
	// ErrInvalidEndpoint - адрес источника должен быть абсолютным http(s) URL.
	ErrInvalidEndpoint = errors.New("endpoint must be an absolute http(s) url")
)

// FetchError описывает неудачный запрос к удаленному источнику.
// HTTPStatus равен 0, если ответ не был получен или статус был успешным.
type FetchError struct {
	HTTPStatus int
	Message    string
}

func (e *FetchError) Error() string {
	if e.HTTPStatus != 0 {
		return fmt.Sprintf("%s (http status: %d)", e.Message, e.HTTPStatus)
	}
	return e.Message
}

// StatusOf возвращает HTTP статус из цепочки ошибок или 0.
func StatusOf(err error) int {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.HTTPStatus
	}
	return 0
}
