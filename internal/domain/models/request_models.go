package models

// EndpointRequest определяет структуру для сохранения адреса источника данных.
type EndpointRequest struct {
	URL string `json:"url" binding:"required"` // "https://script.google.com/macros/s/.../exec"
}

// PollingRequest определяет структуру для запроса на запуск опроса.
type PollingRequest struct {
	Interval int `json:"interval" binding:"required,gt=0"` // в миллисекундах
}

// ResolveRequest определяет структуру для пробного вычисления номера слайда.
// Если Thresholds не переданы, используются пороги из текущей конфигурации.
type ResolveRequest struct {
	Value      *float64  `json:"value" binding:"required"`
	Thresholds []float64 `json:"thresholds"`
}
