package models

// ErrorResponse представляет стандартный ответ с ошибкой.
type ErrorResponse struct {
	Status string `json:"status" example:"error"`
	Error  struct {
		Code    int    `json:"code" example:"404"`
		Message string `json:"message" example:"not_found"`
	} `json:"error"`
}

// MessageResponse представляет стандартный успешный ответ с сообщением.
type MessageResponse struct {
	Status  string `json:"status" example:"ok"`
	Message string `json:"message" example:"Polling started successfully"`
}

// StateResponse представляет текущее состояние экрана.
type StateResponse struct {
	Status string     `json:"status" example:"ok"`
	State  *ViewState `json:"state"`
}

// ConfigResponse представляет загруженную конфигурацию.
type ConfigResponse struct {
	Status string         `json:"status" example:"ok"`
	Config *Configuration `json:"config"`
}

// ResolveResponse представляет результат пробного вычисления слайда.
type ResolveResponse struct {
	Status string  `json:"status" example:"ok"`
	Value  float64 `json:"value" example:"15"`
	Slide  int     `json:"slide" example:"1"`
}

// EndpointResponse представляет сохраненный адрес источника данных.
type EndpointResponse struct {
	Status string `json:"status" example:"ok"`
	URL    string `json:"url" example:"https://script.google.com/macros/s/ID/exec"`
}

// PollingResponse представляет состояние опроса.
type PollingResponse struct {
	Status  string         `json:"status" example:"ok"`
	Polling *PollingStatus `json:"polling"`
}
