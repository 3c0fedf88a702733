package models

import "time"

// Configuration - конфигурация слайд-шоу, полученная от источника данных.
// Изображение Images[i] соответствует слайду номер i+1.
type Configuration struct {
	Endpoint   string    `json:"endpoint"`
	Thresholds []float64 `json:"thresholds"`
	Images     []string  `json:"images"`
	LoadedAt   time.Time `json:"loaded_at"`
}

// ImageFor возвращает ссылку на изображение для слайда или false,
// если слайд 0 или изображений меньше, чем слайдов.
func (c *Configuration) ImageFor(slide int) (string, bool) {
	if c == nil || slide < 1 || slide > len(c.Images) {
		return "", false
	}
	return c.Images[slide-1], true
}

// ViewState - наблюдаемое состояние экрана.
type ViewState struct {
	SlideNumber  int       `json:"slide_number"`
	TotalValue   float64   `json:"total_value"`
	ImageSrc     string    `json:"image_src"`
	Opacity      float64   `json:"opacity"`
	Loading      bool      `json:"loading"`
	ErrorVisible bool      `json:"error_visible"`
	ErrorMessage string    `json:"error_message,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

const EventSlideChanged = "slide_changed"

// SlideEvent отправляется во внешние системы при смене слайда.
type SlideEvent struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	PreviousSlide int       `json:"previous_slide"`
	Slide         int       `json:"slide"`
	TotalValue    float64   `json:"total_value"`
	ImageURL      string    `json:"image_url,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// PollingStatus описывает состояние периодического опроса.
type PollingStatus struct {
	Active   bool `json:"active"`
	Interval int  `json:"interval"` // в миллисекундах
}
