package entities

import "time"

// EndpointSettingKey - ключ, под которым хранится адрес источника данных.
const EndpointSettingKey = "slideAppApiUrl"

// Setting - запись key/value в постоянном хранилище.
type Setting struct {
	Key       string    `gorm:"primaryKey;not null" json:"key"`
	Value     string    `gorm:"not null" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
