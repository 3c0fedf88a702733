package interfaces

import (
	"github.com/iwtcode/slideService/internal/domain/entities"
)

// SettingsRepository определяет контракт для работы с сохраненными настройками в БД
type SettingsRepository interface {
	Get(key string) (*entities.Setting, error)
	Set(key, value string) error
	Delete(key string) error
}
