package setting

import (
	"github.com/iwtcode/slideService/internal/interfaces"
	"gorm.io/gorm"
)

type SettingRepositoryImpl struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) interfaces.SettingsRepository {
	return &SettingRepositoryImpl{db: db}
}
