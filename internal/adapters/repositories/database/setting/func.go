package setting

import (
	"github.com/iwtcode/slideService/internal/domain/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (r *SettingRepositoryImpl) Get(key string) (*entities.Setting, error) {
	var setting entities.Setting
	err := r.db.Where("key = ?", key).First(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// Set создает запись или обновляет значение существующей
func (r *SettingRepositoryImpl) Set(key, value string) error {
	setting := entities.Setting{Key: key, Value: value}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
}

func (r *SettingRepositoryImpl) Delete(key string) error {
	result := r.db.Where("key = ?", key).Delete(&entities.Setting{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
