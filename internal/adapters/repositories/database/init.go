package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/iwtcode/slideService/internal/adapters/repositories/database/setting"
	"github.com/iwtcode/slideService/internal/config"
	"github.com/iwtcode/slideService/internal/domain/entities"
	"github.com/iwtcode/slideService/internal/interfaces"
	"github.com/iwtcode/slideService/internal/middleware/logging"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Repository struct {
	interfaces.SettingsRepository
}

// NewRepository открывает хранилище настроек. Драйвер выбирается по DB_DRIVER.
func NewRepository(cfg *config.AppConfig, appLogger *logging.Logger) (interfaces.SettingsRepository, error) {
	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Database.Driver {
	case "sqlite":
		db, err = openSQLite(cfg.Database, appLogger)
	default:
		db, err = openPostgres(cfg.Database, appLogger)
	}
	if err != nil {
		return nil, err
	}

	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("ошибка выполнения автомиграций: %w", err)
	}

	return &Repository{
		SettingsRepository: setting.NewSettingRepository(db),
	}, nil
}

func openPostgres(cfg config.DatabaseConfig, appLogger *logging.Logger) (*gorm.DB, error) {
	// Шаг 1: Подключение к служебной БД 'postgres' для проверки и создания целевой БД
	dsnPostgres := fmt.Sprintf("host=%s user=%s password=%s dbname=postgres port=%s sslmode=disable",
		cfg.Host,
		cfg.Username,
		cfg.Password,
		cfg.Port,
	)

	db, err := gorm.Open(postgres.Open(dsnPostgres), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к служебной БД 'postgres': %w", err)
	}

	// Шаг 2: Проверка существования нужной БД
	var exists bool
	query := "SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = ?)"
	if err := db.Raw(query, cfg.DBName).Scan(&exists).Error; err != nil {
		return nil, fmt.Errorf("не удалось проверить существование БД '%s': %w", cfg.DBName, err)
	}

	// Шаг 3: Если БД не существует, создаем ее
	if !exists {
		appLogger.Info("Database not found. Creating...", "db_name", cfg.DBName)
		if err := db.Exec(fmt.Sprintf("CREATE DATABASE %s", cfg.DBName)).Error; err != nil {
			return nil, fmt.Errorf("не удалось создать БД '%s': %w", cfg.DBName, err)
		}
		appLogger.Info("Database created successfully.", "db_name", cfg.DBName)
	} else {
		appLogger.Info("Database already exists.", "db_name", cfg.DBName)
	}

	sqlDB, _ := db.DB()
	_ = sqlDB.Close()

	// Шаг 4: Основное подключение к целевой базе данных
	dsnApp := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.Host,
		cfg.Username,
		cfg.Password,
		cfg.DBName,
		cfg.Port,
	)

	appDb, err := gorm.Open(postgres.Open(dsnApp), &gorm.Config{Logger: gormLogger(appLogger)})
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к базе данных '%s': %w", cfg.DBName, err)
	}
	return appDb, nil
}

// openSQLite открывает файловую БД, создавая каталог при необходимости.
func openSQLite(cfg config.DatabaseConfig, appLogger *logging.Logger) (*gorm.DB, error) {
	if dir := filepath.Dir(cfg.SQLitePath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("не удалось создать каталог для БД '%s': %w", dir, err)
		}
	}

	db, err := gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{Logger: gormLogger(appLogger)})
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия базы данных '%s': %w", cfg.SQLitePath, err)
	}
	appLogger.Info("SQLite database opened", "path", cfg.SQLitePath)
	return db, nil
}

func gormLogger(appLogger *logging.Logger) logger.Interface {
	level := logger.Warn
	if appLogger.ShouldLog("DEBUG") {
		level = logger.Info
	}
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&entities.Setting{})
}
