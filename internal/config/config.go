package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// AppConfig содержит конфигурацию приложения
type AppConfig struct {
	ServerPort string          `yaml:"server_port"`
	GinMode    string          `yaml:"gin_mode"`
	Slides     SlidesConfig    `yaml:"slides"`
	Database   DatabaseConfig  `yaml:"database"`
	Kafka      KafkaConfig     `yaml:"kafka"`
	MQTT       MQTTConfig      `yaml:"mqtt"`
	Logging    LoggerConfig    `yaml:"logging"`
	Swagger    SwaggerSettings `yaml:"swagger"`
}

// SlidesConfig содержит настройки опроса и отображения слайдов.
// Все интервалы задаются в миллисекундах.
type SlidesConfig struct {
	AutoStart      bool `yaml:"auto_start"`
	PollIntervalMs int  `yaml:"poll_interval_ms"`
	HTTPTimeoutMs  int  `yaml:"http_timeout_ms"`
	FadeDelayMs    int  `yaml:"fade_delay_ms"`
	BannerTTLMs    int  `yaml:"banner_ttl_ms"`
}

func (s SlidesConfig) PollInterval() time.Duration {
	return time.Duration(s.PollIntervalMs) * time.Millisecond
}

func (s SlidesConfig) HTTPTimeout() time.Duration {
	return time.Duration(s.HTTPTimeoutMs) * time.Millisecond
}

func (s SlidesConfig) FadeDelay() time.Duration {
	return time.Duration(s.FadeDelayMs) * time.Millisecond
}

func (s SlidesConfig) BannerTTL() time.Duration {
	return time.Duration(s.BannerTTLMs) * time.Millisecond
}

// LoggerConfig содержит настройки логгера
type LoggerConfig struct {
	Enable     bool   `yaml:"enable"`
	LogsDir    string `yaml:"logs_dir"`
	Level      string `yaml:"level"`
	SavingDays int    `yaml:"saving_days"`
}

// DatabaseConfig содержит конфигурацию для подключения к базе данных.
// Driver: "postgres" или "sqlite".
type DatabaseConfig struct {
	Driver     string `yaml:"driver"`
	Host       string `yaml:"host"`
	Port       string `yaml:"port"`
	Username   string `yaml:"username"`
	Password   string `yaml:"password"`
	DBName     string `yaml:"db_name"`
	SQLitePath string `yaml:"sqlite_path"`
}

type KafkaConfig struct {
	Enable bool   `yaml:"enable"`
	Broker string `yaml:"broker"`
	Topic  string `yaml:"topic"`
}

type MQTTConfig struct {
	Enable   bool   `yaml:"enable"`
	Broker   string `yaml:"broker"`
	Topic    string `yaml:"topic"`
	ClientID string `yaml:"client_id"`
	QoS      int    `yaml:"qos"`
}

type SwaggerSettings struct {
	Enable bool   `yaml:"enable"`
	Path   string `yaml:"path"`
}

// LoadConfiguration загружает конфигурацию из .env файла или переменных окружения.
// Если задан APP_CONFIG_FILE, значения из YAML-файла перекрывают переменные окружения.
func LoadConfiguration() (*AppConfig, error) {
	_ = godotenv.Load()

	config := &AppConfig{
		ServerPort: getEnv("APP_PORT", "8082"),
		GinMode:    getEnv("GIN_MODE", "debug"),
		Slides: SlidesConfig{
			AutoStart:      getEnvAsBool("AUTO_START", true),
			PollIntervalMs: getEnvAsInt("POLL_INTERVAL_MS", 30000),
			HTTPTimeoutMs:  getEnvAsInt("HTTP_TIMEOUT_MS", 10000),
			FadeDelayMs:    getEnvAsInt("FADE_DELAY_MS", 100),
			BannerTTLMs:    getEnvAsInt("BANNER_TTL_MS", 5000),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", "postgres"),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			Username:   getEnv("DB_USER", "postgres"),
			Password:   getEnv("DB_PASSWORD", "root"),
			DBName:     getEnv("DB_NAME", "slides_db"),
			SQLitePath: getEnv("SQLITE_PATH", "./data/slides.db"),
		},
		Kafka: KafkaConfig{
			Enable: getEnvAsBool("KAFKA_ENABLE", false),
			Broker: getEnv("KAFKA_BROKER", "localhost:9092"),
			Topic:  getEnv("KAFKA_TOPIC", "slide_events"),
		},
		MQTT: MQTTConfig{
			Enable:   getEnvAsBool("MQTT_ENABLE", false),
			Broker:   getEnv("MQTT_BROKER", "localhost:1883"),
			Topic:    getEnv("MQTT_TOPIC", "slides/events"),
			ClientID: getEnv("MQTT_CLIENT_ID", ""),
			QoS:      getEnvAsInt("MQTT_QOS", 1),
		},
		Logging: LoggerConfig{
			Enable:     getEnvAsBool("LOGGER_ENABLE", true),
			LogsDir:    getEnv("LOGGER_LOGS_DIR", "./logs"),
			Level:      getEnv("LOGGER_LOG_LEVEL", "DEBUG"),
			SavingDays: getEnvAsInt("LOGGER_SAVING_DAYS", 7),
		},
		Swagger: SwaggerSettings{
			Enable: getEnvAsBool("SWAGGER_ENABLE", true),
			Path:   getEnv("SWAGGER_PATH", "/swagger"),
		},
	}

	if path := getEnv("APP_CONFIG_FILE", ""); path != "" {
		if err := applyFile(config, path); err != nil {
			return nil, err
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// applyFile накладывает YAML-файл поверх уже заполненной конфигурации.
// Ключи, отсутствующие в файле, сохраняют прежние значения.
func applyFile(config *AppConfig, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("не удалось прочитать файл конфигурации '%s': %w", path, err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return fmt.Errorf("не удалось разобрать файл конфигурации '%s': %w", path, err)
	}
	return nil
}

// Validate проверяет значения, без которых сервис не может работать.
func (c *AppConfig) Validate() error {
	if c.Slides.PollIntervalMs <= 0 {
		return fmt.Errorf("POLL_INTERVAL_MS должен быть больше нуля, получено %d", c.Slides.PollIntervalMs)
	}
	if c.Slides.FadeDelayMs < 0 {
		return fmt.Errorf("FADE_DELAY_MS не может быть отрицательным, получено %d", c.Slides.FadeDelayMs)
	}
	if c.Slides.BannerTTLMs <= 0 {
		return fmt.Errorf("BANNER_TTL_MS должен быть больше нуля, получено %d", c.Slides.BannerTTLMs)
	}
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("неизвестный DB_DRIVER '%s' (ожидается postgres или sqlite)", c.Database.Driver)
	}
	if c.MQTT.QoS < 0 || c.MQTT.QoS > 2 {
		return fmt.Errorf("MQTT_QOS должен быть 0, 1 или 2, получено %d", c.MQTT.QoS)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(name string, defaultValue int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	val, _ := strconv.ParseBool(value)
	return val
}
