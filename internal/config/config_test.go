package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv удаляет переменную на время теста и восстанавливает ее после.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadConfigurationDefaults(t *testing.T) {
	unsetEnv(t, "APP_CONFIG_FILE")
	unsetEnv(t, "POLL_INTERVAL_MS")
	unsetEnv(t, "DB_DRIVER")

	cfg, err := LoadConfiguration()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Slides.PollInterval())
	assert.Equal(t, 100*time.Millisecond, cfg.Slides.FadeDelay())
	assert.Equal(t, 5*time.Second, cfg.Slides.BannerTTL())
	assert.Equal(t, "postgres", cfg.Database.Driver)
}

func TestLoadConfigurationFromEnv(t *testing.T) {
	unsetEnv(t, "APP_CONFIG_FILE")
	t.Setenv("POLL_INTERVAL_MS", "1500")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("KAFKA_ENABLE", "true")

	cfg, err := LoadConfiguration()
	require.NoError(t, err)

	assert.Equal(t, 1500*time.Millisecond, cfg.Slides.PollInterval())
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.True(t, cfg.Kafka.Enable)
}

func TestLoadConfigurationYAMLOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.yaml")
	content := []byte("slides:\n  poll_interval_ms: 2000\n  banner_ttl_ms: 750\nmqtt:\n  enable: true\n  topic: lobby/slides\n")
	require.NoError(t, os.WriteFile(path, content, 0644))

	t.Setenv("APP_CONFIG_FILE", path)
	t.Setenv("POLL_INTERVAL_MS", "9999")
	unsetEnv(t, "DB_DRIVER")

	cfg, err := LoadConfiguration()
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.Slides.PollInterval())
	assert.Equal(t, 750*time.Millisecond, cfg.Slides.BannerTTL())
	assert.Equal(t, 100*time.Millisecond, cfg.Slides.FadeDelay(), "keys missing in the file keep env values")
	assert.True(t, cfg.MQTT.Enable)
	assert.Equal(t, "lobby/slides", cfg.MQTT.Topic)
}

func TestLoadConfigurationRejectsBadValues(t *testing.T) {
	unsetEnv(t, "APP_CONFIG_FILE")

	t.Setenv("POLL_INTERVAL_MS", "0")
	_, err := LoadConfiguration()
	require.Error(t, err)

	t.Setenv("POLL_INTERVAL_MS", "1000")
	t.Setenv("DB_DRIVER", "mysql")
	_, err = LoadConfiguration()
	require.Error(t, err)
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	t.Setenv("APP_CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))
	unsetEnv(t, "DB_DRIVER")
	unsetEnv(t, "POLL_INTERVAL_MS")

	_, err := LoadConfiguration()
	require.Error(t, err)
}
