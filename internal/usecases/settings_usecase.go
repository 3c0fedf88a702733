package usecases

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/iwtcode/slideService/internal/domain/entities"
	apperrors "github.com/iwtcode/slideService/pkg/errors"
)

// GetEndpoint возвращает сохраненный адрес источника.
// Если адрес не сохранен, возвращается gorm.ErrRecordNotFound.
func (u *Usecase) GetEndpoint() (string, error) {
	setting, err := u.settings.Get(entities.EndpointSettingKey)
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}

// SetEndpoint сохраняет адрес источника. Изменение вступает в силу
// после повторной инициализации.
func (u *Usecase) SetEndpoint(raw string) error {
	endpoint, err := validateEndpoint(raw)
	if err != nil {
		return err
	}
	if err := u.settings.Set(entities.EndpointSettingKey, endpoint); err != nil {
		return fmt.Errorf("не удалось сохранить адрес источника: %w", err)
	}
	u.logger.Info("Endpoint saved", "url", endpoint)
	return nil
}

func (u *Usecase) DeleteEndpoint() error {
	if err := u.settings.Delete(entities.EndpointSettingKey); err != nil {
		return err
	}
	u.logger.Info("Endpoint removed")
	return nil
}

func validateEndpoint(raw string) (string, error) {
	endpoint := strings.TrimSpace(raw)
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrInvalidEndpoint, err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return "", fmt.Errorf("%w: '%s'", apperrors.ErrInvalidEndpoint, raw)
	}
	return endpoint, nil
}
