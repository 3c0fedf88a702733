package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/iwtcode/slideService/internal/domain/models"
	"github.com/iwtcode/slideService/internal/interfaces"
	"github.com/iwtcode/slideService/internal/middleware/logging"
	apperrors "github.com/iwtcode/slideService/pkg/errors"
)

const (
	actionGetConfig = "getConfig"
	actionGetData   = "getData"
)

type configResponse struct {
	Success    bool      `json:"success"`
	Thresholds []float64 `json:"thresholds"`
	Images     []string  `json:"images"`
	Message    string    `json:"message"`
}

type dataResponse struct {
	Success    bool     `json:"success"`
	TotalValue *float64 `json:"totalValue"`
	Message    string   `json:"message"`
}

// Client обращается к удаленному источнику данных по HTTP GET с параметром action.
// Повторные попытки не выполняются.
type Client struct {
	endpoint string
	http     *http.Client
	logger   *logging.Logger
}

func NewClient(endpoint string, timeout time.Duration, logger *logging.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
		logger:   logger.WithPrefix("SOURCE"),
	}
}

// NewFactory возвращает фабрику клиентов с общим таймаутом и логгером.
func NewFactory(timeout time.Duration, logger *logging.Logger) interfaces.SourceFactory {
	return func(endpoint string) interfaces.RemoteSource {
		return NewClient(endpoint, timeout, logger)
	}
}

// LoadConfig получает пороги и изображения (action=getConfig).
func (c *Client) LoadConfig(ctx context.Context) (*models.Configuration, error) {
	var body configResponse
	if err := c.get(ctx, actionGetConfig, &body); err != nil {
		return nil, err
	}
	if !body.Success {
		return nil, &apperrors.FetchError{Message: messageOr(body.Message, "failed to load configuration")}
	}

	cfg := &models.Configuration{
		Endpoint:   c.endpoint,
		Thresholds: body.Thresholds,
		Images:     body.Images,
		LoadedAt:   time.Now().UTC(),
	}
	if cfg.Thresholds == nil {
		cfg.Thresholds = []float64{}
	}
	if cfg.Images == nil {
		cfg.Images = []string{}
	}

	c.logger.Info("Configuration loaded", "thresholds", len(cfg.Thresholds), "images", len(cfg.Images))
	return cfg, nil
}

// FetchCurrentValue получает текущее итоговое значение (action=getData).
// Отсутствующее значение считается нулем.
func (c *Client) FetchCurrentValue(ctx context.Context) (float64, error) {
	var body dataResponse
	if err := c.get(ctx, actionGetData, &body); err != nil {
		return 0, err
	}
	if !body.Success {
		return 0, &apperrors.FetchError{Message: messageOr(body.Message, "failed to fetch data")}
	}

	var value float64
	if body.TotalValue != nil {
		value = *body.TotalValue
	}
	c.logger.Debug("Total value fetched", "value", value)
	return value, nil
}

func (c *Client) get(ctx context.Context, action string, out interface{}) error {
	target, err := c.actionURL(action)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return &apperrors.FetchError{Message: fmt.Sprintf("не удалось создать запрос: %v", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &apperrors.FetchError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &apperrors.FetchError{
			HTTPStatus: resp.StatusCode,
			Message:    fmt.Sprintf("HTTP error! status: %d", resp.StatusCode),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &apperrors.FetchError{Message: fmt.Sprintf("не удалось разобрать ответ: %v", err)}
	}
	return nil
}

// actionURL добавляет параметр action, сохраняя остальные параметры адреса.
func (c *Client) actionURL(action string) (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", &apperrors.FetchError{Message: fmt.Sprintf("неверный адрес источника данных '%s'", c.endpoint)}
	}
	q := u.Query()
	q.Set("action", action)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func messageOr(message, fallback string) string {
	if message != "" {
		return message
	}
	return fallback
}
