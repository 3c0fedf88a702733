package slideshow

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	apperrors "github.com/iwtcode/slideService/pkg/errors"
)

// driveViewURL - шаблон ссылки просмотра для идентификатора файла Google Drive.
const driveViewURL = "https://drive.google.com/uc?export=view&id="

// NormalizeImageRef превращает ссылку на изображение в URL для загрузки.
// Абсолютные http(s) адреса возвращаются без изменений, остальные значения
// считаются идентификаторами файлов Google Drive.
func NormalizeImageRef(ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return driveViewURL + url.QueryEscape(ref)
}

// ImageAcquirer загружает и декодирует изображение по URL.
type ImageAcquirer interface {
	Acquire(ctx context.Context, imageURL string) error
}

// HTTPImageAcquirer скачивает изображение и проверяет, что его заголовок декодируется.
type HTTPImageAcquirer struct {
	client *http.Client
}

func NewHTTPImageAcquirer(timeout time.Duration) *HTTPImageAcquirer {
	return &HTTPImageAcquirer{client: &http.Client{Timeout: timeout}}
}

func (a *HTTPImageAcquirer) Acquire(ctx context.Context, imageURL string) error {
	if imageURL == "" {
		return fmt.Errorf("%w: пустая ссылка на изображение", apperrors.ErrImageLoad)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrImageLoad, err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrImageLoad, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %w", apperrors.ErrImageLoad, &apperrors.FetchError{
			HTTPStatus: resp.StatusCode,
			Message:    fmt.Sprintf("HTTP error! status: %d", resp.StatusCode),
		})
	}

	if _, _, err := image.DecodeConfig(resp.Body); err != nil {
		return fmt.Errorf("%w: не удалось декодировать изображение: %v", apperrors.ErrImageLoad, err)
	}
	// Дочитываем тело, чтобы соединение вернулось в пул.
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
