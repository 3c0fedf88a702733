package slideshow

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/iwtcode/slideService/internal/middleware/logging"
)

// SlideChange описывает смену слайда для внешних наблюдателей.
type SlideChange struct {
	Previous int
	Current  int
	ImageURL string
}

// DisplayController переводит экран на новый слайд: прячет старое
// изображение, загружает новое и плавно его показывает.
type DisplayController struct {
	mu         sync.Mutex
	current    int
	generation uint64

	acquirer  ImageAcquirer
	surface   Surface
	fadeDelay time.Duration
	onChange  func(SlideChange)
	logger    *logging.Logger

	pending sync.WaitGroup
}

func NewDisplayController(acquirer ImageAcquirer, surface Surface, fadeDelay time.Duration, logger *logging.Logger) *DisplayController {
	return &DisplayController{
		acquirer:  acquirer,
		surface:   surface,
		fadeDelay: fadeDelay,
		logger:    logger.WithPrefix("DISPLAY"),
	}
}

// OnChange регистрирует обработчик смены слайда. Обработчик вызывается
// синхронно из Apply и не должен блокироваться.
func (d *DisplayController) OnChange(fn func(SlideChange)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onChange = fn
}

// Current возвращает номер отображаемого слайда (0 - нет изображения).
func (d *DisplayController) Current() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current
}

// Apply переключает экран на слайд index. Повторный вызов с тем же номером
// ничего не делает. Номер без изображения в images прячет изображение.
// Загрузка выполняется асинхронно и не прерывается отменой ctx; результат
// устаревшей загрузки отбрасывается.
func (d *DisplayController) Apply(ctx context.Context, index int, images []string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if index == d.current {
		return
	}

	previous := d.current
	d.current = index
	d.generation++
	token := d.generation

	d.logger.Info("Slide changed", "from", previous, "to", index)
	d.surface.SetSlideNumber(index)

	pos := index - 1
	if pos < 0 || pos >= len(images) {
		d.surface.HideImage()
		d.notify(SlideChange{Previous: previous, Current: index})
		return
	}

	imageURL := NormalizeImageRef(images[pos])
	d.surface.FadeOut()
	d.notify(SlideChange{Previous: previous, Current: index, ImageURL: imageURL})

	d.pending.Add(1)
	go d.acquire(context.WithoutCancel(ctx), token, index, imageURL)
}

func (d *DisplayController) notify(change SlideChange) {
	if d.onChange != nil {
		d.onChange(change)
	}
}

func (d *DisplayController) acquire(ctx context.Context, token uint64, index int, imageURL string) {
	defer d.pending.Done()

	err := d.acquirer.Acquire(ctx, imageURL)

	d.mu.Lock()
	defer d.mu.Unlock()

	if token != d.generation {
		d.logger.Debug("Discarding stale image load", "slide", index, "url", imageURL)
		return
	}

	if err != nil {
		d.logger.Error("Failed to load slide image", "slide", index, "url", imageURL, "error", err)
		d.surface.HideImage()
		d.surface.ShowError(fmt.Sprintf("Failed to load image for slide %d", index))
		return
	}

	d.surface.ShowImage(imageURL)

	// Небольшая пауза между сменой источника и появлением изображения.
	d.pending.Add(1)
	time.AfterFunc(d.fadeDelay, func() {
		defer d.pending.Done()
		d.mu.Lock()
		defer d.mu.Unlock()
		if token == d.generation {
			d.surface.FadeIn()
		}
	})
}

// Wait блокируется до завершения всех начатых загрузок и появлений.
func (d *DisplayController) Wait() {
	d.pending.Wait()
}
