package slideshow

import (
	"sync"
	"time"

	"github.com/iwtcode/slideService/internal/domain/models"
)

// Surface - экран, которым управляет DisplayController.
type Surface interface {
	SetSlideNumber(slide int)
	// HideImage делает изображение прозрачным и очищает источник.
	HideImage()
	// FadeOut делает изображение прозрачным, не меняя источник.
	FadeOut()
	// ShowImage устанавливает источник изображения. Прозрачность не меняется.
	ShowImage(src string)
	// FadeIn делает изображение полностью видимым.
	FadeIn()
	ShowError(message string)
}

// subscriberBuffer - размер буфера канала подписчика. При переполнении
// новые снимки состояния для этого подписчика отбрасываются.
const subscriberBuffer = 16

// View хранит наблюдаемое состояние экрана: индикатор загрузки, баннер
// ошибки, итоговое значение, номер слайда и изображение. Каждое изменение
// рассылается подписчикам.
type View struct {
	mu          sync.Mutex
	state       models.ViewState
	loading     int
	bannerTTL   time.Duration
	bannerTimer *time.Timer
	subscribers map[int]chan models.ViewState
	nextID      int
}

func NewView(bannerTTL time.Duration) *View {
	return &View{
		bannerTTL:   bannerTTL,
		subscribers: make(map[int]chan models.ViewState),
		state:       models.ViewState{UpdatedAt: time.Now()},
	}
}

// Snapshot возвращает копию текущего состояния.
func (v *View) Snapshot() models.ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Subscribe возвращает канал со снимками состояния и функцию отписки.
// Первым в канал приходит текущее состояние.
func (v *View) Subscribe() (<-chan models.ViewState, func()) {
	v.mu.Lock()
	defer v.mu.Unlock()

	id := v.nextID
	v.nextID++
	ch := make(chan models.ViewState, subscriberBuffer)
	ch <- v.state
	v.subscribers[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			v.mu.Lock()
			defer v.mu.Unlock()
			if sub, ok := v.subscribers[id]; ok {
				delete(v.subscribers, id)
				close(sub)
			}
		})
	}
}

// update применяет изменение и рассылает новое состояние. Вызывается под v.mu.
func (v *View) update(change func(s *models.ViewState)) {
	change(&v.state)
	v.state.UpdatedAt = time.Now()
	for _, ch := range v.subscribers {
		select {
		case ch <- v.state:
		default:
		}
	}
}

func (v *View) SetSlideNumber(slide int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.update(func(s *models.ViewState) { s.SlideNumber = slide })
}

func (v *View) SetTotal(total float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.update(func(s *models.ViewState) { s.TotalValue = total })
}

func (v *View) HideImage() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.update(func(s *models.ViewState) {
		s.Opacity = 0
		s.ImageSrc = ""
	})
}

func (v *View) FadeOut() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.update(func(s *models.ViewState) { s.Opacity = 0 })
}

func (v *View) ShowImage(src string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.update(func(s *models.ViewState) { s.ImageSrc = src })
}

func (v *View) FadeIn() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.update(func(s *models.ViewState) { s.Opacity = 1 })
}

// BeginLoading показывает индикатор загрузки. Индикатор скрывается, когда
// каждому BeginLoading соответствует EndLoading.
func (v *View) BeginLoading() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading++
	if v.loading == 1 {
		v.update(func(s *models.ViewState) { s.Loading = true })
	}
}

func (v *View) EndLoading() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.loading == 0 {
		return
	}
	v.loading--
	if v.loading == 0 {
		v.update(func(s *models.ViewState) { s.Loading = false })
	}
}

// ShowError показывает баннер и скрывает его через bannerTTL.
// Новая ошибка перезапускает таймер.
func (v *View) ShowError(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.update(func(s *models.ViewState) {
		s.ErrorMessage = message
		s.ErrorVisible = true
	})

	if v.bannerTimer != nil {
		v.bannerTimer.Stop()
	}
	var timer *time.Timer
	timer = time.AfterFunc(v.bannerTTL, func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		if v.bannerTimer != timer {
			return
		}
		v.bannerTimer = nil
		v.update(func(s *models.ViewState) { s.ErrorVisible = false })
	})
	v.bannerTimer = timer
}

// Close останавливает таймер баннера и закрывает каналы подписчиков.
func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.bannerTimer != nil {
		v.bannerTimer.Stop()
		v.bannerTimer = nil
	}
	for id, ch := range v.subscribers {
		delete(v.subscribers, id)
		close(ch)
	}
}
