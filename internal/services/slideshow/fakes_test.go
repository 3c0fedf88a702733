package slideshow

import (
	"context"
	"errors"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/iwtcode/slideService/internal/domain/entities"
	"github.com/iwtcode/slideService/internal/domain/models"
)

// gatedAcquirer считает загрузки и, при необходимости, задерживает загрузку
// конкретного URL до вызова release.
type gatedAcquirer struct {
	mu     sync.Mutex
	calls  []string
	gates  map[string]chan struct{}
	failed map[string]bool
}

func newGatedAcquirer() *gatedAcquirer {
	return &gatedAcquirer{
		gates:  make(map[string]chan struct{}),
		failed: make(map[string]bool),
	}
}

func (a *gatedAcquirer) hold(url string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.gates[url] = make(chan struct{})
}

func (a *gatedAcquirer) release(url string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if gate, ok := a.gates[url]; ok {
		close(gate)
		delete(a.gates, url)
	}
}

func (a *gatedAcquirer) fail(url string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failed[url] = true
}

func (a *gatedAcquirer) Acquire(ctx context.Context, url string) error {
	a.mu.Lock()
	a.calls = append(a.calls, url)
	gate := a.gates[url]
	failed := a.failed[url]
	a.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if failed {
		return errors.New("decode failed")
	}
	return nil
}

func (a *gatedAcquirer) callCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.calls)
}

// recordingSurface запоминает все операции с экраном.
type recordingSurface struct {
	mu      sync.Mutex
	ops     []string
	slide   int
	src     string
	opacity float64
	errors  []string
}

func (s *recordingSurface) record(op string) { s.ops = append(s.ops, op) }

func (s *recordingSurface) SetSlideNumber(slide int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slide = slide
	s.record("slide")
}

func (s *recordingSurface) HideImage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src = ""
	s.opacity = 0
	s.record("hide")
}

func (s *recordingSurface) FadeOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opacity = 0
	s.record("fadeout")
}

func (s *recordingSurface) ShowImage(src string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src = src
	s.record("show")
}

func (s *recordingSurface) FadeIn() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opacity = 1
	s.record("fadein")
}

func (s *recordingSurface) ShowError(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors = append(s.errors, message)
	s.record("error")
}

func (s *recordingSurface) snapshot() (slide int, src string, opacity float64, ops []string, errs []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.slide, s.src, s.opacity, append([]string(nil), s.ops...), append([]string(nil), s.errors...)
}

type mockSource struct {
	mock.Mock
}

func (m *mockSource) LoadConfig(ctx context.Context) (*models.Configuration, error) {
	args := m.Called(ctx)
	cfg, _ := args.Get(0).(*models.Configuration)
	return cfg, args.Error(1)
}

func (m *mockSource) FetchCurrentValue(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	if fn, ok := args.Get(0).(func(context.Context) (float64, error)); ok {
		return fn(ctx)
	}
	return args.Get(0).(float64), args.Error(1)
}

type mockSettings struct {
	mock.Mock
}

func (m *mockSettings) Get(key string) (*entities.Setting, error) {
	args := m.Called(key)
	setting, _ := args.Get(0).(*entities.Setting)
	return setting, args.Error(1)
}

func (m *mockSettings) Set(key, value string) error {
	return m.Called(key, value).Error(0)
}

func (m *mockSettings) Delete(key string) error {
	return m.Called(key).Error(0)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []models.SlideEvent
}

func (p *recordingPublisher) Publish(ctx context.Context, event models.SlideEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) published() []models.SlideEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.SlideEvent(nil), p.events...)
}
