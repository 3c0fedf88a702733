package slideshow

import (
	"context"
	"sync"
	"time"

	"github.com/iwtcode/slideService/internal/middleware/logging"
	apperrors "github.com/iwtcode/slideService/pkg/errors"
)

// TickFunc - одна итерация опроса.
type TickFunc func(ctx context.Context)

// PollHandle - активный таймер опроса. Stop можно вызывать многократно.
type PollHandle struct {
	ticker   *time.Ticker
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
	once     sync.Once
}

func (h *PollHandle) Stop() {
	h.once.Do(func() {
		h.ticker.Stop()
		close(h.stop)
	})
}

// Done закрывается, когда горутина таймера завершилась.
func (h *PollHandle) Done() <-chan struct{} {
	return h.done
}

func (h *PollHandle) Interval() time.Duration {
	return h.interval
}

// Scheduler периодически вызывает тик. Одновременно активен не более
// одного таймера: новый Start останавливает предыдущий. Тики не
// сериализуются: если предыдущий тик еще выполняется, следующий
// запускается параллельно.
type Scheduler struct {
	mu     sync.Mutex
	active *PollHandle
	base   context.Context
	logger *logging.Logger
}

// NewScheduler создает планировщик. Тики получают base и не отменяются
// при остановке таймера.
func NewScheduler(base context.Context, logger *logging.Logger) *Scheduler {
	return &Scheduler{
		base:   base,
		logger: logger.WithPrefix("POLLER"),
	}
}

// Start запускает опрос с интервалом interval. Первый тик выполняется
// через interval, а не сразу.
func (s *Scheduler) Start(interval time.Duration, tick TickFunc) (*PollHandle, error) {
	if interval <= 0 {
		return nil, apperrors.ErrInvalidInterval
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != nil {
		s.active.Stop()
		s.logger.Info("Previous polling timer replaced", "interval", s.active.interval)
	}

	handle := &PollHandle{
		ticker:   time.NewTicker(interval),
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	s.active = handle

	go s.run(handle, tick)
	return handle, nil
}

func (s *Scheduler) run(handle *PollHandle, tick TickFunc) {
	s.logger.Info("Starting polling goroutine", "interval", handle.interval)
	defer func() {
		close(handle.done)
		s.logger.Info("Polling goroutine stopped", "interval", handle.interval)
	}()

	for {
		select {
		case <-handle.stop:
			return
		case <-handle.ticker.C:
			// Остановка могла произойти одновременно с тиком.
			select {
			case <-handle.stop:
				return
			default:
			}
			go tick(s.base)
		}
	}
}

// Stop останавливает активный таймер. Выполняющиеся тики не прерываются.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return
	}
	s.active.Stop()
	s.active = nil
}

func (s *Scheduler) IsActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active != nil
}

// Interval возвращает интервал активного таймера или 0.
func (s *Scheduler) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return 0
	}
	return s.active.interval
}
