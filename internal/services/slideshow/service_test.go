package slideshow

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/iwtcode/slideService/internal/domain/entities"
	"github.com/iwtcode/slideService/internal/domain/models"
	"github.com/iwtcode/slideService/internal/interfaces"
	"github.com/iwtcode/slideService/internal/middleware/logging"
	apperrors "github.com/iwtcode/slideService/pkg/errors"
)

const testEndpoint = "https://script.example.com/exec"

type serviceFixture struct {
	service   *Service
	settings  *mockSettings
	source    *mockSource
	acquirer  *gatedAcquirer
	publisher *recordingPublisher
}

func newServiceFixture(t *testing.T, pollInterval time.Duration) *serviceFixture {
	t.Helper()
	f := &serviceFixture{
		settings:  &mockSettings{},
		source:    &mockSource{},
		acquirer:  newGatedAcquirer(),
		publisher: &recordingPublisher{},
	}
	factory := func(endpoint string) interfaces.RemoteSource {
		assert.Equal(t, testEndpoint, endpoint)
		return f.source
	}
	opts := Options{PollInterval: pollInterval, FadeDelay: time.Millisecond, BannerTTL: time.Second}
	f.service = New(f.settings, factory, f.acquirer, f.publisher, opts, logging.NewNopLogger())
	t.Cleanup(f.service.Shutdown)
	return f
}

func (f *serviceFixture) withEndpoint() {
	f.settings.On("Get", entities.EndpointSettingKey).Return(&entities.Setting{Key: entities.EndpointSettingKey, Value: testEndpoint}, nil)
}

func testConfig() *models.Configuration {
	return &models.Configuration{
		Endpoint:   testEndpoint,
		Thresholds: []float64{10, 20, 30},
		Images:     []string{"one", "two"},
	}
}

func TestInitializeWithoutEndpointHalts(t *testing.T) {
	f := newServiceFixture(t, time.Hour)
	f.settings.On("Get", entities.EndpointSettingKey).Return(nil, gorm.ErrRecordNotFound)

	err := f.service.Initialize(context.Background())
	require.ErrorIs(t, err, apperrors.ErrConfigUnavailable)

	state := f.service.State()
	assert.True(t, state.ErrorVisible)
	assert.False(t, f.service.PollingStatus().Active)
	f.source.AssertNotCalled(t, "LoadConfig", mock.Anything)
}

func TestInitializeConfigFailureHalts(t *testing.T) {
	f := newServiceFixture(t, time.Hour)
	f.withEndpoint()
	f.source.On("LoadConfig", mock.Anything).Return(nil, &apperrors.FetchError{HTTPStatus: 500, Message: "HTTP error! status: 500"})

	err := f.service.Initialize(context.Background())
	require.ErrorIs(t, err, apperrors.ErrConfigLoad)
	assert.Equal(t, 500, apperrors.StatusOf(err))

	assert.False(t, f.service.PollingStatus().Active)
	assert.Contains(t, f.service.State().ErrorMessage, "Initialization failed")
	assert.False(t, f.service.State().Loading)
	f.source.AssertNotCalled(t, "FetchCurrentValue", mock.Anything)
}

func TestInitializeRunsFirstTickAndStartsPolling(t *testing.T) {
	f := newServiceFixture(t, time.Hour)
	f.withEndpoint()
	f.source.On("LoadConfig", mock.Anything).Return(testConfig(), nil)
	f.source.On("FetchCurrentValue", mock.Anything).Return(25.0, nil)

	require.NoError(t, f.service.Initialize(context.Background()))
	f.service.display.Wait()

	state := f.service.State()
	assert.Equal(t, 25.0, state.TotalValue)
	assert.Equal(t, 2, state.SlideNumber)
	assert.Equal(t, "https://drive.google.com/uc?export=view&id=two", state.ImageSrc)
	assert.Equal(t, 1.0, state.Opacity)
	assert.False(t, state.Loading)

	status := f.service.PollingStatus()
	assert.True(t, status.Active)
	assert.Equal(t, int(time.Hour.Milliseconds()), status.Interval)

	require.Eventually(t, func() bool { return len(f.publisher.published()) == 1 }, time.Second, 5*time.Millisecond)
	event := f.publisher.published()[0]
	assert.Equal(t, models.EventSlideChanged, event.Type)
	assert.Equal(t, 0, event.PreviousSlide)
	assert.Equal(t, 2, event.Slide)
	assert.Equal(t, 25.0, event.TotalValue)
	assert.NotEmpty(t, event.ID)
}

func TestInitializeStartsPollingEvenIfFirstTickFails(t *testing.T) {
	f := newServiceFixture(t, time.Hour)
	f.withEndpoint()
	f.source.On("LoadConfig", mock.Anything).Return(testConfig(), nil)
	f.source.On("FetchCurrentValue", mock.Anything).Return(0.0, errors.New("connection refused"))

	require.NoError(t, f.service.Initialize(context.Background()))
	assert.True(t, f.service.PollingStatus().Active)
	assert.Contains(t, f.service.State().ErrorMessage, "Failed to fetch data")
}

func TestRefreshBeforeInitialize(t *testing.T) {
	f := newServiceFixture(t, time.Hour)
	require.ErrorIs(t, f.service.Refresh(context.Background()), apperrors.ErrNotInitialized)
	require.ErrorIs(t, f.service.StartPolling(time.Second), apperrors.ErrNotInitialized)
}

func TestFailedTickDoesNotStopPolling(t *testing.T) {
	f := newServiceFixture(t, 10*time.Millisecond)
	f.withEndpoint()
	f.source.On("LoadConfig", mock.Anything).Return(testConfig(), nil)

	var mu sync.Mutex
	calls := 0
	f.source.On("FetchCurrentValue", mock.Anything).Return(func(context.Context) (float64, error) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		if calls == 2 {
			return 0, errors.New("timeout")
		}
		return 15, nil
	}, nil)

	require.NoError(t, f.service.Initialize(context.Background()))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls >= 4
	}, time.Second, 5*time.Millisecond, "ticks after the failed one keep firing")
	assert.True(t, f.service.PollingStatus().Active)
}

func TestStaleTickResultIsDiscarded(t *testing.T) {
	f := newServiceFixture(t, time.Hour)
	f.withEndpoint()
	f.source.On("LoadConfig", mock.Anything).Return(testConfig(), nil)
	require.NoError(t, f.service.ReloadConfig(context.Background()))

	slowStarted := make(chan struct{})
	releaseSlow := make(chan struct{})
	f.source.On("FetchCurrentValue", mock.Anything).Return(5.0, nil).Run(func(mock.Arguments) {
		close(slowStarted)
		<-releaseSlow
	}).Once()
	f.source.On("FetchCurrentValue", mock.Anything).Return(25.0, nil).Once()

	slowDone := make(chan error, 1)
	go func() { slowDone <- f.service.Refresh(context.Background()) }()
	<-slowStarted

	require.NoError(t, f.service.Refresh(context.Background()))
	close(releaseSlow)
	require.NoError(t, <-slowDone)
	f.service.display.Wait()

	state := f.service.State()
	assert.Equal(t, 25.0, state.TotalValue, "older response must not overwrite the newer total")
	assert.Equal(t, 2, state.SlideNumber)
}

func TestReloadConfigReplacesThresholds(t *testing.T) {
	f := newServiceFixture(t, time.Hour)
	f.withEndpoint()
	f.source.On("LoadConfig", mock.Anything).Return(testConfig(), nil).Once()
	f.source.On("LoadConfig", mock.Anything).Return(&models.Configuration{Thresholds: []float64{1}, Images: []string{}}, nil).Once()

	require.NoError(t, f.service.ReloadConfig(context.Background()))
	slide, err := f.service.Resolve(15, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, slide)

	require.NoError(t, f.service.ReloadConfig(context.Background()))
	cfg, ok := f.service.Config()
	require.True(t, ok)
	assert.Equal(t, []float64{1}, cfg.Thresholds)
}

func TestResolveWithExplicitThresholds(t *testing.T) {
	f := newServiceFixture(t, time.Hour)

	_, err := f.service.Resolve(15, nil)
	require.ErrorIs(t, err, apperrors.ErrNotInitialized)

	slide, err := f.service.Resolve(50, []float64{10, 100, 20})
	require.NoError(t, err)
	assert.Equal(t, 1, slide)
}

func TestStopPolling(t *testing.T) {
	f := newServiceFixture(t, time.Hour)
	f.withEndpoint()
	f.source.On("LoadConfig", mock.Anything).Return(testConfig(), nil)
	f.source.On("FetchCurrentValue", mock.Anything).Return(0.0, nil)

	require.NoError(t, f.service.Initialize(context.Background()))
	f.service.StopPolling()
	f.service.StopPolling()
	assert.False(t, f.service.PollingStatus().Active)

	require.NoError(t, f.service.StartPolling(time.Minute))
	assert.Equal(t, 60000, f.service.PollingStatus().Interval)
}
