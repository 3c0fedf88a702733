package slideshow

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iwtcode/slideService/internal/middleware/logging"
)

var testImages = []string{"first-id", "https://cdn.example.com/second.png", "third-id"}

func newTestDisplay() (*DisplayController, *gatedAcquirer, *recordingSurface) {
	acquirer := newGatedAcquirer()
	surface := &recordingSurface{}
	return NewDisplayController(acquirer, surface, 5*time.Millisecond, logging.NewNopLogger()), acquirer, surface
}

func TestNormalizeImageRef(t *testing.T) {
	assert.Equal(t, "https://drive.google.com/uc?export=view&id=abc_123-XY", NormalizeImageRef("abc_123-XY"))
	assert.Equal(t, "http://example.com/a.png", NormalizeImageRef("http://example.com/a.png"))
	assert.Equal(t, "https://example.com/a.png", NormalizeImageRef("https://example.com/a.png"))
	assert.Equal(t, "", NormalizeImageRef(""))
}

func TestApplyLoadsAndFadesIn(t *testing.T) {
	display, acquirer, surface := newTestDisplay()

	display.Apply(context.Background(), 2, testImages)
	display.Wait()

	slide, src, opacity, ops, errs := surface.snapshot()
	assert.Equal(t, 2, slide)
	assert.Equal(t, "https://cdn.example.com/second.png", src)
	assert.Equal(t, 1.0, opacity)
	assert.Equal(t, []string{"slide", "fadeout", "show", "fadein"}, ops, "image is hidden before the load starts")
	assert.Empty(t, errs)
	assert.Equal(t, 1, acquirer.callCount())
}

func TestApplyNormalizesDriveIdentifiers(t *testing.T) {
	display, _, surface := newTestDisplay()

	display.Apply(context.Background(), 1, testImages)
	display.Wait()

	_, src, _, _, _ := surface.snapshot()
	assert.Equal(t, "https://drive.google.com/uc?export=view&id=first-id", src)
}

func TestApplySameIndexIsIdempotent(t *testing.T) {
	display, acquirer, surface := newTestDisplay()

	display.Apply(context.Background(), 3, testImages)
	display.Apply(context.Background(), 3, testImages)
	display.Wait()

	_, _, _, ops, _ := surface.snapshot()
	assert.Equal(t, 1, acquirer.callCount())
	assert.Equal(t, []string{"slide", "fadeout", "show", "fadein"}, ops)
}

func TestApplyOutOfRangeHidesWithoutLoading(t *testing.T) {
	display, acquirer, surface := newTestDisplay()
	images := testImages[:2]

	display.Apply(context.Background(), 5, images)
	display.Wait()

	slide, src, opacity, ops, _ := surface.snapshot()
	assert.Equal(t, 5, slide)
	assert.Empty(t, src)
	assert.Zero(t, opacity)
	assert.Equal(t, []string{"slide", "hide"}, ops)
	assert.Zero(t, acquirer.callCount())
	assert.Equal(t, 5, display.Current())
}

func TestApplyZeroHidesImage(t *testing.T) {
	display, acquirer, surface := newTestDisplay()

	display.Apply(context.Background(), 1, testImages)
	display.Wait()
	display.Apply(context.Background(), 0, testImages)
	display.Wait()

	slide, src, opacity, _, _ := surface.snapshot()
	assert.Zero(t, slide)
	assert.Empty(t, src)
	assert.Zero(t, opacity)
	assert.Equal(t, 1, acquirer.callCount())
}

func TestApplyLoadFailureShowsErrorWithSlideNumber(t *testing.T) {
	display, acquirer, surface := newTestDisplay()
	acquirer.fail("https://cdn.example.com/second.png")

	display.Apply(context.Background(), 2, testImages)
	display.Wait()

	_, src, opacity, _, errs := surface.snapshot()
	assert.Empty(t, src)
	assert.Zero(t, opacity)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "slide 2")
}

func TestStaleLoadDoesNotOverwriteNewerSlide(t *testing.T) {
	display, acquirer, surface := newTestDisplay()
	firstURL := NormalizeImageRef(testImages[0])
	acquirer.hold(firstURL)

	display.Apply(context.Background(), 1, testImages)
	display.Apply(context.Background(), 2, testImages)

	require.Eventually(t, func() bool {
		_, _, opacity, _, _ := surface.snapshot()
		return opacity == 1
	}, time.Second, 5*time.Millisecond)

	acquirer.release(firstURL)
	display.Wait()

	slide, src, opacity, _, errs := surface.snapshot()
	assert.Equal(t, 2, slide)
	assert.Equal(t, "https://cdn.example.com/second.png", src)
	assert.Equal(t, 1.0, opacity)
	assert.Empty(t, errs)
}

func TestStaleFailureIsDiscarded(t *testing.T) {
	display, acquirer, surface := newTestDisplay()
	firstURL := NormalizeImageRef(testImages[0])
	acquirer.hold(firstURL)
	acquirer.fail(firstURL)

	display.Apply(context.Background(), 1, testImages)
	display.Apply(context.Background(), 0, testImages)
	acquirer.release(firstURL)
	display.Wait()

	_, _, _, _, errs := surface.snapshot()
	assert.Empty(t, errs, "a failure for a slide that is no longer current is not reported")
}

func TestApplyNotifiesChanges(t *testing.T) {
	display, _, _ := newTestDisplay()

	var changes []SlideChange
	display.OnChange(func(c SlideChange) { changes = append(changes, c) })

	display.Apply(context.Background(), 2, testImages)
	display.Apply(context.Background(), 2, testImages)
	display.Apply(context.Background(), 7, testImages)
	display.Wait()

	require.Len(t, changes, 2)
	assert.Equal(t, SlideChange{Previous: 0, Current: 2, ImageURL: "https://cdn.example.com/second.png"}, changes[0])
	assert.Equal(t, SlideChange{Previous: 2, Current: 7}, changes[1])
}

func TestApplyIgnoresCallerCancellation(t *testing.T) {
	display, acquirer, surface := newTestDisplay()
	url := NormalizeImageRef(testImages[0])
	acquirer.hold(url)

	ctx, cancel := context.WithCancel(context.Background())
	display.Apply(ctx, 1, testImages)
	cancel()
	acquirer.release(url)
	display.Wait()

	_, src, opacity, _, _ := surface.snapshot()
	assert.Equal(t, url, src)
	assert.Equal(t, 1.0, opacity)
}
