package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iwtcode/slideService/internal/middleware/logging"
	apperrors "github.com/iwtcode/slideService/pkg/errors"
)

func newTestServer(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(handler))
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(endpoint string) *Client {
	return NewClient(endpoint, 2*time.Second, logging.NewNopLogger())
}

func TestLoadConfig(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "getConfig", r.URL.Query().Get("action"))
		assert.Equal(t, "abc", r.URL.Query().Get("key"), "existing query parameters are preserved")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"thresholds":[10,20,30],"images":["id1","https://cdn.example.com/2.png"]}`))
	})

	cfg, err := newTestClient(srv.URL + "/exec?key=abc").LoadConfig(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []float64{10, 20, 30}, cfg.Thresholds)
	assert.Equal(t, []string{"id1", "https://cdn.example.com/2.png"}, cfg.Images)
	assert.Equal(t, srv.URL+"/exec?key=abc", cfg.Endpoint)
	assert.False(t, cfg.LoadedAt.IsZero())
}

func TestLoadConfigMissingListsAreEmpty(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	cfg, err := newTestClient(srv.URL).LoadConfig(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cfg.Thresholds)
	assert.NotNil(t, cfg.Thresholds)
	assert.Empty(t, cfg.Images)
}

func TestLoadConfigUnsuccessfulBody(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"message":"sheet not found"}`))
	})

	_, err := newTestClient(srv.URL).LoadConfig(context.Background())
	require.Error(t, err)

	var fetchErr *apperrors.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, "sheet not found", fetchErr.Message)
	assert.Equal(t, 0, fetchErr.HTTPStatus)
}

func TestFetchCurrentValue(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "getData", r.URL.Query().Get("action"))
		_, _ = w.Write([]byte(`{"success":true,"totalValue":27.5}`))
	})

	value, err := newTestClient(srv.URL).FetchCurrentValue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 27.5, value)
}

func TestFetchCurrentValueMissingTotalIsZero(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	value, err := newTestClient(srv.URL).FetchCurrentValue(context.Background())
	require.NoError(t, err)
	assert.Zero(t, value)
}

func TestFetchCurrentValueNon2xxIsFailureRegardlessOfBody(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"success":true,"totalValue":5}`))
	})

	_, err := newTestClient(srv.URL).FetchCurrentValue(context.Background())
	require.Error(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, apperrors.StatusOf(err))
}

func TestFetchCurrentValueDefaultMessage(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false}`))
	})

	_, err := newTestClient(srv.URL).FetchCurrentValue(context.Background())
	require.EqualError(t, err, "failed to fetch data")
}

func TestFetchCurrentValueMalformedJSON(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>login required</html>`))
	})

	_, err := newTestClient(srv.URL).FetchCurrentValue(context.Background())
	require.Error(t, err)
}

func TestInvalidEndpoint(t *testing.T) {
	_, err := newTestClient("not a url").FetchCurrentValue(context.Background())
	require.Error(t, err)
}
