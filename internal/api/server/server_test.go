package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"speech-studio/internal/app/metrics"
	"speech-studio/internal/app/model"
	"speech-studio/internal/app/storage"
	"speech-studio/internal/app/testutil"
	"speech-studio/internal/config"
)

func newTestServer(t *testing.T) (*Server, storage.Store, *testutil.MockPipeline) {
	t.Helper()
	cfg := config.Default()
	cfg.Environment = "test"
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = "0"
	cfg.Storage = testutil.StorageConfig(t)

	store := storage.NewLocalStore(cfg.Storage)
	p := testutil.NewMockPipeline(t)

	srv, err := NewServer(cfg, Dependencies{
		Pipeline: p,
		Store:    store,
		Metrics:  metrics.New(),
		Logger:   zap.NewNop(),
	})
	require.NoError(t, err)
	return srv, store, p
}

func TestServerRoutes(t *testing.T) {
	srv, store, _ := newTestServer(t)
	require.NoError(t, store.Save(context.Background(), model.Recordings, "20240131-143005PM.wav", []byte("RIFF")))

	tests := []struct {
		name   string
		path   string
		status int
		body   string
	}{
		{"health", "/health", http.StatusOK, `"healthy"`},
		{"index", "/", http.StatusOK, "20240131-143005PM.wav"},
		{"recordings api", "/api/v1/recordings", http.StatusOK, `"total":1`},
		{"synthesized api", "/api/v1/synthesized", http.StatusOK, `"total":0`},
		{"download", "/uploads/20240131-143005PM.wav", http.StatusOK, "RIFF"},
		{"missing download", "/tts/20240131-143005PM.wav", http.StatusNotFound, `"not_found"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestServerMetricsEndpoint(t *testing.T) {
	srv, _, _ := newTestServer(t)

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `speech_studio_http_requests_total{method="GET",route="/health",status="200"} 1`)
}

func TestServerStartAndShutdown(t *testing.T) {
	srv, _, _ := newTestServer(t)
	require.NoError(t, srv.Start())

	resp, err := http.Get("http://" + srv.Addr() + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "healthy", body["status"])

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	_, open := <-srv.Errors()
	assert.False(t, open)
}
