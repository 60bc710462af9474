package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speech-studio/internal/app/model"
)

func TestObserveOperation(t *testing.T) {
	m := New()
	m.ObserveOperation("intake", OutcomeOK)
	m.ObserveOperation("intake", OutcomeOK)
	m.ObserveOperation("synthesis", OutcomeSkipped)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.operations.WithLabelValues("intake", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("synthesis", OutcomeSkipped)))
}

func TestObserveProvider(t *testing.T) {
	m := New()
	m.ObserveProvider("google", "recognize", 300*time.Millisecond, nil)
	m.ObserveProvider("google", "recognize", time.Second, errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.providerErrors.WithLabelValues("google", "recognize")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.providerLatency))
}

func TestObserveStored(t *testing.T) {
	m := New()
	m.ObserveStored(model.Recordings, 44)
	m.ObserveStored(model.Recordings, 6)

	assert.Equal(t, 50.0, testutil.ToFloat64(m.storedBytes.WithLabelValues("uploads")))
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveHTTP(http.MethodGet, "/", http.StatusOK, 10*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), `speech_studio_http_requests_total{method="GET",route="/",status="200"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
