package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"speech-studio/internal/app/model"
	"speech-studio/internal/app/storage"
	"speech-studio/internal/app/testutil"
)

func TestDownloadHandler_Serve(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := storage.NewLocalStore(testutil.StorageConfig(t))
	h := NewDownloadHandler(store, zap.NewNop())

	router := gin.New()
	router.GET("/uploads/:name", h.Serve(model.Recordings))
	router.GET("/tts/:name", h.Serve(model.Synthesized))

	ctx := context.Background()
	audio := testutil.SilentWAV(time.Second, 16000)
	require.NoError(t, store.Save(ctx, model.Recordings, "20240131-143005PM.wav", audio))
	require.NoError(t, store.Save(ctx, model.Recordings, "20240131-143005PM.wav.txt", []byte("hello\n")))
	require.NoError(t, store.Save(ctx, model.Synthesized, "20240131-143006PM.wav", []byte("pcm")))

	tests := []struct {
		name        string
		path        string
		status      int
		contentType string
		body        []byte
	}{
		{"recording", "/uploads/20240131-143005PM.wav", http.StatusOK, "audio/wav", audio},
		{"transcript", "/uploads/20240131-143005PM.wav.txt", http.StatusOK, "text/plain; charset=utf-8", []byte("hello\n")},
		{"synthesized", "/tts/20240131-143006PM.wav", http.StatusOK, "audio/wav", []byte("pcm")},
		{"wrong collection", "/tts/20240131-143005PM.wav", http.StatusNotFound, "", nil},
		{"missing", "/uploads/nope.wav", http.StatusNotFound, "", nil},
		{"encoded traversal", "/uploads/..%2F..%2Fetc%2Fpasswd", http.StatusNotFound, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, tt.status, w.Code)
			if tt.status != http.StatusOK {
				return
			}
			assert.Equal(t, tt.contentType, w.Header().Get("Content-Type"))
			assert.NotEmpty(t, w.Header().Get("Last-Modified"))
			assert.Equal(t, tt.body, w.Body.Bytes())
		})
	}
}
