package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apierrors "speech-studio/internal/api/errors"
	"speech-studio/internal/api/v1/dto"
	"speech-studio/internal/api/v1/services"
	"speech-studio/internal/app/model"
	"speech-studio/internal/app/storage"
	"speech-studio/internal/app/testutil"
)

func setupLibraryRouter(t *testing.T) (*gin.Engine, storage.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storage.NewLocalStore(testutil.StorageConfig(t))
	handler := NewLibraryHandler(services.NewLibraryService(store), zap.NewNop())

	router := gin.New()
	router.GET("/api/v1/recordings", handler.ListRecordings)
	router.GET("/api/v1/recordings/:name/transcript", handler.GetTranscript)
	router.GET("/api/v1/synthesized", handler.ListSynthesized)
	return router, store
}

func TestLibraryHandler_ListRecordings(t *testing.T) {
	router, store := setupLibraryRouter(t)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, model.Recordings, "20240131-143005PM.wav", []byte("audio")))
	require.NoError(t, store.Save(ctx, model.Recordings, "20240131-143005PM.wav.txt", []byte("hi\n")))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/recordings", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.FileListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "20240131-143005PM.wav", resp.Items[0].Name)
	assert.Equal(t, "/uploads/20240131-143005PM.wav.txt", resp.Items[0].TranscriptURL)
}

func TestLibraryHandler_GetTranscript(t *testing.T) {
	router, store := setupLibraryRouter(t)
	require.NoError(t, store.Save(context.Background(), model.Recordings, "20240131-143005PM.wav.txt", []byte("hello world\n")))

	t.Run("found", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/recordings/20240131-143005PM.wav/transcript", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.TranscriptResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "hello world\n", resp.Text)
	})

	t.Run("not found", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/recordings/missing.wav/transcript", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
		var apiErr apierrors.APIError
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
		assert.Equal(t, apierrors.KindNotFound, apiErr.Kind)
	})
}

func TestLibraryHandler_ListSynthesizedEmpty(t *testing.T) {
	router, _ := setupLibraryRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/synthesized", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items":[],"total":0}`, w.Body.String())
}
