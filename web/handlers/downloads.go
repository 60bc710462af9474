package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"speech-studio/internal/api/middleware"
	"speech-studio/internal/app/model"
	"speech-studio/internal/app/storage"
	"speech-studio/internal/app/util/files"
)

// DownloadHandler streams stored files back to the client
type DownloadHandler struct {
	store  storage.Store
	logger *zap.Logger
}

// NewDownloadHandler creates a new download handler
func NewDownloadHandler(store storage.Store, logger *zap.Logger) *DownloadHandler {
	return &DownloadHandler{
		store:  store,
		logger: logger,
	}
}

// Serve returns a handler for GET /<collection>/:name
func (h *DownloadHandler) Serve(collection model.Collection) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		name := c.Param("name")

		info, err := h.store.Stat(ctx, collection, name)
		if err != nil {
			middleware.HandleError(c, h.logger, err)
			return
		}

		rc, err := h.store.Fetch(ctx, collection, name)
		if err != nil {
			middleware.HandleError(c, h.logger, err)
			return
		}
		defer rc.Close()

		headers := map[string]string{
			"Last-Modified": info.ModTime.UTC().Format(http.TimeFormat),
		}
		c.DataFromReader(http.StatusOK, info.Size, files.ContentType(name), rc, headers)
	}
}
