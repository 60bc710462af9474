package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"speech-studio/internal/api/middleware"
	"speech-studio/internal/api/v1/services"
)

// LibraryHandler serves JSON listings of the stored files
type LibraryHandler struct {
	service services.LibraryService
	logger  *zap.Logger
}

// NewLibraryHandler creates a new library handler
func NewLibraryHandler(service services.LibraryService, logger *zap.Logger) *LibraryHandler {
	return &LibraryHandler{
		service: service,
		logger:  logger,
	}
}

// ListRecordings handles GET /api/v1/recordings
//
// @Summary List recordings
// @Description Lists uploaded recordings, most recent first
// @Tags recordings
// @Produce json
// @Success 200 {object} dto.FileListResponse
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /recordings [get]
func (h *LibraryHandler) ListRecordings(c *gin.Context) {
	response, err := h.service.ListRecordings(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetTranscript handles GET /api/v1/recordings/:name/transcript
//
// @Summary Get the transcript of a recording
// @Tags recordings
// @Produce json
// @Param name path string true "Recording filename"
// @Success 200 {object} dto.TranscriptResponse
// @Failure 404 {object} errors.APIError "Recording or transcript not found"
// @Router /recordings/{name}/transcript [get]
func (h *LibraryHandler) GetTranscript(c *gin.Context) {
	response, err := h.service.GetTranscript(c.Request.Context(), c.Param("name"))
	if err != nil {
		middleware.HandleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListSynthesized handles GET /api/v1/synthesized
func (h *LibraryHandler) ListSynthesized(c *gin.Context) {
	response, err := h.service.ListSynthesized(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
