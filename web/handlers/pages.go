package handlers

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "speech-studio/internal/api/errors"
	"speech-studio/internal/api/middleware"
	"speech-studio/internal/api/v1/services"
	"speech-studio/internal/app/errors"
	"speech-studio/internal/app/model"
	"speech-studio/internal/app/pipeline"
)

const (
	flashNoAudio     = "No audio data"
	flashNoFile      = "No selected file"
	flashUnsupported = "Only .wav files are accepted"
)

// Pipeline is the subset of the coordinator used by the upload routes
type Pipeline interface {
	Intake(ctx context.Context, up pipeline.Upload) (*model.Transcription, error)
	Synthesize(ctx context.Context, text string) (*pipeline.SynthesisResult, error)
}

// PageHandler renders the listing page and accepts the upload forms
type PageHandler struct {
	pipeline       Pipeline
	library        services.LibraryService
	logger         *zap.Logger
	maxUploadBytes int64
}

// NewPageHandler creates a new page handler
func NewPageHandler(p Pipeline, library services.LibraryService, logger *zap.Logger, maxUploadBytes int64) *PageHandler {
	return &PageHandler{
		pipeline:       p,
		library:        library,
		logger:         logger,
		maxUploadBytes: maxUploadBytes,
	}
}

// Index handles GET /
func (h *PageHandler) Index(c *gin.Context) {
	ctx := c.Request.Context()

	recordings, err := h.library.ListRecordings(ctx)
	if err != nil {
		middleware.HandleError(c, h.logger, err)
		return
	}
	synthesized, err := h.library.ListSynthesized(ctx)
	if err != nil {
		middleware.HandleError(c, h.logger, err)
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Flash":       popFlash(c),
		"Recordings":  recordings.Items,
		"Synthesized": synthesized.Items,
	})
}

// Upload handles POST /upload. Rejected input is reported as a flash
// notice on the listing page; speech service failures are returned as
// error responses.
func (h *PageHandler) Upload(c *gin.Context) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	up, sent, err := h.readUpload(c)
	if err != nil {
		middleware.HandleError(c, h.logger, err)
		return
	}

	result, err := h.pipeline.Intake(c.Request.Context(), up)
	if notice, ok := flashFor(err, sent); ok {
		setFlash(c, notice)
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	if err != nil {
		middleware.HandleError(c, h.logger, err)
		return
	}

	h.logger.Debug("Upload processed", zap.String("recording", result.Recording))
	c.Redirect(http.StatusSeeOther, "/")
}

// UploadText handles POST /upload_text. Blank text redirects without
// producing anything.
func (h *PageHandler) UploadText(c *gin.Context) {
	if _, err := h.pipeline.Synthesize(c.Request.Context(), c.PostForm(pipeline.TextField)); err != nil {
		middleware.HandleError(c, h.logger, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// readUpload returns the submitted audio. An absent file yields an empty
// Upload so the coordinator reports it as missing input; sent tells whether
// the form carried the audio field at all. A file part with an empty
// filename is parsed as a plain value, so it shows up in Value.
func (h *PageHandler) readUpload(c *gin.Context) (up pipeline.Upload, sent bool, err error) {
	fh, err := c.FormFile(pipeline.AudioField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case stderrors.Is(err, http.ErrMissingFile):
			if form := c.Request.MultipartForm; form != nil {
				_, sent = form.Value[pipeline.AudioField]
			}
			return pipeline.Upload{}, sent, nil
		case stderrors.Is(err, http.ErrNotMultipart):
			return pipeline.Upload{}, false, nil
		case stderrors.As(err, &tooLarge):
			return pipeline.Upload{}, false, apierrors.NewBadRequestError(
				fmt.Sprintf("upload exceeds %d bytes", tooLarge.Limit))
		default:
			return pipeline.Upload{}, false, apierrors.NewBadRequestError("malformed upload")
		}
	}

	f, err := fh.Open()
	if err != nil {
		return pipeline.Upload{}, true, errors.Wrapf(errors.ErrFileReadFailed, "open %s: %v", fh.Filename, err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return pipeline.Upload{}, true, errors.Wrapf(errors.ErrFileReadFailed, "read %s: %v", fh.Filename, err)
	}
	return pipeline.Upload{Filename: fh.Filename, Content: content}, true, nil
}

// flashFor returns the notice shown for rejected input
func flashFor(err error, sent bool) (string, bool) {
	switch {
	case err == nil:
		return "", false
	case stderrors.Is(err, errors.ErrMissingInput) && !sent:
		return flashNoAudio, true
	case stderrors.Is(err, errors.ErrMissingInput):
		return flashNoFile, true
	case stderrors.Is(err, errors.ErrUnsupportedFormat):
		return flashUnsupported, true
	default:
		return "", false
	}
}
