// Package web serves the HTML front-end: the listing page, the two upload
// forms and downloads of stored files.
package web

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"speech-studio/internal/api/v1/services"
	"speech-studio/internal/app/model"
	"speech-studio/internal/app/storage"
	"speech-studio/web/handlers"
)

//go:embed templates/*.html
var templateFS embed.FS

// Deps are the collaborators of the web routes
type Deps struct {
	Pipeline       handlers.Pipeline
	Library        services.LibraryService
	Store          storage.Store
	Logger         *zap.Logger
	MaxUploadBytes int64
}

// Templates parses the embedded page templates
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

// Register mounts the page, upload and download routes on router
func Register(router *gin.Engine, deps Deps) error {
	tmpl, err := Templates()
	if err != nil {
		return err
	}
	router.SetHTMLTemplate(tmpl)

	pages := handlers.NewPageHandler(deps.Pipeline, deps.Library, deps.Logger, deps.MaxUploadBytes)
	downloads := handlers.NewDownloadHandler(deps.Store, deps.Logger)

	router.GET("/", pages.Index)
	router.POST("/upload", pages.Upload)
	router.POST("/upload_text", pages.UploadText)
	router.GET("/uploads/:name", downloads.Serve(model.Recordings))
	router.GET("/tts/:name", downloads.Serve(model.Synthesized))
	return nil
}
