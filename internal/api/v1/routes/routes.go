package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"speech-studio/internal/api/v1/handlers"
	"speech-studio/internal/api/v1/services"
)

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	LibraryService services.LibraryService
}

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer, logger *zap.Logger) {
	libraryHandler := handlers.NewLibraryHandler(container.LibraryService, logger)

	recordings := router.Group("/recordings")
	{
		recordings.GET("", libraryHandler.ListRecordings)
		recordings.GET("/:name/transcript", libraryHandler.GetTranscript)
	}

	router.GET("/synthesized", libraryHandler.ListSynthesized)
}
