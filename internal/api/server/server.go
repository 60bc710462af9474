package server

import (
	"context"
	stderrors "errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"speech-studio/internal/api/middleware"
	v1routes "speech-studio/internal/api/v1/routes"
	"speech-studio/internal/api/v1/services"
	"speech-studio/internal/app/metrics"
	"speech-studio/internal/app/storage"
	"speech-studio/internal/config"
	"speech-studio/web"
	"speech-studio/web/handlers"
)

// Dependencies are the application components served over HTTP
type Dependencies struct {
	Pipeline handlers.Pipeline
	Store    storage.Store
	Metrics  *metrics.Metrics
	Logger   *zap.Logger
}

// Server represents the HTTP server
type Server struct {
	config     config.ServerConfig
	router     *gin.Engine
	httpServer *http.Server
	listener   net.Listener
	errs       chan error
	logger     *zap.Logger
}

// NewServer creates the router with all routes and middleware
func NewServer(cfg *config.Config, deps Dependencies) (*Server, error) {
	switch cfg.Environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	maxUploadBytes := cfg.Server.MaxUploadMB << 20

	router := gin.New()
	router.MaxMultipartMemory = maxUploadBytes

	// Apply global middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(deps.Logger, deps.Metrics))
	router.Use(middleware.ErrorHandler(deps.Logger))
	router.Use(middleware.CORS(cfg.Server.CORSOrigins))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
		})
	})
	router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	library := services.NewLibraryService(deps.Store)

	api := router.Group("/api")
	{
		v1 := api.Group("/v1")
		v1routes.RegisterRoutes(v1, &v1routes.ServiceContainer{LibraryService: library}, deps.Logger)
	}

	if err := web.Register(router, web.Deps{
		Pipeline:       deps.Pipeline,
		Library:        library,
		Store:          deps.Store,
		Logger:         deps.Logger,
		MaxUploadBytes: maxUploadBytes,
	}); err != nil {
		return nil, err
	}

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &Server{
		config:     cfg.Server,
		router:     router,
		httpServer: httpServer,
		errs:       make(chan error, 1),
		logger:     deps.Logger,
	}, nil
}

// Start binds the listen address and serves in the background. Errors
// after a successful bind are delivered on Errors.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	s.listener = ln

	s.logger.Info("Starting HTTP server",
		zap.String("address", ln.Addr().String()),
		zap.Duration("read_timeout", s.config.ReadTimeout),
		zap.Duration("write_timeout", s.config.WriteTimeout),
	)

	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP server stopped", zap.Error(err))
			s.errs <- err
		}
		close(s.errs)
	}()

	return nil
}

// Errors reports a failure of the background server. It is closed when
// the server stops.
func (s *Server) Errors() <-chan error {
	return s.errs
}

// Addr returns the bound address once started, otherwise the configured one
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.httpServer.Addr
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	s.logger.Info("HTTP server shutdown complete")
	return nil
}

// Router returns the Gin router (useful for testing)
func (s *Server) Router() *gin.Engine {
	return s.router
}
