package app

import (
	"context"

	"github.com/google/wire"
	"go.uber.org/zap"

	"speech-studio/internal/api/server"
	"speech-studio/internal/app/logging"
	"speech-studio/internal/app/metrics"
	"speech-studio/internal/app/pipeline"
	"speech-studio/internal/app/speech"
	"speech-studio/internal/app/storage"
	"speech-studio/internal/config"
)

// App is the fully wired web application
type App struct {
	Config      *config.Config
	Logger      *zap.Logger
	Store       storage.Store
	Provider    speech.Provider
	Metrics     *metrics.Metrics
	Coordinator *pipeline.Coordinator
	Server      *server.Server
}

// Toolkit is the subset of the application used by one-shot CLI commands
type Toolkit struct {
	Config      *config.Config
	Logger      *zap.Logger
	Store       storage.Store
	Coordinator *pipeline.Coordinator
}

// coreSet provides everything except the HTTP server
var coreSet = wire.NewSet(
	provideLogger,
	metrics.New,
	provideStore,
	provideSpeechProvider,
	provideCoordinator,
)

func provideLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	logger, err := logging.New(!cfg.IsProduction())
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = logger.Sync()
	}
	return logger, cleanup, nil
}

func provideStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	return storage.New(ctx, cfg.Storage)
}

func provideSpeechProvider(ctx context.Context, cfg *config.Config, logger *zap.Logger) (speech.Provider, func(), error) {
	provider, err := speech.NewProvider(ctx, cfg.Speech)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Speech provider ready",
		zap.String("provider", provider.Name()),
		zap.String("language", cfg.Speech.LanguageCode),
		zap.String("voice_language", cfg.Speech.VoiceLanguage),
	)
	cleanup := func() {
		if err := provider.Close(); err != nil {
			logger.Warn("Failed to close speech provider", zap.Error(err))
		}
	}
	return provider, cleanup, nil
}

func provideCoordinator(cfg *config.Config, store storage.Store, provider speech.Provider, m *metrics.Metrics, logger *zap.Logger) *pipeline.Coordinator {
	return pipeline.NewCoordinator(cfg.Storage, store, provider, provider, m, logger)
}

func provideServer(cfg *config.Config, coordinator *pipeline.Coordinator, store storage.Store, m *metrics.Metrics, logger *zap.Logger) (*server.Server, error) {
	return server.NewServer(cfg, server.Dependencies{
		Pipeline: coordinator,
		Store:    store,
		Metrics:  m,
		Logger:   logger,
	})
}
