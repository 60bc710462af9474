//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"

	"speech-studio/internal/app/storage"
	"speech-studio/internal/config"
)

// InitializeApp wires the web application
func InitializeApp(ctx context.Context, cfg *config.Config) (*App, func(), error) {
	wire.Build(coreSet, provideServer, wire.Struct(new(App), "*"))
	return &App{}, nil, nil
}

// InitializeToolkit wires the pipeline without the HTTP server
func InitializeToolkit(ctx context.Context, cfg *config.Config) (*Toolkit, func(), error) {
	wire.Build(coreSet, wire.Struct(new(Toolkit), "*"))
	return &Toolkit{}, nil, nil
}

// InitializeStore opens the configured store only; it needs no speech
// credentials.
func InitializeStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	wire.Build(provideStore)
	return nil, nil
}
