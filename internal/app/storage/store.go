package storage

import (
	"context"
	"io"

	"speech-studio/internal/app/errors"
	"speech-studio/internal/app/model"
	"speech-studio/internal/config"
)

// Store persists recordings, transcripts and synthesized audio in flat
// collections. Names are plain filenames; nested paths are never accepted.
type Store interface {
	// List returns the allow-listed filenames of a collection, most recent
	// first. A collection that does not exist yet is empty.
	List(ctx context.Context, c model.Collection) ([]string, error)
	// Save writes data under name, creating the collection if needed.
	// An existing file with the same name is overwritten.
	Save(ctx context.Context, c model.Collection, name string, data []byte) error
	// Fetch opens a stored file. Missing files return errors.ErrNotFound.
	Fetch(ctx context.Context, c model.Collection, name string) (io.ReadCloser, error)
	// Stat returns size and modification time of a stored file.
	Stat(ctx context.Context, c model.Collection, name string) (model.FileInfo, error)
}

// New creates the store selected by cfg.Backend
func New(ctx context.Context, cfg config.StorageConfig) (Store, error) {
	switch cfg.Backend {
	case config.BackendLocal, "":
		return NewLocalStore(cfg), nil
	case config.BackendMinio:
		return NewMinioStore(ctx, cfg)
	default:
		return nil, errors.Wrapf(errors.ErrUnknownBackend, "storage backend %q", cfg.Backend)
	}
}
