package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/samber/lo"

	"speech-studio/internal/app/errors"
	"speech-studio/internal/app/model"
	"speech-studio/internal/app/util/files"
	"speech-studio/internal/config"
)

// LocalStore keeps each collection in its own directory on disk
type LocalStore struct {
	dirs    map[model.Collection]string
	allowed []string
}

// NewLocalStore creates a store rooted at the configured directories.
// Directories are created lazily on the first Save.
func NewLocalStore(cfg config.StorageConfig) *LocalStore {
	return &LocalStore{
		dirs: map[model.Collection]string{
			model.Recordings:  cfg.RecordingsDir,
			model.Synthesized: cfg.SynthesizedDir,
		},
		allowed: cfg.AllowedExtensions,
	}
}

// Dir returns the directory backing a collection
func (s *LocalStore) Dir(c model.Collection) string {
	return s.dirs[c]
}

func (s *LocalStore) List(ctx context.Context, c model.Collection) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dir, err := s.dir(c)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return []string{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(errors.ErrFileReadFailed, "list %s: %v", dir, err)
	}

	names := lo.FilterMap(entries, func(e os.DirEntry, _ int) (string, bool) {
		return e.Name(), !e.IsDir() && files.HasAllowedExt(e.Name(), s.allowed)
	})
	slices.Sort(names)
	slices.Reverse(names)
	return names, nil
}

func (s *LocalStore) Save(ctx context.Context, c model.Collection, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !files.IsSafeName(name) {
		return errors.Wrapf(errors.ErrFileWriteFailed, "invalid name %q", name)
	}
	path, err := s.path(c, name)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(errors.ErrFileWriteFailed, "create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(errors.ErrFileWriteFailed, "write %s: %v", path, err)
	}
	return nil
}

func (s *LocalStore) Fetch(ctx context.Context, c model.Collection, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.path(c, name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, s.openError(c, name, path, err)
	}
	info, err := f.Stat()
	if err != nil || info.IsDir() {
		f.Close()
		return nil, errors.NotFound(c.String(), name)
	}
	return f, nil
}

func (s *LocalStore) Stat(ctx context.Context, c model.Collection, name string) (model.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return model.FileInfo{}, err
	}
	path, err := s.path(c, name)
	if err != nil {
		return model.FileInfo{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return model.FileInfo{}, s.openError(c, name, path, err)
	}
	if info.IsDir() {
		return model.FileInfo{}, errors.NotFound(c.String(), name)
	}
	return model.FileInfo{
		Collection: c,
		Name:       name,
		Size:       info.Size(),
		ModTime:    info.ModTime(),
	}, nil
}

func (s *LocalStore) dir(c model.Collection) (string, error) {
	dir, ok := s.dirs[c]
	if !ok {
		return "", errors.Newf("unknown collection %q", c)
	}
	return dir, nil
}

// path resolves name inside the collection directory. Unsafe names are
// reported as not found so callers cannot reach outside the store.
func (s *LocalStore) path(c model.Collection, name string) (string, error) {
	dir, err := s.dir(c)
	if err != nil {
		return "", err
	}
	if !files.IsSafeName(name) {
		return "", errors.NotFound(c.String(), name)
	}
	return filepath.Join(dir, name), nil
}

func (s *LocalStore) openError(c model.Collection, name, path string, err error) error {
	if os.IsNotExist(err) {
		return errors.NotFound(c.String(), name)
	}
	return errors.Wrapf(errors.ErrFileReadFailed, "open %s: %v", path, err)
}
