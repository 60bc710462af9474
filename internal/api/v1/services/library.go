package services

import (
	"context"
	stderrors "errors"
	"io"
	"net/url"

	"speech-studio/internal/api/v1/dto"
	"speech-studio/internal/app/errors"
	"speech-studio/internal/app/model"
	"speech-studio/internal/app/storage"
	"speech-studio/internal/app/util/files"
)

// maxTranscriptBytes bounds how much of a transcript is returned inline
const maxTranscriptBytes = 1 << 20

type libraryService struct {
	store storage.Store
}

// NewLibraryService creates a LibraryService backed by store
func NewLibraryService(store storage.Store) LibraryService {
	return &libraryService{store: store}
}

func (s *libraryService) ListRecordings(ctx context.Context) (*dto.FileListResponse, error) {
	return s.list(ctx, model.Recordings, true)
}

func (s *libraryService) ListSynthesized(ctx context.Context) (*dto.FileListResponse, error) {
	return s.list(ctx, model.Synthesized, false)
}

func (s *libraryService) GetTranscript(ctx context.Context, recording string) (*dto.TranscriptResponse, error) {
	if !files.IsSafeName(recording) {
		return nil, errors.NotFound(model.Recordings.String(), recording)
	}

	name := files.TranscriptName(recording)
	rc, err := s.store.Fetch(ctx, model.Recordings, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	text, err := io.ReadAll(io.LimitReader(rc, maxTranscriptBytes))
	if err != nil {
		return nil, errors.Wrapf(errors.ErrFileReadFailed, "read %s: %v", name, err)
	}

	return &dto.TranscriptResponse{
		Recording: recording,
		Name:      name,
		Text:      string(text),
	}, nil
}

func (s *libraryService) list(ctx context.Context, c model.Collection, withTranscripts bool) (*dto.FileListResponse, error) {
	names, err := s.store.List(ctx, c)
	if err != nil {
		return nil, err
	}

	items := make([]dto.FileResponse, 0, len(names))
	for _, name := range names {
		info, err := s.store.Stat(ctx, c, name)
		if stderrors.Is(err, errors.ErrNotFound) {
			// removed between List and Stat
			continue
		}
		if err != nil {
			return nil, err
		}

		item := dto.FileResponse{
			Name:       name,
			Collection: c.String(),
			Size:       info.Size,
			ModifiedAt: info.ModTime,
			URL:        FileURL(c, name),
		}
		if withTranscripts {
			transcript := files.TranscriptName(name)
			if _, err := s.store.Stat(ctx, c, transcript); err == nil {
				item.TranscriptURL = FileURL(c, transcript)
			}
		}
		items = append(items, item)
	}

	return &dto.FileListResponse{Items: items, Total: len(items)}, nil
}

// FileURL returns the download route of a stored file, with the name
// escaped as a single path segment
func FileURL(c model.Collection, name string) string {
	return "/" + c.String() + "/" + url.PathEscape(name)
}
