package services

import (
	"context"

	"speech-studio/internal/api/v1/dto"
)

// LibraryService exposes the stored recordings, transcripts and
// synthesized audio as JSON resources
type LibraryService interface {
	ListRecordings(ctx context.Context) (*dto.FileListResponse, error)
	ListSynthesized(ctx context.Context) (*dto.FileListResponse, error)
	GetTranscript(ctx context.Context, recording string) (*dto.TranscriptResponse, error)
}
