package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"speech-studio/internal/app/speech"
)

// MockTranscriptionService is a mock implementation of speech.TranscriptionService
type MockTranscriptionService struct {
	mock.Mock
}

var _ speech.TranscriptionService = (*MockTranscriptionService)(nil)

func NewMockTranscriptionService(t *testing.T) *MockTranscriptionService {
	m := &MockTranscriptionService{}
	m.Test(t)
	return m
}

func (m *MockTranscriptionService) Transcribe(ctx context.Context, audio []byte) (string, error) {
	args := m.Called(ctx, audio)
	return args.String(0), args.Error(1)
}

// MockSynthesisService is a mock implementation of speech.SynthesisService
type MockSynthesisService struct {
	mock.Mock
}

var _ speech.SynthesisService = (*MockSynthesisService)(nil)

func NewMockSynthesisService(t *testing.T) *MockSynthesisService {
	m := &MockSynthesisService{}
	m.Test(t)
	return m
}

func (m *MockSynthesisService) Synthesize(ctx context.Context, text string) ([]byte, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
