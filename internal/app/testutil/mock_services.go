package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"speech-studio/internal/app/model"
	"speech-studio/internal/app/pipeline"
)

// MockPipeline is a mock of the coordinator as seen by the HTTP handlers
type MockPipeline struct {
	mock.Mock
}

func NewMockPipeline(t *testing.T) *MockPipeline {
	m := &MockPipeline{}
	m.Test(t)
	return m
}

func (m *MockPipeline) Intake(ctx context.Context, up pipeline.Upload) (*model.Transcription, error) {
	args := m.Called(ctx, up)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transcription), args.Error(1)
}

func (m *MockPipeline) Synthesize(ctx context.Context, text string) (*pipeline.SynthesisResult, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pipeline.SynthesisResult), args.Error(1)
}
