package speech

import "context"

// TranscriptionService turns raw audio into transcript text
type TranscriptionService interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// SynthesisService turns text into raw audio
type SynthesisService interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// Provider is a cloud backend offering both directions
type Provider interface {
	TranscriptionService
	SynthesisService

	// Name returns the registry key of the provider
	Name() string
	// Close releases client connections
	Close() error
}
