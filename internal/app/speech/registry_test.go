package speech

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speech-studio/internal/app/errors"
	"speech-studio/internal/config"
)

type stubProvider struct {
	name string
}

func (p *stubProvider) Transcribe(ctx context.Context, audio []byte) (string, error) {
	return "heard " + p.name, nil
}

func (p *stubProvider) Synthesize(ctx context.Context, text string) ([]byte, error) {
	return []byte(text), nil
}

func (p *stubProvider) Name() string { return p.name }
func (p *stubProvider) Close() error { return nil }

func TestRegistry(t *testing.T) {
	RegisterProvider("stub-test", func(ctx context.Context, cfg config.SpeechConfig) (Provider, error) {
		return &stubProvider{name: cfg.LanguageCode}, nil
	})

	assert.Contains(t, ListRegisteredProviders(), "stub-test")

	p, err := NewProvider(context.Background(), config.SpeechConfig{Provider: "stub-test", LanguageCode: "de-DE"})
	require.NoError(t, err)
	assert.Equal(t, "de-DE", p.Name())

	text, err := p.Transcribe(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "heard de-DE", text)
}

func TestRegistryUnknownProvider(t *testing.T) {
	_, err := NewProvider(context.Background(), config.SpeechConfig{Provider: "does-not-exist"})
	assert.True(t, stderrors.Is(err, errors.ErrProviderNotFound))
	assert.Contains(t, err.Error(), "does-not-exist")
}
