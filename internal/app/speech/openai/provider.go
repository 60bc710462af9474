package openai

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sashabaranov/go-openai"

	"speech-studio/internal/app/errors"
	"speech-studio/internal/app/speech"
	"speech-studio/internal/config"
)

// ProviderName is the registry key of the OpenAI provider
const ProviderName = "openai"

// Provider uses the OpenAI audio endpoints: Whisper for transcription and
// tts-1 for synthesis.
type Provider struct {
	client *openai.Client
	cfg    config.SpeechConfig
}

var _ speech.Provider = (*Provider)(nil)

// NewProvider creates a provider from configuration
func NewProvider(cfg config.SpeechConfig) (*Provider, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, errors.Wrap(errors.ErrMissingAPIKey, "openai provider")
	}

	clientConfig := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientConfig.BaseURL = cfg.OpenAIBaseURL
	}
	return &Provider{client: openai.NewClientWithConfig(clientConfig), cfg: cfg}, nil
}

func (p *Provider) Name() string {
	return ProviderName
}

// Transcribe uploads the audio as a WAV file and joins the returned
// segments one per line.
func (p *Provider) Transcribe(ctx context.Context, audio []byte) (string, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	req := openai.AudioRequest{
		Model:    openai.Whisper1,
		Reader:   bytes.NewReader(audio),
		FilePath: "audio.wav",
		Language: whisperLanguage(p.cfg.LanguageCode),
		Format:   openai.AudioResponseFormatVerboseJSON,
		TimestampGranularities: []openai.TranscriptionTimestampGranularity{
			openai.TranscriptionTimestampGranularityWord,
			openai.TranscriptionTimestampGranularitySegment,
		},
	}
	resp, err := p.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", errors.External(ProviderName, "transcription", err)
	}
	return joinSegments(resp), nil
}

// Synthesize requests WAV audio in the configured voice
func (p *Provider) Synthesize(ctx context.Context, text string) ([]byte, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	req := openai.CreateSpeechRequest{
		Model:          openai.TTSModel1,
		Input:          text,
		Voice:          openai.SpeechVoice(p.cfg.OpenAIVoice),
		ResponseFormat: openai.SpeechResponseFormatWav,
	}
	resp, err := p.client.CreateSpeech(ctx, req)
	if err != nil {
		return nil, errors.External(ProviderName, "speech", err)
	}
	defer resp.Close()

	audio, err := io.ReadAll(resp)
	if err != nil {
		return nil, errors.External(ProviderName, "speech", fmt.Errorf("read body: %w", err))
	}
	return audio, nil
}

func (p *Provider) Close() error {
	return nil
}

func (p *Provider) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, p.cfg.Timeout)
}

// whisperLanguage reduces a BCP-47 tag such as en-US to the ISO-639-1
// code Whisper expects.
func whisperLanguage(code string) string {
	lang, _, _ := strings.Cut(code, "-")
	return strings.ToLower(lang)
}

func joinSegments(resp openai.AudioResponse) string {
	if len(resp.Segments) == 0 {
		if resp.Text == "" {
			return ""
		}
		return strings.TrimSpace(resp.Text) + "\n"
	}

	var sb strings.Builder
	for _, seg := range resp.Segments {
		sb.WriteString(strings.TrimSpace(seg.Text))
		sb.WriteString("\n")
	}
	return sb.String()
}
