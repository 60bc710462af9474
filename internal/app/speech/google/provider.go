package google

import (
	"context"
	"fmt"

	speechapi "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	ttsapi "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/api/option"

	"speech-studio/internal/app/errors"
	"speech-studio/internal/app/speech"
	"speech-studio/internal/config"
)

// ProviderName is the registry key of the Google Cloud provider
const ProviderName = "google"

type recognizer interface {
	Recognize(ctx context.Context, req *speechpb.RecognizeRequest, opts ...gax.CallOption) (*speechpb.RecognizeResponse, error)
	Close() error
}

type synthesizer interface {
	SynthesizeSpeech(ctx context.Context, req *texttospeechpb.SynthesizeSpeechRequest, opts ...gax.CallOption) (*texttospeechpb.SynthesizeSpeechResponse, error)
	Close() error
}

// Provider talks to Cloud Speech-to-Text and Cloud Text-to-Speech over gRPC
type Provider struct {
	stt recognizer
	tts synthesizer
	cfg config.SpeechConfig
}

var _ speech.Provider = (*Provider)(nil)

// NewProvider dials both Google clients. Credentials come from
// cfg.GoogleCredentialsFile or Application Default Credentials.
func NewProvider(ctx context.Context, cfg config.SpeechConfig) (*Provider, error) {
	var opts []option.ClientOption
	if cfg.GoogleCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.GoogleCredentialsFile))
	}

	stt, err := speechapi.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create speech client: %w", err)
	}
	tts, err := ttsapi.NewClient(ctx, opts...)
	if err != nil {
		stt.Close()
		return nil, fmt.Errorf("failed to create text-to-speech client: %w", err)
	}

	return newProvider(stt, tts, cfg), nil
}

func newProvider(stt recognizer, tts synthesizer, cfg config.SpeechConfig) *Provider {
	return &Provider{stt: stt, tts: tts, cfg: cfg}
}

func (p *Provider) Name() string {
	return ProviderName
}

// Transcribe runs synchronous recognition. Each call is attempted once.
func (p *Provider) Transcribe(ctx context.Context, audio []byte) (string, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	req := buildRecognizeRequest(audio, p.cfg.LanguageCode, p.cfg.SampleRateHertz)
	resp, err := p.stt.Recognize(ctx, req)
	if err != nil {
		return "", errors.External(ProviderName, "recognize", err)
	}
	return joinTranscripts(resp), nil
}

// Synthesize requests LINEAR16 audio for text in the configured voice
func (p *Provider) Synthesize(ctx context.Context, text string) ([]byte, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	req := buildSynthesizeRequest(text, p.cfg.VoiceLanguage, p.cfg.GoogleVoice, p.cfg.SampleRateHertz)
	resp, err := p.tts.SynthesizeSpeech(ctx, req)
	if err != nil {
		return nil, errors.External(ProviderName, "synthesize", err)
	}
	return resp.GetAudioContent(), nil
}

func (p *Provider) Close() error {
	sttErr := p.stt.Close()
	ttsErr := p.tts.Close()
	if sttErr != nil {
		return sttErr
	}
	return ttsErr
}

func (p *Provider) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, p.cfg.Timeout)
}
