package openai

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speech-studio/internal/app/errors"
	"speech-studio/internal/config"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *Provider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p, err := NewProvider(config.SpeechConfig{
		Provider:      ProviderName,
		LanguageCode:  "en-US",
		Timeout:       10 * time.Second,
		OpenAIAPIKey:  "sk-test-0123456789abcdef",
		OpenAIBaseURL: srv.URL + "/v1",
		OpenAIVoice:   "alloy",
	})
	require.NoError(t, err)
	return p
}

func TestNewProviderRequiresKey(t *testing.T) {
	_, err := NewProvider(config.SpeechConfig{})
	assert.True(t, stderrors.Is(err, errors.ErrMissingAPIKey))
}

func TestTranscribe(t *testing.T) {
	tests := []struct {
		name         string
		mockResponse string
		mockStatus   int
		expectedText string
		expectError  bool
	}{
		{
			name:         "segments joined one per line",
			mockResponse: `{"text":"hello world. second","segments":[{"id":0,"text":" hello world."},{"id":1,"text":" second"}]}`,
			mockStatus:   http.StatusOK,
			expectedText: "hello world.\nsecond\n",
		},
		{
			name:         "text only",
			mockResponse: `{"text":"just text"}`,
			mockStatus:   http.StatusOK,
			expectedText: "just text\n",
		},
		{
			name:         "silence",
			mockResponse: `{"text":""}`,
			mockStatus:   http.StatusOK,
			expectedText: "",
		},
		{
			name:         "API error - rate limit",
			mockResponse: `{"error": {"message": "Rate limit exceeded", "type": "rate_limit_error"}}`,
			mockStatus:   http.StatusTooManyRequests,
			expectError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
				calls++
				assert.Equal(t, "/v1/audio/transcriptions", r.URL.Path)
				assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))
				if !assert.NoError(t, r.ParseMultipartForm(32<<20)) {
					return
				}
				assert.Equal(t, "whisper-1", r.FormValue("model"))
				assert.Equal(t, "en", r.FormValue("language"))

				file, header, err := r.FormFile("file")
				if !assert.NoError(t, err) {
					return
				}
				defer file.Close()
				body, _ := io.ReadAll(file)
				assert.Equal(t, "RIFF", string(body))
				assert.Equal(t, "audio.wav", header.Filename)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.mockStatus)
				w.Write([]byte(tt.mockResponse))
			})

			text, err := p.Transcribe(context.Background(), []byte("RIFF"))
			assert.Equal(t, 1, calls)
			if tt.expectError {
				assert.True(t, stderrors.Is(err, errors.ErrExternalService), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedText, text)
		})
	}
}

func TestSynthesize(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/audio/speech", r.URL.Path)

		var req map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "tts-1", req["model"])
		assert.Equal(t, "hello world", req["input"])
		assert.Equal(t, "alloy", req["voice"])
		assert.Equal(t, "wav", req["response_format"])

		w.Header().Set("Content-Type", "audio/wav")
		w.Write([]byte("RIFF-audio"))
	})

	audio, err := p.Synthesize(context.Background(), "hello world")
	require.NoError(t, err)
	assert.Equal(t, []byte("RIFF-audio"), audio)
}

func TestSynthesizeError(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "Invalid API key", "type": "invalid_request_error"}}`))
	})

	_, err := p.Synthesize(context.Background(), "hello")
	assert.True(t, stderrors.Is(err, errors.ErrExternalService))
	assert.Contains(t, err.Error(), "openai speech failed")
}

func TestWhisperLanguage(t *testing.T) {
	assert.Equal(t, "en", whisperLanguage("en-US"))
	assert.Equal(t, "de", whisperLanguage("DE"))
	assert.Equal(t, "", whisperLanguage(""))
}
