package google

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"cloud.google.com/go/speech/apiv1/speechpb"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"github.com/googleapis/gax-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speech-studio/internal/app/errors"
	"speech-studio/internal/config"
)

type fakeRecognizer struct {
	got    *speechpb.RecognizeRequest
	resp   *speechpb.RecognizeResponse
	err    error
	calls  int
	closed bool
}

func (f *fakeRecognizer) Recognize(ctx context.Context, req *speechpb.RecognizeRequest, opts ...gax.CallOption) (*speechpb.RecognizeResponse, error) {
	f.calls++
	f.got = req
	return f.resp, f.err
}

func (f *fakeRecognizer) Close() error {
	f.closed = true
	return nil
}

type fakeSynthesizer struct {
	got    *texttospeechpb.SynthesizeSpeechRequest
	resp   *texttospeechpb.SynthesizeSpeechResponse
	err    error
	calls  int
	closed bool
}

func (f *fakeSynthesizer) SynthesizeSpeech(ctx context.Context, req *texttospeechpb.SynthesizeSpeechRequest, opts ...gax.CallOption) (*texttospeechpb.SynthesizeSpeechResponse, error) {
	f.calls++
	f.got = req
	return f.resp, f.err
}

func (f *fakeSynthesizer) Close() error {
	f.closed = true
	return nil
}

func testConfig() config.SpeechConfig {
	return config.SpeechConfig{
		Provider:      ProviderName,
		LanguageCode:  "en-US",
		VoiceLanguage: "en-GB",
		Timeout:       time.Minute,
	}
}

func result(alternatives ...string) *speechpb.SpeechRecognitionResult {
	r := &speechpb.SpeechRecognitionResult{}
	for _, a := range alternatives {
		r.Alternatives = append(r.Alternatives, &speechpb.SpeechRecognitionAlternative{Transcript: a})
	}
	return r
}

func TestBuildRecognizeRequest(t *testing.T) {
	audio := []byte("RIFF....WAVE")
	req := buildRecognizeRequest(audio, "en-US", 0)

	cfg := req.GetConfig()
	assert.Equal(t, speechpb.RecognitionConfig_LINEAR16, cfg.GetEncoding())
	assert.Equal(t, "en-US", cfg.GetLanguageCode())
	assert.True(t, cfg.GetEnableWordConfidence())
	assert.True(t, cfg.GetEnableWordTimeOffsets())
	assert.Zero(t, cfg.GetSampleRateHertz())
	assert.Equal(t, audio, req.GetAudio().GetContent())
}

func TestJoinTranscripts(t *testing.T) {
	tests := []struct {
		name string
		resp *speechpb.RecognizeResponse
		want string
	}{
		{
			name: "top alternative of every result",
			resp: &speechpb.RecognizeResponse{Results: []*speechpb.SpeechRecognitionResult{
				result("hello world", "hollow world"),
				result("second segment"),
			}},
			want: "hello world\nsecond segment\n",
		},
		{
			name: "no results",
			resp: &speechpb.RecognizeResponse{},
			want: "",
		},
		{
			name: "result without alternatives is skipped",
			resp: &speechpb.RecognizeResponse{Results: []*speechpb.SpeechRecognitionResult{
				result(),
				result("only"),
			}},
			want: "only\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, joinTranscripts(tt.resp))
		})
	}
}

func TestBuildSynthesizeRequest(t *testing.T) {
	req := buildSynthesizeRequest("hello world", "en-GB", "", 0)

	assert.Equal(t, "hello world", req.GetInput().GetText())
	assert.Equal(t, "en-GB", req.GetVoice().GetLanguageCode())
	assert.Empty(t, req.GetVoice().GetName())
	assert.Equal(t, texttospeechpb.AudioEncoding_LINEAR16, req.GetAudioConfig().GetAudioEncoding())
}

func TestProviderTranscribe(t *testing.T) {
	stt := &fakeRecognizer{resp: &speechpb.RecognizeResponse{Results: []*speechpb.SpeechRecognitionResult{
		result("testing one two"),
	}}}
	p := newProvider(stt, &fakeSynthesizer{}, testConfig())

	text, err := p.Transcribe(context.Background(), []byte("pcm"))
	require.NoError(t, err)
	assert.Equal(t, "testing one two\n", text)
	assert.Equal(t, []byte("pcm"), stt.got.GetAudio().GetContent())
	assert.Equal(t, "en-US", stt.got.GetConfig().GetLanguageCode())
}

func TestProviderTranscribeFailureIsNotRetried(t *testing.T) {
	cause := stderrors.New("rpc error: code = Unavailable")
	stt := &fakeRecognizer{err: cause}
	p := newProvider(stt, &fakeSynthesizer{}, testConfig())

	_, err := p.Transcribe(context.Background(), []byte("pcm"))
	assert.True(t, stderrors.Is(err, errors.ErrExternalService))
	assert.True(t, stderrors.Is(err, cause))
	assert.Equal(t, 1, stt.calls)
}

func TestProviderSynthesize(t *testing.T) {
	tts := &fakeSynthesizer{resp: &texttospeechpb.SynthesizeSpeechResponse{AudioContent: []byte("RIFF")}}
	cfg := testConfig()
	cfg.GoogleVoice = "en-GB-Standard-A"
	p := newProvider(&fakeRecognizer{}, tts, cfg)

	audio, err := p.Synthesize(context.Background(), "hello world")
	require.NoError(t, err)
	assert.Equal(t, []byte("RIFF"), audio)
	assert.Equal(t, "hello world", tts.got.GetInput().GetText())
	assert.Equal(t, "en-GB", tts.got.GetVoice().GetLanguageCode())
	assert.Equal(t, "en-GB-Standard-A", tts.got.GetVoice().GetName())
}

func TestProviderSynthesizeFailure(t *testing.T) {
	tts := &fakeSynthesizer{err: stderrors.New("permission denied")}
	p := newProvider(&fakeRecognizer{}, tts, testConfig())

	_, err := p.Synthesize(context.Background(), "hello")
	assert.True(t, stderrors.Is(err, errors.ErrExternalService))
	assert.Contains(t, err.Error(), "google synthesize failed")
}

func TestProviderClose(t *testing.T) {
	stt, tts := &fakeRecognizer{}, &fakeSynthesizer{}
	p := newProvider(stt, tts, testConfig())

	require.NoError(t, p.Close())
	assert.True(t, stt.closed)
	assert.True(t, tts.closed)
	assert.Equal(t, ProviderName, p.Name())
}
