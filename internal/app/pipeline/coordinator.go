package pipeline

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"speech-studio/internal/app/errors"
	"speech-studio/internal/app/metrics"
	"speech-studio/internal/app/model"
	"speech-studio/internal/app/speech"
	"speech-studio/internal/app/storage"
	"speech-studio/internal/app/util/files"
	"speech-studio/internal/config"
)

const (
	operationIntake    = "intake"
	operationSynthesis = "synthesis"

	// AudioField and TextField name the form inputs of the upload routes
	AudioField = "audio_data"
	TextField  = "text"
)

// Clock returns the current time; filenames are derived from it
type Clock func() time.Time

// Upload is an audio file received from a client
type Upload struct {
	Filename string
	Content  []byte
}

// SynthesisResult names the stored audio. Skipped is set when the text
// was blank and nothing was produced.
type SynthesisResult struct {
	Name    string
	Skipped bool
}

// Coordinator runs the two pipelines: intake (store audio, transcribe,
// store transcript) and synthesis (synthesize text, store audio). Each call
// is independent and attempts every external call at most once.
type Coordinator struct {
	store       storage.Store
	transcriber speech.TranscriptionService
	synthesizer speech.SynthesisService
	allowed     []string
	metrics     *metrics.Metrics
	logger      *zap.Logger
	now         Clock
}

// Option customizes a Coordinator
type Option func(*Coordinator)

// WithClock replaces time.Now
func WithClock(clock Clock) Option {
	return func(c *Coordinator) {
		c.now = clock
	}
}

// NewCoordinator wires a coordinator from its collaborators
func NewCoordinator(
	cfg config.StorageConfig,
	store storage.Store,
	transcriber speech.TranscriptionService,
	synthesizer speech.SynthesisService,
	m *metrics.Metrics,
	logger *zap.Logger,
	opts ...Option,
) *Coordinator {
	c := &Coordinator{
		store:       store,
		transcriber: transcriber,
		synthesizer: synthesizer,
		allowed:     cfg.AllowedExtensions,
		metrics:     m,
		logger:      logger,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Intake stores an uploaded recording under a name derived from the
// current time and saves its transcript next to it.
func (c *Coordinator) Intake(ctx context.Context, up Upload) (*model.Transcription, error) {
	return c.IntakeAt(ctx, up, c.now())
}

// IntakeAt is Intake with an explicit timestamp, used by batch imports
// that name recordings after the source file's modification time.
//
// A failure after the audio is saved leaves the audio in place; the
// returned Transcription then carries the recording name only.
func (c *Coordinator) IntakeAt(ctx context.Context, up Upload, at time.Time) (*model.Transcription, error) {
	if up.Filename == "" {
		c.metrics.ObserveOperation(operationIntake, metrics.OutcomeRejected)
		return nil, errors.MissingInput(AudioField)
	}
	if !files.HasAllowedExt(up.Filename, c.allowed) {
		c.metrics.ObserveOperation(operationIntake, metrics.OutcomeRejected)
		return nil, errors.UnsupportedFormat(up.Filename, c.allowed)
	}

	name := files.TimestampName(at)
	logger := c.logger.With(zap.String("recording", name), zap.String("source", up.Filename))

	if err := c.store.Save(ctx, model.Recordings, name, up.Content); err != nil {
		c.metrics.ObserveOperation(operationIntake, metrics.OutcomeFailed)
		logger.Error("Failed to save recording", zap.Error(err))
		return nil, err
	}
	c.metrics.ObserveStored(model.Recordings, len(up.Content))
	result := &model.Transcription{Recording: name}

	start := time.Now()
	text, err := c.transcriber.Transcribe(ctx, up.Content)
	c.metrics.ObserveProvider(providerName(c.transcriber), "transcribe", time.Since(start), err)
	if err != nil {
		c.metrics.ObserveOperation(operationIntake, metrics.OutcomeFailed)
		logger.Error("Transcription failed", zap.Error(err))
		return result, err
	}

	transcript := files.TranscriptName(name)
	if err := c.store.Save(ctx, model.Recordings, transcript, []byte(text)); err != nil {
		c.metrics.ObserveOperation(operationIntake, metrics.OutcomeFailed)
		logger.Error("Failed to save transcript", zap.Error(err))
		return result, err
	}
	c.metrics.ObserveStored(model.Recordings, len(text))
	c.metrics.ObserveOperation(operationIntake, metrics.OutcomeOK)

	result.TranscriptName = transcript
	result.Text = text
	logger.Info("Recording transcribed",
		zap.Int("audio_bytes", len(up.Content)),
		zap.Int("transcript_chars", len(text)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return result, nil
}

// Synthesize converts text to audio and stores it. Blank text is a no-op.
func (c *Coordinator) Synthesize(ctx context.Context, text string) (*SynthesisResult, error) {
	return c.SynthesizeAt(ctx, text, c.now())
}

// SynthesizeAt is Synthesize with an explicit timestamp
func (c *Coordinator) SynthesizeAt(ctx context.Context, text string, at time.Time) (*SynthesisResult, error) {
	if strings.TrimSpace(text) == "" {
		c.metrics.ObserveOperation(operationSynthesis, metrics.OutcomeSkipped)
		c.logger.Debug("Blank text, nothing to synthesize")
		return &SynthesisResult{Skipped: true}, nil
	}

	name := files.TimestampName(at)
	logger := c.logger.With(zap.String("synthesized", name))

	start := time.Now()
	audio, err := c.synthesizer.Synthesize(ctx, text)
	c.metrics.ObserveProvider(providerName(c.synthesizer), "synthesize", time.Since(start), err)
	if err != nil {
		c.metrics.ObserveOperation(operationSynthesis, metrics.OutcomeFailed)
		logger.Error("Synthesis failed", zap.Error(err))
		return nil, err
	}

	if err := c.store.Save(ctx, model.Synthesized, name, audio); err != nil {
		c.metrics.ObserveOperation(operationSynthesis, metrics.OutcomeFailed)
		logger.Error("Failed to save synthesized audio", zap.Error(err))
		return nil, err
	}
	c.metrics.ObserveStored(model.Synthesized, len(audio))
	c.metrics.ObserveOperation(operationSynthesis, metrics.OutcomeOK)

	logger.Info("Text synthesized",
		zap.Int("text_chars", len(text)),
		zap.Int("audio_bytes", len(audio)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return &SynthesisResult{Name: name}, nil
}

func providerName(svc any) string {
	if named, ok := svc.(interface{ Name() string }); ok {
		return named.Name()
	}
	return "unknown"
}
