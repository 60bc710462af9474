package google

import (
	"context"

	"speech-studio/internal/app/speech"
	"speech-studio/internal/config"
)

func init() {
	speech.RegisterProvider(ProviderName, func(ctx context.Context, cfg config.SpeechConfig) (speech.Provider, error) {
		p, err := NewProvider(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return p, nil
	})
}
