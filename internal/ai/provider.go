package ai

import (
	"context"

	"tripgen/internal/config"
)

// NewTextGenerator builds the provider selected in cfg. The returned close func
// releases client resources and is never nil on success.
func NewTextGenerator(ctx context.Context, cfg config.AIConfig) (TextGenerator, func(), error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		p, err := NewOpenAIProvider(OpenAIConfig{APIKey: cfg.OpenAIKey, Model: cfg.OpenAIModel, Endpoint: cfg.OpenAIURL})
		if err != nil {
			return nil, nil, err
		}
		return p, func() {}, nil
	default:
		p, err := NewGeminiProvider(ctx, GeminiConfig{APIKey: cfg.GeminiKey, Model: cfg.GeminiModel, JSONMode: cfg.GeminiJSON})
		if err != nil {
			return nil, nil, err
		}
		return p, p.Close, nil
	}
}
