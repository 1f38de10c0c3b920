package provider

import (
	"context"

	"github.com/diesi/aienum/internal/errors"
	"github.com/diesi/aienum/internal/openai"
)

// Generic completion response for abstraction
type CompletionResponse struct {
	Choices []string
	Raw     string
}

// Provider defines the interface for AI providers.
type Provider interface {
	Chat(ctx context.Context, req openai.ChatCompletionRequest) (*CompletionResponse, error)
}

// New returns the provider registered under name. Only the custom provider
// may run without an API key (e.g. a local LM Studio or Ollama server).
func New(name, apiKey string) (Provider, error) {
	if apiKey == "" && name != "custom" {
		return nil, errors.Wrapf(errors.ErrMissingAPIKey, "provider %s", name)
	}
	switch name {
	case "claude":
		return NewClaude(apiKey), nil
	case "gemini":
		return NewGemini(apiKey), nil
	case "custom":
		return NewCustom(apiKey), nil
	case "openai", "":
		return NewOpenAI(apiKey), nil
	default:
		return nil, errors.Wrapf(errors.ErrUnknownProvider, "provider %q", name)
	}
}
