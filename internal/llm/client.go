// Package llm talks to the Gemini API. Two client implementations
// (raw REST and the official SDK) sit behind one interface; the
// Gateway walks an ordered model list across either of them.
package llm

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"agridata/internal/config"
)

// ErrExhausted reports that every configured model endpoint failed.
// Callers fall back to canned offline answers when they see it.
var ErrExhausted = errors.New("llm: all model endpoints exhausted")

// Client generates a completion for a prompt against a named model.
// Implementations return the raw response text without any cleanup;
// normalization happens downstream.
type Client interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// NewClient builds a Client from configuration. Transport selects the
// implementation; both behave identically at this interface.
func NewClient(cfg config.LLMConfig, log *zap.Logger) (Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("llm: API key is not configured (set GEMINI_API_KEY)")
	}

	switch cfg.Transport {
	case "", "rest":
		return NewRESTClient(cfg.APIKey, cfg.BaseURL, log), nil
	case "sdk":
		return NewSDKClient(cfg.APIKey, log), nil
	default:
		return nil, fmt.Errorf("llm: unknown transport %q", cfg.Transport)
	}
}
