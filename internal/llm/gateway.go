package llm

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Gateway tries an ordered list of models against one Client until a
// model produces a non-empty response. Each attempt gets its own
// timeout so one slow model cannot starve the rest of the list.
type Gateway struct {
	client         Client
	models         []string
	attemptTimeout time.Duration
	log            *zap.Logger
}

// Result is one successful generation, tagged with the model that
// produced it.
type Result struct {
	Text  string
	Model string
}

// NewGateway creates a gateway over client for the given model
// priority list.
func NewGateway(client Client, models []string, attemptTimeout time.Duration, log *zap.Logger) *Gateway {
	if log == nil {
		log = zap.NewNop()
	}
	if attemptTimeout <= 0 {
		attemptTimeout = 30 * time.Second
	}
	return &Gateway{
		client:         client,
		models:         models,
		attemptTimeout: attemptTimeout,
		log:            log,
	}
}

// Ask runs the prompt through the model list in order and returns the
// first non-empty answer. An empty response body counts as a failure.
// When every model fails the returned error wraps ErrExhausted; a
// cancelled parent context surfaces as the context error instead.
func (g *Gateway) Ask(ctx context.Context, prompt string) (Result, error) {
	if len(g.models) == 0 {
		return Result{}, ErrExhausted
	}

	var lastErr error
	for _, model := range g.models {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		attemptCtx, cancel := context.WithTimeout(ctx, g.attemptTimeout)
		text, err := g.client.Generate(attemptCtx, model, prompt)
		cancel()

		if err != nil {
			g.log.Warn("model attempt failed",
				zap.String("model", model),
				zap.Error(err))
			lastErr = err
			continue
		}
		if strings.TrimSpace(text) == "" {
			g.log.Warn("model returned empty response", zap.String("model", model))
			lastErr = errors.New("empty response")
			continue
		}

		g.log.Debug("model answered", zap.String("model", model), zap.Int("bytes", len(text)))
		return Result{Text: text, Model: model}, nil
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	return Result{}, wrapExhausted(lastErr)
}

func wrapExhausted(lastErr error) error {
	if lastErr == nil {
		return ErrExhausted
	}
	return errors.Join(ErrExhausted, lastErr)
}
