package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"careerpilot/internal/config"
	"careerpilot/pkg/errors"
	"careerpilot/pkg/types"
)

// Provider is one completion backend. Complete issues a single blocking
// round trip; it never retries.
type Provider interface {
	Complete(ctx context.Context, prompt string, params types.GenerationParams) (string, error)
	Close() error
}

type Client struct {
	provider Provider
	name     string
}

func New(cfg *config.Config) (*Client, error) {
	var (
		provider Provider
		err      error
	)
	switch cfg.Provider {
	case config.ProviderOpenAI:
		provider = newOpenAIProvider(cfg.OpenAIKey, cfg.OpenAIModel)
	case config.ProviderGemini:
		provider, err = newGeminiProvider(context.Background(), cfg.GeminiKey, cfg.GeminiModel)
	default:
		err = fmt.Errorf("unknown provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.Provider, err)
	}
	return &Client{provider: provider, name: cfg.Provider}, nil
}

func (c *Client) Close() {
	if c.provider != nil {
		c.provider.Close()
	}
}

// Generate sends one prompt and returns the raw model text. Any
// transport, quota or auth failure comes back as a *errors.TransportError
// so the caller can surface it and let the user retry the action.
func (c *Client) Generate(ctx context.Context, prompt string, params types.GenerationParams) (string, error) {
	logger := slog.With("component", "llm", "provider", c.name)
	logger.Debug("sending prompt", "prompt_length", len(prompt),
		"temperature", params.Temperature, "max_tokens", params.MaxTokens)

	start := time.Now()
	content, err := c.provider.Complete(ctx, prompt, params)
	if err != nil {
		logger.Error("generation failed", "error", err,
			"duration_ms", time.Since(start).Milliseconds())
		return "", &errors.TransportError{Err: err}
	}

	logger.Info("received response",
		"duration_ms", time.Since(start).Milliseconds(),
		"response_length", len(content))
	return content, nil
}
