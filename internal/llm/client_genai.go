package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// SDKClient generates completions through the official genai SDK. It
// behaves identically to RESTClient at the Client interface; the SDK
// handles transport details, retries, and response decoding.
type SDKClient struct {
	apiKey string
	log    *zap.Logger
}

// NewSDKClient creates an SDK-backed client. The underlying genai
// client is constructed lazily per call because its constructor needs
// a context.
func NewSDKClient(apiKey string, log *zap.Logger) *SDKClient {
	if log == nil {
		log = zap.NewNop()
	}
	return &SDKClient{apiKey: apiKey, log: log}
}

// Generate implements Client.
func (c *SDKClient) Generate(ctx context.Context, model, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create genai client: %w", err)
	}

	resp, err := client.Models.GenerateContent(ctx, model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr[float32](genTemperature),
			TopK:            genai.Ptr[float32](genTopK),
			TopP:            genai.Ptr[float32](genTopP),
			MaxOutputTokens: genMaxOutputTokens,
		})
	if err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("response contained no text")
	}
	return text, nil
}
