package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Generation settings tuned for analytical answers over fixed
// datasets. Output is capped well below context limits because the
// expected payload is a single small JSON object.
const (
	genTemperature     = 0.7
	genTopK            = 40
	genTopP            = 0.95
	genMaxOutputTokens = 2048
)

// RESTClient calls the generativelanguage generateContent endpoint
// directly over HTTP.
type RESTClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

// NewRESTClient creates a REST client. An empty baseURL uses the
// public endpoint; tests point it at a local server.
func NewRESTClient(apiKey, baseURL string, log *zap.Logger) *RESTClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &RESTClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		// Per-request deadlines come from the caller's context; this
		// is a backstop against a hung connection.
		httpClient: &http.Client{Timeout: 2 * time.Minute},
		log:        log,
	}
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig geminiGenConfig `json:"generationConfig"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Generate sends the prompt to the named model and returns the text
// of the first candidate. Rate limiting (429) is retried with
// exponential backoff; other failures surface immediately so the
// gateway can move to the next model.
func (c *RESTClient) Generate(ctx context.Context, model, prompt string) (string, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: geminiGenConfig{
			Temperature:     genTemperature,
			TopK:            genTopK,
			TopP:            genTopP,
			MaxOutputTokens: genMaxOutputTokens,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, model, c.apiKey)

	maxRetries := 3
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<uint(attempt-1)) * time.Second
			c.log.Debug("rate limited, backing off",
				zap.String("model", model),
				zap.Duration("backoff", backoff))
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		text, retryable, err := c.doRequest(ctx, url, body)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if !retryable {
			return "", err
		}
	}
	return "", lastErr
}

func (c *RESTClient) doRequest(ctx context.Context, url string, body []byte) (text string, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", false, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", false, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", false, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", true, fmt.Errorf("rate limited (429)")
	}
	if resp.StatusCode != http.StatusOK {
		var parsed geminiResponse
		if json.Unmarshal(data, &parsed) == nil && parsed.Error != nil {
			return "", false, fmt.Errorf("api error %d: %s", resp.StatusCode, parsed.Error.Message)
		}
		return "", false, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", false, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(parsed.Candidates) == 0 {
		return "", false, fmt.Errorf("response contained no candidates")
	}

	var b strings.Builder
	for _, part := range parsed.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	return b.String(), false, nil
}
