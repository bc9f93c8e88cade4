// Package openai implements llm.Client against any OpenAI-compatible chat
// completions endpoint (SiliconFlow by default).
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"resume-optimizer/internal/llm"
	"resume-optimizer/internal/shared/telemetry"
)

const (
	providerName = "siliconflow"
	maxTokens    = 10000
)

// Client calls a chat completions endpoint with deterministic sampling.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient constructs a chat completions client. An empty API key is
// accepted: the upstream rejects the unauthenticated call at request time,
// which is surfaced as an UpstreamError rather than a startup failure.
func NewClient(baseURL, apiKey, model string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("LLM_BASE_URL is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required")
	}
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature *float32      `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage *struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage,omitempty"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Complete sends the prompt as a single user message at temperature zero and
// returns the trimmed content of the first choice.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	temp := float32(0)
	reqBody := chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: &temp,
		MaxTokens:   maxTokens,
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", &llm.UpstreamError{Provider: providerName, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", &llm.UpstreamError{Provider: providerName, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "Client.Timeout") {
			return "", &llm.UpstreamError{Provider: providerName, Err: fmt.Errorf("request timeout: %w", err)}
		}
		return "", &llm.UpstreamError{Provider: providerName, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &llm.UpstreamError{Provider: providerName, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &llm.UpstreamError{
			Provider: providerName,
			Status:   resp.StatusCode,
			Err:      fmt.Errorf("unexpected status: %s", strings.TrimSpace(string(body))),
		}
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &llm.UpstreamError{Provider: providerName, Err: fmt.Errorf("response parse: %w", err)}
	}
	if parsed.Error != nil {
		return "", &llm.UpstreamError{Provider: providerName, Err: fmt.Errorf("%s (%s)", parsed.Error.Message, parsed.Error.Type)}
	}
	if len(parsed.Choices) == 0 {
		return "", &llm.UpstreamError{Provider: providerName, Err: errors.New("response missing choices")}
	}

	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if content == "" {
		return "", &llm.UpstreamError{Provider: providerName, Err: errors.New("response empty content")}
	}

	logUsage(c.model, time.Since(start), &parsed)
	return content, nil
}

func logUsage(model string, elapsed time.Duration, parsed *chatResponse) {
	fields := map[string]any{
		"model":       model,
		"duration_ms": float64(elapsed.Microseconds()) / 1000.0,
	}
	if parsed.Usage != nil {
		fields["prompt_tokens"] = parsed.Usage.PromptTokens
		fields["completion_tokens"] = parsed.Usage.CompletionTokens
		fields["total_tokens"] = parsed.Usage.TotalTokens
	}
	telemetry.Info("llm.response", fields)
}

var _ llm.Client = (*Client)(nil)
