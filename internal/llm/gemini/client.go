// Package gemini implements llm.Client on the Gemini API via
// google.golang.org/genai.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"resume-optimizer/internal/llm"
)

const providerName = "gemini"

// Client generates completions with a Gemini model.
type Client struct {
	apiKey string
	model  string
}

// NewClient constructs a Gemini client. As with the chat completions client,
// a missing API key fails at call time, not here.
func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("LLM_MODEL is required")
	}
	return &Client{apiKey: apiKey, model: model}, nil
}

// Complete sends the prompt at temperature zero and returns the trimmed
// response text.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", &llm.UpstreamError{Provider: providerName, Err: err}
	}

	resp, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(0)),
		MaxOutputTokens: 10000,
	})
	if err != nil {
		return "", &llm.UpstreamError{Provider: providerName, Err: err}
	}

	content := strings.TrimSpace(resp.Text())
	if content == "" {
		return "", &llm.UpstreamError{Provider: providerName, Err: errors.New("response empty content")}
	}
	return content, nil
}

var _ llm.Client = (*Client)(nil)
