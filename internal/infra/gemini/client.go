// Package gemini adapts the Google GenAI SDK to the scoring pipeline's
// text-in, text-out model interface.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"
)

var ErrEmptyResponse = errors.New("empty response from Gemini API")

type Client struct {
	apiKey string
	model  string

	mu     sync.Mutex
	client *genai.Client
}

// NewClient stores configuration only; the SDK client needs a context and is
// created on the first Generate call.
func NewClient(apiKey, model string) *Client {
	return &Client{apiKey: apiKey, model: model}
}

func (c *Client) ModelName() string {
	return c.model
}

func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	client, err := c.sdk(ctx)
	if err != nil {
		return "", err
	}

	result, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate (%s): %w", c.model, err)
	}
	return responseText(result)
}

func (c *Client) sdk(ctx context.Context) (*genai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return c.client, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	c.client = client
	return client, nil
}

// responseText treats a blocked prompt or a candidate-less answer as a failed call.
func responseText(result *genai.GenerateContentResponse) (string, error) {
	if result == nil {
		return "", ErrEmptyResponse
	}
	if fb := result.PromptFeedback; fb != nil && fb.BlockReason != "" {
		return "", fmt.Errorf("gemini blocked prompt: %s", fb.BlockReason)
	}
	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}
	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
