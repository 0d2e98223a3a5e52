// Package openai wraps the OpenAI chat API behind the narrow interfaces
// the natural language query gateway needs.
package openai

import (
	"context"
	"fmt"

	gopenai "github.com/sashabaranov/go-openai"
)

// Client is a thin wrapper over the OpenAI SDK
type Client struct {
	api *gopenai.Client
}

// NewClient creates a client bound to one API key
func NewClient(apiKey string) *Client {
	return &Client{api: gopenai.NewClient(apiKey)}
}

// ValidateKey checks the key by listing available models
func (c *Client) ValidateKey(ctx context.Context) error {
	if _, err := c.api.ListModels(ctx); err != nil {
		return fmt.Errorf("openai key validation: %w", err)
	}
	return nil
}

// Complete sends one prompt and returns the raw completion text
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, gopenai.ChatCompletionRequest{
		Model:       gopenai.GPT4,
		MaxTokens:   500,
		Temperature: 0.1,
		Messages: []gopenai.ChatCompletionMessage{
			{Role: gopenai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai completion: empty response")
	}
	return resp.Choices[0].Message.Content, nil
}
