// internal/mcp/llm/openai.go
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Client adalah kontrak minimal yang dipakai chooser tool.
type Client interface {
	// Complete mengembalikan jawaban teks bebas dari model.
	Complete(ctx context.Context, system, prompt string) (string, error)
}

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// OpenAIClient adalah implementasi Client berbasis go-openai.
type OpenAIClient struct {
	api   *openai.Client
	model string
}

// New mengembalikan OpenAI Client; APIKey wajib.
func New(c Config) (*OpenAIClient, error) {
	key := strings.TrimSpace(c.APIKey)
	if key == "" {
		return nil, errors.New("OPENAI_API_KEY not set")
	}

	cfg := openai.DefaultConfig(key)
	if base := strings.TrimSpace(c.BaseURL); base != "" {
		cfg.BaseURL = base
	}

	model := strings.TrimSpace(c.Model)
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &OpenAIClient{
		api:   openai.NewClientWithConfig(cfg),
		model: model,
	}, nil
}

func (c *OpenAIClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.0,
		MaxTokens:   16,
	}

	// routing harus responsif
	var cancel context.CancelFunc
	if _, ok := ctx.Deadline(); !ok {
		ctx, cancel = context.WithTimeout(ctx, 8*time.Second)
		defer cancel()
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no completion choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
