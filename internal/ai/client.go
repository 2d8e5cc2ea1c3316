package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/jsoler/finplan-be/internal/config"
)

// Generation parameters are fixed; only the model, endpoint and key are
// configuration.
const (
	temperature = 0.7
	maxTokens   = 1500
)

// Client calls an OpenAI-compatible chat-completions endpoint.
type Client struct {
	http   *resty.Client
	url    string
	apiKey string
	model  string
}

// NewClient creates a chat-completions client with a bounded request timeout.
func NewClient(cfg config.AIConfig) *Client {
	return &Client{
		http:   resty.New().SetTimeout(cfg.Timeout),
		url:    cfg.APIURL,
		apiKey: cfg.APIKey,
		model:  cfg.Model,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends the prompt as a single user message and returns the first
// generated message's text.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	var out chatResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(c.apiKey).
		SetBody(chatRequest{
			Model:       c.model,
			Messages:    []chatMessage{{Role: "user", Content: prompt}},
			Temperature: temperature,
			MaxTokens:   maxTokens,
		}).
		SetResult(&out).
		Post(c.url)
	if err != nil {
		return "", fmt.Errorf("chat completion request: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("chat completion: upstream returned %s", resp.Status())
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "", errors.New("chat completion: response has no message content")
	}
	return out.Choices[0].Message.Content, nil
}
