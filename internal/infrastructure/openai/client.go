package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/recipeview/backend/internal/domain"
	"go.uber.org/zap"
)

// Client calls the OpenAI chat-completions API. Every call is one-shot and
// synchronous: it blocks until the service responds or the transport times
// out, with no retry and no mid-flight abort beyond context cancellation.
type Client struct {
	client *resty.Client
	model  string
	logger *zap.Logger
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// NewClient creates a chat-completion client.
func NewClient(apiKey, baseURL, model string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", apiKey)).
		SetHeader("Content-Type", "application/json").
		SetTimeout(30 * time.Second)

	return &Client{
		client: client,
		model:  model,
		logger: logger,
	}
}

// Complete sends one system-role message and one user prompt and returns the
// completion text. Transport, auth and quota failures, as well as empty
// completions, yield ErrInvocationFailure; the calling component reports the
// failure for its own page section and other sections proceed independently.
func (c *Client) Complete(ctx context.Context, systemRole, userPrompt string) (string, error) {
	req := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemRole},
			{Role: "user", Content: userPrompt},
		},
	}

	c.logger.Debug("sending completion request",
		zap.String("model", c.model),
		zap.Int("prompt_length", len(userPrompt)),
	)

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvocationFailure, err)
	}

	if resp.StatusCode() != http.StatusOK {
		c.logger.Warn("completion service returned error status",
			zap.Int("status", resp.StatusCode()),
			zap.String("model", c.model),
		)
		return "", fmt.Errorf("%w: status %d: %s", domain.ErrInvocationFailure, resp.StatusCode(), resp.String())
	}

	var parsed chatResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return "", fmt.Errorf("%w: failed to parse response: %v", domain.ErrInvocationFailure, err)
	}

	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: empty completion", domain.ErrInvocationFailure)
	}

	return parsed.Choices[0].Message.Content, nil
}
