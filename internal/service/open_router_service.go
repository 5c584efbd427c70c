package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

type OpenRouterService struct {
	client *resty.Client
	logger *slog.Logger
}

var _ CompletionServiceInterface = (*OpenRouterService)(nil)

func NewOpenRouterService(apiKey, baseURL string) (*OpenRouterService, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("openrouter API key cannot be empty")
	}
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json")

	return &OpenRouterService{
		client: client,
		logger: slog.Default().With("provider", "openrouter"),
	}, nil
}

func (s *OpenRouterService) ListModels(ctx context.Context) ([]string, error) {
	resp, err := s.client.R().SetContext(ctx).Get("/models")
	if err != nil {
		return nil, fmt.Errorf("list models failed: %w", err)
	}
	if err := responseError(resp); err != nil {
		return nil, fmt.Errorf("list models failed: %w", err)
	}

	ids := gjson.GetBytes(resp.Body(), "data.#.id").Array()
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, id.String())
	}

	s.logger.DebugContext(ctx, "listed models", "count", len(names))
	return names, nil
}

func (s *OpenRouterService) GenerateContent(ctx context.Context, model string, prompt string) (string, error) {
	if model == "" {
		return "", fmt.Errorf("model name cannot be empty")
	}
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"model": model,
			"messages": []map[string]string{
				{"role": "user", "content": prompt},
			},
		}).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("generate content failed: %w", err)
	}
	if err := responseError(resp); err != nil {
		return "", fmt.Errorf("generate content failed: %w", err)
	}

	content := gjson.GetBytes(resp.Body(), "choices.0.message.content")
	if !content.Exists() {
		return "", fmt.Errorf("invalid response: no choices in response")
	}
	if content.Type == gjson.Null {
		return "", fmt.Errorf("invalid response: empty message content")
	}
	return content.String(), nil
}

// responseError turns HTTP failures and in-body error objects into an error.
func responseError(resp *resty.Response) error {
	msg := gjson.GetBytes(resp.Body(), "error.message")
	if resp.IsError() {
		if msg.Exists() {
			return fmt.Errorf("status %d: %s", resp.StatusCode(), msg.String())
		}
		return fmt.Errorf("status %d: %s", resp.StatusCode(), strings.TrimSpace(resp.String()))
	}
	if msg.Exists() {
		return fmt.Errorf("%s", msg.String())
	}
	return nil
}
