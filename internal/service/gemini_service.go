package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"
)

// GeminiServiceConfig configures the Gemini client. BaseURL is empty in production.
type GeminiServiceConfig struct {
	APIKey  string
	BaseURL string
}

type GeminiService struct {
	Client *genai.Client
	logger *slog.Logger
}

var _ CompletionServiceInterface = (*GeminiService)(nil)

func NewGeminiService(ctx context.Context, cfg GeminiServiceConfig) (*GeminiService, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("gemini API key cannot be empty")
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiService{
		Client: client,
		logger: slog.Default().With("provider", "gemini"),
	}, nil
}

// ListModels walks every page of the model listing and keeps the server's order.
func (s *GeminiService) ListModels(ctx context.Context) ([]string, error) {
	page, err := s.Client.Models.List(ctx, &genai.ListModelsConfig{})
	if err != nil {
		return nil, fmt.Errorf("list models failed: %w", err)
	}

	var names []string
	for {
		for _, m := range page.Items {
			if m != nil {
				names = append(names, m.Name)
			}
		}

		page, err = page.Next(ctx)
		if errors.Is(err, genai.ErrPageDone) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list models failed: %w", err)
		}
	}

	s.logger.DebugContext(ctx, "listed models", "count", len(names))
	return names, nil
}

func (s *GeminiService) GenerateContent(ctx context.Context, model string, prompt string) (string, error) {
	if model == "" {
		return "", fmt.Errorf("model name cannot be empty")
	}
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	result, err := s.Client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content failed: %w", err)
	}
	if err := validateGenerateResponse(result); err != nil {
		return "", fmt.Errorf("invalid response: %w", err)
	}

	return result.Text(), nil
}

func validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}
	if len(resp.Candidates) == 0 {
		return fmt.Errorf("no candidates in response")
	}
	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil")
	}
	return nil
}
