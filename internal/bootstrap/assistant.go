// Package bootstrap wires configuration, provider and usecase into a ready assistant.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/sharath/resume-assistant/internal/config"
	"github.com/sharath/resume-assistant/internal/service"
	"github.com/sharath/resume-assistant/internal/usecase"
)

// ProviderFactory picks the completion service named by cfg.Provider.
func ProviderFactory(cfg *config.AssistantConfig, openRouter *config.OpenRouterConfig) usecase.ProviderFactory {
	return func(ctx context.Context, credential string) (service.CompletionServiceInterface, error) {
		switch cfg.Provider {
		case config.ProviderGemini:
			return service.NewGeminiService(ctx, service.GeminiServiceConfig{APIKey: credential})
		case config.ProviderOpenRouter:
			return service.NewOpenRouterService(credential, openRouter.BaseURL)
		default:
			return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
		}
	}
}

// NewAssistant runs startup resolution against the configured provider.
func NewAssistant(ctx context.Context, cfg *config.AssistantConfig, openRouter *config.OpenRouterConfig) (*usecase.AssistantUsecase, error) {
	envKey, err := cfg.CredentialEnv()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", usecase.ErrConfiguration, err)
	}
	credential, err := cfg.Credential()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", usecase.ErrConfiguration, err)
	}

	return usecase.Bootstrap(ctx, usecase.StartupOptions{
		Credential:    credential,
		CredentialEnv: envKey,
		ResumePath:    cfg.ResumePath,
		SubjectName:   cfg.SubjectName,
	}, ProviderFactory(cfg, openRouter))
}
