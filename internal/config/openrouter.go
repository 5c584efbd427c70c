package config

import (
	"sync"
)

const (
	OpenRouterAPIKeyEnv      = "OPENROUTER_API_KEY"
	DefaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
)

// OpenRouterConfig carries endpoint settings only; the key is read through AssistantConfig.
type OpenRouterConfig struct {
	BaseURL string
}

var (
	openRouterConfig *OpenRouterConfig
	openRouterOnce   sync.Once
)

func LoadOpenRouterConfig() *OpenRouterConfig {
	openRouterOnce.Do(func() {
		openRouterConfig = &OpenRouterConfig{
			BaseURL: getenvDefault("OPENROUTER_BASE_URL", DefaultOpenRouterBaseURL),
		}
	})
	return openRouterConfig
}
