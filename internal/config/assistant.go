package config

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

const (
	// GeminiAPIKeyEnv is the designated secret key holding the Gemini credential.
	GeminiAPIKeyEnv = "GEMINI_API_KEY"

	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"

	DefaultResumePath  = "resume.txt"
	DefaultSubjectName = "Sharath"
)

// AssistantConfig selects the completion provider and the résumé the assistant answers from.
type AssistantConfig struct {
	Provider    string
	ResumePath  string
	SubjectName string
}

var (
	assistantConfig *AssistantConfig
	assistantOnce   sync.Once
)

func LoadAssistantConfig() *AssistantConfig {
	assistantOnce.Do(func() {
		assistantConfig = newAssistantConfig()
	})
	return assistantConfig
}

func newAssistantConfig() *AssistantConfig {
	return &AssistantConfig{
		Provider:    strings.ToLower(strings.TrimSpace(getenvDefault("LLM_PROVIDER", ProviderGemini))),
		ResumePath:  getenvDefault("RESUME_PATH", DefaultResumePath),
		SubjectName: getenvDefault("SUBJECT_NAME", DefaultSubjectName),
	}
}

// CredentialEnv returns the environment key that holds the credential for the provider.
func (c *AssistantConfig) CredentialEnv() (string, error) {
	switch c.Provider {
	case ProviderGemini:
		return GeminiAPIKeyEnv, nil
	case ProviderOpenRouter:
		return OpenRouterAPIKeyEnv, nil
	default:
		return "", fmt.Errorf("unknown LLM_PROVIDER %q", c.Provider)
	}
}

// Credential reads the provider credential straight from the environment.
func (c *AssistantConfig) Credential() (string, error) {
	key, err := c.CredentialEnv()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(os.Getenv(key)), nil
}
