package usecase

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/sharath/resume-assistant/internal/service"
	"github.com/sharath/resume-assistant/internal/util"
)

// ModelMarker is matched case-insensitively against model names during resolution.
const ModelMarker = "gemini"

// Profile holds the values resolved once at startup. Fields are unexported so
// nothing can change them after Bootstrap returns.
type Profile struct {
	credential string
	resume     string
	model      string
	subject    string
}

func NewProfile(credential, resume, model, subject string) *Profile {
	return &Profile{credential: credential, resume: resume, model: model, subject: subject}
}

func (p *Profile) Credential() string { return p.credential }
func (p *Profile) Resume() string     { return p.resume }
func (p *Profile) Model() string      { return p.model }
func (p *Profile) Subject() string    { return p.subject }

// ProviderFactory builds the completion provider once the credential is known.
type ProviderFactory func(ctx context.Context, credential string) (service.CompletionServiceInterface, error)

type StartupOptions struct {
	Credential    string
	CredentialEnv string
	ResumePath    string
	SubjectName   string
}

// Bootstrap resolves the credential, the résumé and the model, in that order,
// and returns a ready AssistantUsecase. The first failure is returned as is;
// nothing is retried.
func Bootstrap(ctx context.Context, opts StartupOptions, newProvider ProviderFactory) (*AssistantUsecase, error) {
	credential, err := RequireCredential(opts.Credential, opts.CredentialEnv)
	if err != nil {
		return nil, err
	}

	subject := strings.TrimSpace(opts.SubjectName)
	if subject == "" {
		return nil, fmt.Errorf("%w: subject name cannot be empty", ErrConfiguration)
	}

	resume, err := LoadResume(opts.ResumePath)
	if err != nil {
		return nil, err
	}

	provider, err := newProvider(ctx, credential)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to initialize provider: %w", ErrConfiguration, err)
	}

	model, err := ResolveModel(ctx, provider)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "assistant ready",
		"model", model,
		"resume_path", opts.ResumePath,
		"resume_chars", len(resume),
		"subject", subject)

	return NewAssistantUsecase(NewProfile(credential, resume, model, subject), provider), nil
}

func RequireCredential(credential, envKey string) (string, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		if envKey == "" {
			envKey = "API key"
		}
		return "", fmt.Errorf("%w: %s not found, please check your .env file", ErrConfiguration, envKey)
	}
	return credential, nil
}

// LoadResume reads the résumé document. Plain text is returned byte for byte;
// a .pdf path has its page text extracted.
func LoadResume(path string) (string, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s file not found", ErrResourceNotFound, path)
	}
	if err != nil {
		return "", fmt.Errorf("%w: cannot read %s: %w", ErrResourceNotFound, path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrResourceNotFound, path)
	}

	var text string
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		text, err = util.ExtractPDFText(path)
	} else {
		var raw []byte
		raw, err = os.ReadFile(path)
		text = string(raw)
	}
	if err != nil {
		return "", fmt.Errorf("%w: cannot read %s: %w", ErrResourceNotFound, path, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: %s is empty", ErrResourceNotFound, path)
	}
	return text, nil
}

// SelectModel returns the first name, in listing order, containing ModelMarker.
func SelectModel(names []string) (string, bool) {
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), ModelMarker) {
			return name, true
		}
	}
	return "", false
}

func ResolveModel(ctx context.Context, provider service.CompletionServiceInterface) (string, error) {
	names, err := provider.ListModels(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: model detection failed: %w", ErrProvider, err)
	}

	model, ok := SelectModel(names)
	if !ok {
		return "", fmt.Errorf("%w: no %s model available for this API key (%d models listed)",
			ErrNoModelAvailable, ModelMarker, len(names))
	}
	return model, nil
}
