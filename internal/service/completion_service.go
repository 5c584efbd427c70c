// Package service holds the clients for hosted completion providers.
package service

import "context"

// CompletionServiceInterface is a hosted completion provider: it can list the
// models available to the credential and generate text from a single prompt.
type CompletionServiceInterface interface {
	// ListModels returns model names in the provider's listing order.
	ListModels(ctx context.Context) ([]string, error)
	// GenerateContent returns the provider's response text verbatim.
	GenerateContent(ctx context.Context, model string, prompt string) (string, error)
}
