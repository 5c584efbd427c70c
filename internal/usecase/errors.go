package usecase

import "errors"

var (
	// ErrConfiguration is returned when the provider credential is missing or unusable.
	ErrConfiguration = errors.New("configuration error")

	// ErrResourceNotFound is returned when the résumé document cannot be read.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrProvider is returned when the model listing call fails.
	ErrProvider = errors.New("provider error")

	// ErrNoModelAvailable is returned when the listing has no qualifying model.
	ErrNoModelAvailable = errors.New("no model available")

	// ErrGeneration is returned when a single completion call fails. It is never fatal.
	ErrGeneration = errors.New("generation error")
)

// GenerationError wraps a failed completion call. It matches both ErrGeneration
// and the provider error under errors.Is.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return ErrGeneration.Error() + ": " + e.Err.Error()
}

func (e *GenerationError) Unwrap() []error {
	return []error{ErrGeneration, e.Err}
}

// DisplayMessage renders err for the person who asked the question.
func DisplayMessage(err error) string {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return "Generation error: " + genErr.Err.Error()
	}
	return err.Error()
}

// Error kinds as rendered to users and logs.
const (
	KindConfiguration    = "configuration_error"
	KindResourceNotFound = "resource_not_found"
	KindProvider         = "provider_error"
	KindNoModelAvailable = "no_model_available"
	KindGeneration       = "generation_error"
	KindUnknown          = "unknown_error"
)

// KindOf classifies err by the sentinel it wraps.
func KindOf(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrConfiguration):
		return KindConfiguration
	case errors.Is(err, ErrResourceNotFound):
		return KindResourceNotFound
	case errors.Is(err, ErrProvider):
		return KindProvider
	case errors.Is(err, ErrNoModelAvailable):
		return KindNoModelAvailable
	case errors.Is(err, ErrGeneration):
		return KindGeneration
	default:
		return KindUnknown
	}
}

// IsFatal reports whether err must stop the process at startup.
func IsFatal(err error) bool {
	return err != nil && !errors.Is(err, ErrGeneration)
}
