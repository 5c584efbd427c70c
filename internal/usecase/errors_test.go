package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{fmt.Errorf("%w: missing", ErrConfiguration), KindConfiguration},
		{fmt.Errorf("%w: missing", ErrResourceNotFound), KindResourceNotFound},
		{fmt.Errorf("%w: down", ErrProvider), KindProvider},
		{fmt.Errorf("%w: none", ErrNoModelAvailable), KindNoModelAvailable},
		{fmt.Errorf("%w: boom", ErrGeneration), KindGeneration},
		{errors.New("other"), KindUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, KindOf(tt.err))
	}
}

func TestIsFatal(t *testing.T) {
	assert.False(t, IsFatal(nil))
	assert.False(t, IsFatal(fmt.Errorf("%w: boom", ErrGeneration)))
	assert.True(t, IsFatal(fmt.Errorf("%w: none", ErrNoModelAvailable)))
	assert.True(t, IsFatal(errors.New("other")))
}

func TestGenerationError(t *testing.T) {
	cause := errors.New("503 UNAVAILABLE")
	err := error(&GenerationError{Err: cause})

	assert.ErrorIs(t, err, ErrGeneration)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "generation error: 503 UNAVAILABLE", err.Error())
	assert.Equal(t, "Generation error: 503 UNAVAILABLE", DisplayMessage(err))
	assert.Equal(t, KindGeneration, KindOf(err))
}

func TestDisplayMessageOtherErrors(t *testing.T) {
	err := fmt.Errorf("%w: resume.txt file not found", ErrResourceNotFound)
	assert.Equal(t, "resource not found: resume.txt file not found", DisplayMessage(err))
}
