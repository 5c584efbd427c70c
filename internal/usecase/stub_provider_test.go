package usecase

import (
	"context"
	"errors"
	"sync"
)

// stubProvider is an in-memory completion provider. With echo set it replies
// with the prompt it received.
type stubProvider struct {
	mu        sync.Mutex
	models    []string
	listErr   error
	genErrs   []error
	echo      bool
	reply     string
	prompts   []string
	listCalls int
}

func (s *stubProvider) ListModels(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listCalls++
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.models, nil
}

// GenerateContent pops the next queued error, if any, before answering.
func (s *stubProvider) GenerateContent(ctx context.Context, model string, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompts = append(s.prompts, prompt)
	if len(s.genErrs) > 0 {
		err := s.genErrs[0]
		s.genErrs = s.genErrs[1:]
		if err != nil {
			return "", err
		}
	}
	if s.echo {
		return prompt, nil
	}
	return s.reply, nil
}

var errQuota = errors.New("429 RESOURCE_EXHAUSTED: quota exceeded")
