package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/sharath/resume-assistant/internal/model"
	"github.com/sharath/resume-assistant/internal/service"
)

// AssistantUsecase answers questions about one résumé. It holds no mutable
// state, so concurrent calls to Answer are independent.
type AssistantUsecase struct {
	profile *Profile
	llm     service.CompletionServiceInterface
	logger  *slog.Logger
}

func NewAssistantUsecase(profile *Profile, llm service.CompletionServiceInterface) *AssistantUsecase {
	return &AssistantUsecase{
		profile: profile,
		llm:     llm,
		logger:  slog.Default().With("component", "assistant"),
	}
}

func (uc *AssistantUsecase) Profile() *Profile {
	return uc.profile
}

// Answer sends one prompt to the provider. A provider failure comes back in
// Answer.Err wrapping ErrGeneration; it does not affect later calls.
func (uc *AssistantUsecase) Answer(ctx context.Context, question string) model.Answer {
	query := model.NewQuery(question, BuildPrompt(uc.profile.Subject(), uc.profile.Resume(), question))
	answer := model.Answer{QueryID: query.ID, Model: uc.profile.Model()}

	start := time.Now()
	text, err := uc.llm.GenerateContent(ctx, uc.profile.Model(), query.Prompt)
	if err != nil {
		answer.Err = &GenerationError{Err: err}
		uc.logger.ErrorContext(ctx, "generation failed",
			"query_id", query.ID.String(),
			"model", answer.Model,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err)
		return answer
	}

	answer.Text = text
	uc.logger.InfoContext(ctx, "question answered",
		"query_id", query.ID.String(),
		"model", answer.Model,
		"question_chars", len(question),
		"answer_chars", len(text),
		"duration_ms", time.Since(start).Milliseconds())
	return answer
}
