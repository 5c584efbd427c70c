// Command ask is a terminal front-end: one question per line on stdin, one
// answer per question on stdout.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"

	"github.com/sharath/resume-assistant/internal/bootstrap"
	"github.com/sharath/resume-assistant/internal/config"
	applog "github.com/sharath/resume-assistant/internal/logger"
	"github.com/sharath/resume-assistant/internal/usecase"
)

func main() {
	envErr := godotenv.Load()

	// Logs go to stderr so stdout only carries answers.
	logger := applog.New(os.Stderr, config.LoadAppConfig().LogLevel)
	logDotenvError(logger, envErr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	assistantConfig := config.LoadAssistantConfig()
	assistant, err := bootstrap.NewAssistant(ctx, assistantConfig, config.LoadOpenRouterConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		slog.Debug("startup failed", "kind", usecase.KindOf(err))
		os.Exit(1)
	}

	fmt.Printf("Chat with %s AI (model %s). Ask anything about %s's education, projects, and experience.\n",
		assistantConfig.SubjectName, assistant.Profile().Model(), assistantConfig.SubjectName)
	if err := repl(ctx, assistant, os.Stdin, os.Stdout, assistantConfig.SubjectName); err != nil {
		fmt.Fprintf(os.Stderr, "read error: %s\n", err)
		os.Exit(1)
	}
}

// logDotenvError reports a missing or malformed .env once the logger exists.
func logDotenvError(logger *slog.Logger, err error) {
	if err != nil {
		logger.Warn("Could not load .env file, using process environment", "error", err)
	}
}

func repl(ctx context.Context, assistant *usecase.AssistantUsecase, in io.Reader, out io.Writer, subject string) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	prompt := func() { fmt.Fprintf(out, "Ask about %s: ", subject) }
	prompt()
	for scanner.Scan() {
		question := scanner.Text()
		if strings.TrimSpace(question) == "" {
			prompt()
			continue
		}

		answer := assistant.Answer(ctx, question)
		if answer.Failed() {
			fmt.Fprintln(out, usecase.DisplayMessage(answer.Err))
		} else {
			fmt.Fprintf(out, "Answer:\n%s\n", answer.Text)
		}
		if ctx.Err() != nil {
			return nil
		}
		prompt()
	}
	return scanner.Err()
}
