package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"github.com/sharath/resume-assistant/internal/bootstrap"
	"github.com/sharath/resume-assistant/internal/config"
	"github.com/sharath/resume-assistant/internal/domain/fiber/handler"
	applog "github.com/sharath/resume-assistant/internal/logger"
	"github.com/sharath/resume-assistant/internal/usecase"
	"github.com/sharath/resume-assistant/internal/util"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("Could not load .env file, using process environment")
	}

	appConfig := config.LoadAppConfig()
	applog.Setup(appConfig.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	assistant, err := bootstrap.NewAssistant(ctx, config.LoadAssistantConfig(), config.LoadOpenRouterConfig())
	if err != nil {
		slog.Error("startup failed", "kind", usecase.KindOf(err), "error", err)
		os.Exit(1)
	}

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}
			return util.ErrorResponse(c, util.ErrorResponseFormat{Code: code, Message: message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !appConfig.IsProduction(),
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	h, err := handler.NewAssistantHandler(assistant)
	if err != nil {
		slog.Error("failed to build handler", "error", err)
		os.Exit(1)
	}
	h.RegisterRoutes(app)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			slog.Error("shutdown failed", "error", err)
		}
	}()

	slog.Info("server running", "port", appConfig.Port, "model", assistant.Profile().Model())
	if err := app.Listen(appConfig.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
