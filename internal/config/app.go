package config

import (
	"log/slog"
	"os"
	"sync"
)

type AppConfig struct {
	Name     string
	Env      string
	Port     string
	LogLevel string
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		appConfig = newAppConfig()
	})
	return appConfig
}

func newAppConfig() *AppConfig {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
		slog.Warn("APP_ENV not set, using default", "env", env)
	}
	return &AppConfig{
		Name:     getenvDefault("APP_NAME", "Resume Assistant"),
		Env:      env,
		Port:     getenvDefault("APP_PORT", ":8080"),
		LogLevel: getenvDefault("LOG_LEVEL", "info"),
	}
}

// IsProduction reports whether dev-only details (stack traces, raw errors) must be hidden.
func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
