package app

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"realty-flow/backend/internal/api"
	"realty-flow/backend/internal/assistant"
	"realty-flow/backend/internal/config"
	"realty-flow/backend/internal/llm"
)

// App bundles the wired HTTP server so tests can construct the application
// without starting it.
type App struct {
	Server *http.Server
}

// NewApp wires the dependency chain: config → completion provider →
// assistant service → handlers → router → server.
func NewApp(cfg *config.Config) *App {
	provider := llm.NewOpenAIProvider(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey)
	assistantService := assistant.NewService(provider, cfg)
	assistantHandler := api.NewAssistantHandler(assistantService, cfg)
	router := api.NewRouter(assistantHandler, cfg.StaticDir)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &App{Server: server}
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	setupLogger(cfg.LogLevel)

	logConfigSource()

	if !cfg.OpenAIConfigured() {
		// Absence of the credential is a degraded state, not a startup failure:
		// the server runs, health reports it, and completion endpoints refuse work.
		slog.Warn("OPENAI_API_KEY is not set; assistant endpoints will return a configuration error")
	}

	app := NewApp(cfg)

	slog.Info("Starting server", "port", cfg.AppPort, "model", cfg.OpenAIModel)
	if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		return 1
	}

	return 0
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
