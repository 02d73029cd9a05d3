package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realty-flow/backend/internal/config"
)

func TestNewApp(t *testing.T) {
	cfg := &config.Config{
		AppPort:       5000,
		OpenAIAPIKey:  "sk-test",
		OpenAIBaseURL: "https://api.openai.com/v1",
		OpenAIModel:   "gpt-3.5-turbo",
		StaticDir:     t.TempDir(),
		LogLevel:      "DEBUG",
	}

	app := NewApp(cfg)

	require.NotNil(t, app)
	require.NotNil(t, app.Server)
	assert.Equal(t, ":5000", app.Server.Addr)
	assert.NotNil(t, app.Server.Handler)
}

// The application must wire successfully without a credential; degradation is
// handled per request, not at startup.
func TestNewApp_WithoutCredential(t *testing.T) {
	cfg := &config.Config{
		AppPort:       5000,
		OpenAIBaseURL: "https://api.openai.com/v1",
		OpenAIModel:   "gpt-3.5-turbo",
		StaticDir:     t.TempDir(),
	}

	app := NewApp(cfg)

	require.NotNil(t, app)
	assert.NotNil(t, app.Server)
}
