// The `_test` suffix creates a "black box" test package: only the assistant
// package's exported surface is exercised here, with the completion provider
// mocked out.
package assistant_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"realty-flow/backend/internal/assistant"
	"realty-flow/backend/internal/config"
	app_errors "realty-flow/backend/internal/errors"
	"realty-flow/backend/internal/llm"
	"realty-flow/backend/internal/llm/mocks"
)

func setupService(t *testing.T) (*assistant.Service, *mocks.MockCompletionProvider) {
	mockProvider := mocks.NewMockCompletionProvider(t)
	cfg := &config.Config{
		OpenAIAPIKey: "sk-test",
		OpenAIModel:  "gpt-3.5-turbo",
	}
	return assistant.NewService(mockProvider, cfg), mockProvider
}

// expectComplete registers a Complete expectation that captures the outbound
// request for later assertions.
func expectComplete(mockProvider *mocks.MockCompletionProvider, reply string, captured **llm.CompletionRequest) {
	mockProvider.On("Complete", mock.Anything, mock.AnythingOfType("*llm.CompletionRequest")).
		Run(func(args mock.Arguments) {
			*captured = args.Get(1).(*llm.CompletionRequest)
		}).
		Return(reply, nil).Once()
}

func TestService_Chat(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - no history sends exactly system and user turns", func(t *testing.T) {
		svc, mockProvider := setupService(t)
		var captured *llm.CompletionRequest
		expectComplete(mockProvider, "Hi there", &captured)

		response, err := svc.Chat(ctx, "Hello", nil)

		require.NoError(t, err)
		assert.Equal(t, "Hi there", response)

		require.NotNil(t, captured)
		assert.Equal(t, "gpt-3.5-turbo", captured.Model)
		assert.Equal(t, 500, captured.MaxTokens)
		assert.InDelta(t, 0.7, captured.Temperature, 1e-9)
		require.Len(t, captured.Messages, 2)
		assert.Equal(t, llm.RoleSystem, captured.Messages[0].Role)
		assert.Equal(t, llm.RoleUser, captured.Messages[1].Role)
		assert.Equal(t, "Hello", captured.Messages[1].Content)
	})

	t.Run("Success - long history truncated to the last ten turns", func(t *testing.T) {
		svc, mockProvider := setupService(t)
		var captured *llm.CompletionRequest
		expectComplete(mockProvider, "ok", &captured)

		history := make([]llm.Message, 25)
		for i := range history {
			history[i] = llm.Message{Role: llm.RoleUser, Content: fmt.Sprintf("turn-%d", i)}
		}

		_, err := svc.Chat(ctx, "latest", history)
		require.NoError(t, err)

		require.Len(t, captured.Messages, 12)
		assert.Equal(t, "turn-15", captured.Messages[1].Content)
		assert.Equal(t, "turn-24", captured.Messages[10].Content)
		assert.Equal(t, "latest", captured.Messages[11].Content)
	})

	t.Run("Failure - empty message rejected before any network call", func(t *testing.T) {
		svc, mockProvider := setupService(t)

		_, err := svc.Chat(ctx, "   ", nil)

		assert.ErrorIs(t, err, app_errors.ErrValidation)
		mockProvider.AssertNotCalled(t, "Complete")
	})

	t.Run("Failure - missing credential rejected before any network call", func(t *testing.T) {
		mockProvider := mocks.NewMockCompletionProvider(t)
		svc := assistant.NewService(mockProvider, &config.Config{OpenAIModel: "gpt-3.5-turbo"})

		_, err := svc.Chat(ctx, "Hello", nil)

		assert.ErrorIs(t, err, app_errors.ErrNotConfigured)
		mockProvider.AssertNotCalled(t, "Complete")
	})

	t.Run("Failure - provider error propagates unchanged", func(t *testing.T) {
		svc, mockProvider := setupService(t)
		upstreamErr := fmt.Errorf("%w: Incorrect API key provided", app_errors.ErrAuthentication)
		mockProvider.On("Complete", mock.Anything, mock.Anything).Return("", upstreamErr).Once()

		_, err := svc.Chat(ctx, "Hello", nil)

		assert.ErrorIs(t, err, app_errors.ErrAuthentication)
	})
}

func TestService_OrganizeTask(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - model JSON passed through", func(t *testing.T) {
		svc, mockProvider := setupService(t)
		var captured *llm.CompletionRequest
		expectComplete(mockProvider, `{"title": "Open house", "priority": "High"}`, &captured)

		result, err := svc.OrganizeTask(ctx, "Prepare the open house")

		require.NoError(t, err)
		assert.False(t, result.Fallback)
		assert.Equal(t, "Open house", result.Fields["title"])

		assert.Equal(t, 800, captured.MaxTokens)
		assert.InDelta(t, 0.3, captured.Temperature, 1e-9)
		require.Len(t, captured.Messages, 2)
		assert.Contains(t, captured.Messages[1].Content, "Prepare the open house")
	})

	t.Run("Success - unparsable reply degrades to the fallback plan", func(t *testing.T) {
		svc, mockProvider := setupService(t)
		var captured *llm.CompletionRequest
		expectComplete(mockProvider, "not json", &captured)

		result, err := svc.OrganizeTask(ctx, "List a 3-bedroom house")

		require.NoError(t, err)
		require.True(t, result.Fallback)
		assert.Equal(t, "Task Organization", result.Fields["title"])
		assert.Equal(t, "Medium", result.Fields["priority"])
		assert.Equal(t, "not json", result.Fields["description"])
	})

	t.Run("Failure - empty task rejected before any network call", func(t *testing.T) {
		svc, mockProvider := setupService(t)

		_, err := svc.OrganizeTask(ctx, "")

		assert.ErrorIs(t, err, app_errors.ErrValidation)
		mockProvider.AssertNotCalled(t, "Complete")
	})
}

func TestService_ScheduleMeeting(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - uses meeting completion parameters", func(t *testing.T) {
		svc, mockProvider := setupService(t)
		var captured *llm.CompletionRequest
		expectComplete(mockProvider, `{"title": "Listing sync"}`, &captured)

		result, err := svc.ScheduleMeeting(ctx, "Weekly sync with agents")

		require.NoError(t, err)
		assert.False(t, result.Fallback)
		assert.Equal(t, 600, captured.MaxTokens)
		assert.InDelta(t, 0.3, captured.Temperature, 1e-9)
	})

	t.Run("Success - fallback carries the raw reply in details", func(t *testing.T) {
		svc, mockProvider := setupService(t)
		var captured *llm.CompletionRequest
		expectComplete(mockProvider, "here's a loose agenda", &captured)

		result, err := svc.ScheduleMeeting(ctx, "Weekly sync")

		require.NoError(t, err)
		require.True(t, result.Fallback)
		assert.Equal(t, "Meeting Planning", result.Fields["title"])
		assert.Equal(t, "here's a loose agenda", result.Fields["details"])
	})

	t.Run("Failure - empty details rejected before any network call", func(t *testing.T) {
		svc, mockProvider := setupService(t)

		_, err := svc.ScheduleMeeting(ctx, "  ")

		assert.ErrorIs(t, err, app_errors.ErrValidation)
		mockProvider.AssertNotCalled(t, "Complete")
	})
}
