package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"realty-flow/backend/internal/config"
	app_errors "realty-flow/backend/internal/errors"
	"realty-flow/backend/internal/llm"
)

// Completion parameters are policy constants per intent, never user-controlled.
// Chat favors a conversational temperature; the structured intents run cooler
// so the model sticks to the requested JSON shape.
const (
	chatMaxTokens   = 500
	chatTemperature = 0.7

	taskMaxTokens   = 800
	taskTemperature = 0.3

	meetingMaxTokens   = 600
	meetingTemperature = 0.3
)

// Service implements the request pipeline shared by all three intents:
// assemble the role-tagged message list, issue a single completion call, and
// (for the structured intents) coerce the raw text into the response shape.
// It holds no per-request state; concurrent requests proceed independently.
type Service struct {
	provider llm.CompletionProvider
	cfg      *config.Config
	now      func() time.Time
}

func NewService(provider llm.CompletionProvider, cfg *config.Config) *Service {
	return &Service{
		provider: provider,
		cfg:      cfg,
		now:      time.Now,
	}
}

// Chat forwards a free-text message, with up to the ten most recent history
// turns, to the completion service and returns the model's reply verbatim.
func (s *Service) Chat(ctx context.Context, message string, history []llm.Message) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", fmt.Errorf("%w: message is required", app_errors.ErrValidation)
	}
	if err := s.requireCredential(); err != nil {
		return "", err
	}

	messages := assembleChat(message, history, s.now())
	return s.complete(ctx, "chat", messages, chatMaxTokens, chatTemperature)
}

// OrganizeTask asks the model to break a task description into actionable
// steps and coerces the reply into the task-plan response shape.
func (s *Service) OrganizeTask(ctx context.Context, task string) (*StructuredResult, error) {
	if strings.TrimSpace(task) == "" {
		return nil, fmt.Errorf("%w: task description is required", app_errors.ErrValidation)
	}
	if err := s.requireCredential(); err != nil {
		return nil, err
	}

	messages := assembleTask(task, s.now())
	raw, err := s.complete(ctx, "organize-task", messages, taskMaxTokens, taskTemperature)
	if err != nil {
		return nil, err
	}
	return coerceTaskPlan(raw), nil
}

// ScheduleMeeting asks the model to plan a meeting from its description and
// coerces the reply into the meeting-plan response shape.
func (s *Service) ScheduleMeeting(ctx context.Context, details string) (*StructuredResult, error) {
	if strings.TrimSpace(details) == "" {
		return nil, fmt.Errorf("%w: meeting details are required", app_errors.ErrValidation)
	}
	if err := s.requireCredential(); err != nil {
		return nil, err
	}

	messages := assembleMeeting(details, s.now())
	raw, err := s.complete(ctx, "schedule-meeting", messages, meetingMaxTokens, meetingTemperature)
	if err != nil {
		return nil, err
	}
	return coerceMeetingPlan(raw), nil
}

// requireCredential rejects completion-dependent work before any network I/O
// when the OpenAI key is absent.
func (s *Service) requireCredential() error {
	if !s.cfg.OpenAIConfigured() {
		return app_errors.ErrNotConfigured
	}
	return nil
}

// complete issues exactly one completion call and logs it with a generated
// call ID for correlation. No retry at this or any other layer.
func (s *Service) complete(ctx context.Context, intent string, messages []llm.Message, maxTokens int, temperature float64) (string, error) {
	callID := uuid.NewString()
	start := time.Now()

	slog.Debug("Issuing completion call",
		"call_id", callID,
		"intent", intent,
		"model", s.cfg.OpenAIModel,
		"messages", len(messages),
	)

	text, err := s.provider.Complete(ctx, &llm.CompletionRequest{
		Model:       s.cfg.OpenAIModel,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		slog.Warn("Completion call failed",
			"call_id", callID,
			"intent", intent,
			"duration", time.Since(start),
			"error", err,
		)
		return "", err
	}

	slog.Info("Completion call succeeded",
		"call_id", callID,
		"intent", intent,
		"duration", time.Since(start),
	)
	return text, nil
}
