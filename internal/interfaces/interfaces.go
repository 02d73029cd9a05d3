package interfaces

import (
	"context"

	"realty-flow/backend/internal/assistant"
	"realty-flow/backend/internal/llm"
)

// This file defines the interface for the core service.
// Depending on this interface, instead of the concrete implementation, allows
// for decoupling the API layer from the service layer and easier testing via
// mocking.

// AssistantService defines the contract for the three supported intents.
type AssistantService interface {
	Chat(ctx context.Context, message string, history []llm.Message) (string, error)
	OrganizeTask(ctx context.Context, task string) (*assistant.StructuredResult, error)
	ScheduleMeeting(ctx context.Context, details string) (*assistant.StructuredResult, error)
}
