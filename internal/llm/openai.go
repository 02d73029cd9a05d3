package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	app_errors "realty-flow/backend/internal/errors"
)

// Message roles accepted by the chat completions API. History entries arriving
// from clients with any other role tag are coerced before they reach this package.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single role-tagged turn in a chat completion request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest is the chat completions request body. Model, token budget
// and temperature are policy constants chosen per intent by the caller, never
// user-controlled.
type CompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

// CompletionProvider defines the interface for issuing a single chat
// completion call. Exactly one attempt per call: no retry, no backoff,
// no streaming.
type CompletionProvider interface {
	Complete(ctx context.Context, req *CompletionRequest) (string, error)
}

type openaiProvider struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewOpenAIProvider returns a CompletionProvider backed by an OpenAI-compatible
// chat completions endpoint. The credential is captured here once; no global
// key state exists anywhere else.
func NewOpenAIProvider(baseURL, apiKey string) CompletionProvider {
	return &openaiProvider{
		client:  &http.Client{},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

type completionChoice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

type completionResponse struct {
	ID      string             `json:"id"`
	Model   string             `json:"model"`
	Choices []completionChoice `json:"choices"`
}

// errorEnvelope is the error body shape returned by the OpenAI API.
type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// Complete issues one POST to /chat/completions and returns the first choice's
// message content. Upstream failures are classified into the application's
// sentinel errors with the upstream message preserved for diagnostics.
func (p *openaiProvider) Complete(ctx context.Context, req *CompletionRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("%w: could not marshal completion request: %v", app_errors.ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("%w: could not create http request: %v", app_errors.ErrInternal, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %v", app_errors.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: could not read response body: %v", app_errors.ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", classifyStatus(resp.StatusCode, bodyBytes)
	}

	var completion completionResponse
	if err := json.Unmarshal(bodyBytes, &completion); err != nil {
		return "", fmt.Errorf("%w: could not decode response: %v", app_errors.ErrUpstream, err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("%w: response contained no choices", app_errors.ErrUpstream)
	}

	return completion.Choices[0].Message.Content, nil
}

// classifyStatus maps an upstream HTTP status to the application's error
// taxonomy, carrying the upstream's own message text through.
func classifyStatus(status int, body []byte) error {
	message := upstreamMessage(body)

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", app_errors.ErrAuthentication, message)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", app_errors.ErrRateLimited, message)
	default:
		return fmt.Errorf("%w: status %d: %s", app_errors.ErrUpstream, status, message)
	}
}

func upstreamMessage(body []byte) string {
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}
	return string(body)
}
