package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"realty-flow/backend/internal/config"
	app_errors "realty-flow/backend/internal/errors"
	"realty-flow/backend/internal/interfaces"
	"realty-flow/backend/internal/llm"
)

// AssistantHandler exposes the three assistant intents plus the health probe.
type AssistantHandler struct {
	service interfaces.AssistantService
	cfg     *config.Config
}

func NewAssistantHandler(svc interfaces.AssistantService, cfg *config.Config) *AssistantHandler {
	return &AssistantHandler{service: svc, cfg: cfg}
}

// ChatTurn is one caller-supplied history entry. Both fields are optional on
// the wire: a missing role defaults to "user" and missing content to "".
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message string     `json:"message" validate:"required" example:"Find me a 3-bedroom house"`
	History []ChatTurn `json:"history"`
}

// OrganizeTaskRequest is the body of POST /api/organize-task. Older clients
// send the description under "details" instead of "task"; either is accepted.
type OrganizeTaskRequest struct {
	Task    string `json:"task" validate:"required_without=Details" example:"Prepare the open house"`
	Details string `json:"details"`
}

// ScheduleMeetingRequest is the body of POST /api/schedule-meeting. Older
// clients send the description under "meeting" instead of "details".
type ScheduleMeetingRequest struct {
	Details string `json:"details" validate:"required_without=Meeting" example:"Quarterly review with the listing agents"`
	Meeting string `json:"meeting"`
}

// HandleChat godoc
// @Summary      Chat with the assistant
// @Description  Forwards a free-text message, with optional conversation history, to the completion service.
// @Tags         Assistant
// @Accept       json
// @Produce      json
// @Param        chatRequest  body  ChatRequest  true  "Message and optional history"
// @Success      200  {object}  ChatResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      429  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /chat [post]
func (h *AssistantHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request payload", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	history := make([]llm.Message, 0, len(req.History))
	for _, turn := range req.History {
		history = append(history, llm.Message{Role: turn.Role, Content: turn.Content})
	}

	response, err := h.service.Chat(r.Context(), req.Message, history)
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ChatResponse{
		Response:  response,
		Status:    "success",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// HandleOrganizeTask godoc
// @Summary      Organize a task
// @Description  Breaks a task description into actionable steps with priority and time estimates.
// @Tags         Assistant
// @Accept       json
// @Produce      json
// @Param        taskRequest  body  OrganizeTaskRequest  true  "Task description"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      429  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /organize-task [post]
func (h *AssistantHandler) HandleOrganizeTask(w http.ResponseWriter, r *http.Request) {
	var req OrganizeTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request payload", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	task := req.Task
	if task == "" {
		task = req.Details
	}

	result, err := h.service.OrganizeTask(r.Context(), task)
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result.Fields)
}

// HandleScheduleMeeting godoc
// @Summary      Plan a meeting
// @Description  Turns a meeting description into an agenda, duration and preparation checklist.
// @Tags         Assistant
// @Accept       json
// @Produce      json
// @Param        meetingRequest  body  ScheduleMeetingRequest  true  "Meeting details"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      429  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /schedule-meeting [post]
func (h *AssistantHandler) HandleScheduleMeeting(w http.ResponseWriter, r *http.Request) {
	var req ScheduleMeetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request payload", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	details := req.Details
	if details == "" {
		details = req.Meeting
	}

	result, err := h.service.ScheduleMeeting(r.Context(), details)
	if err != nil {
		respondWithError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result.Fields)
}

// HandleHealth godoc
// @Summary      Health check
// @Description  Reports process liveness and whether the OpenAI credential is present.
// @Tags         Health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /health [get]
func (h *AssistantHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:           "healthy",
		OpenAIConfigured: h.cfg.OpenAIConfigured(),
	}
	if !resp.OpenAIConfigured {
		resp.Status = "degraded"
		resp.Message = "OpenAI API key not configured; assistant endpoints are unavailable"
	}
	respondWithJSON(w, http.StatusOK, resp)
}
