package chat

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/thewellnesslondon/wellness-api/internal/httpx"
	"github.com/thewellnesslondon/wellness-api/pkg/logging"
)

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// ChatResponse is the reply returned to the caller.
type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
	Timestamp string `json:"timestamp"`
}

// Handler wires HTTP requests to the chat service.
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates a chat handler.
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Chat handles POST /chat.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode chat request", "error", err)
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	reply, err := h.service.Respond(r.Context(), req.SessionID, req.Message)
	if err != nil {
		if err == ErrMissingMessage {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("chat failed", "error", err, "session_id", req.SessionID)
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to process message")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, ChatResponse{
		Response:  reply.Response,
		SessionID: reply.SessionID,
		Timestamp: reply.Timestamp.Format(time.RFC3339),
	})
}
