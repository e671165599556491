package triage

import (
	"encoding/json"
	"net/http"

	"github.com/thewellnesslondon/wellness-api/internal/httpx"
	"github.com/thewellnesslondon/wellness-api/pkg/logging"
)

// Handler wires HTTP requests to the triage service.
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates a triage handler.
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// SymptomCheck handles POST /symptom-check.
func (h *Handler) SymptomCheck(w http.ResponseWriter, r *http.Request) {
	var req SymptomCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode symptom-check request", "error", err)
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.Check(r.Context(), req)
	if err != nil {
		h.logger.Error("symptom check failed", "error", err, "session_id", req.SessionID)
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to analyze symptoms")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}
