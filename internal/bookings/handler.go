package bookings

import (
	"encoding/json"
	"net/http"

	"github.com/thewellnesslondon/wellness-api/internal/httpx"
	"github.com/thewellnesslondon/wellness-api/pkg/logging"
)

// Handler wires HTTP requests to the booking service.
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates a bookings handler.
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// BookAppointment handles POST /book-appointment.
func (h *Handler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode booking request", "error", err)
		httpx.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.Book(r.Context(), req)
	if err != nil {
		if IsValidationError(err) {
			h.logger.Warn("booking rejected", "error", err)
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("booking failed", "error", err, "service", req.Service)
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to book appointment")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}
