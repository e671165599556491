package catalog

import (
	"net/http"

	"github.com/thewellnesslondon/wellness-api/internal/httpx"
	"github.com/thewellnesslondon/wellness-api/pkg/logging"
)

// SlotsResponse is the body of GET /available-slots.
type SlotsResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// Handler serves the static catalog endpoints.
type Handler struct {
	logger *logging.Logger
}

// NewHandler creates a catalog handler.
func NewHandler(logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{logger: logger}
}

// ListServices handles GET /services.
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, Services())
}

// AvailableSlots handles GET /available-slots?date=&service=.
// The date is echoed back and the slot template is returned for any input.
func (h *Handler) AvailableSlots(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	httpx.WriteJSON(w, http.StatusOK, SlotsResponse{
		Date:  date,
		Slots: Slots(),
	})
}
