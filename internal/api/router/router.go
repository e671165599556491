package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/thewellnesslondon/wellness-api/internal/bookings"
	"github.com/thewellnesslondon/wellness-api/internal/catalog"
	"github.com/thewellnesslondon/wellness-api/internal/chat"
	httpmiddleware "github.com/thewellnesslondon/wellness-api/internal/http/middleware"
	"github.com/thewellnesslondon/wellness-api/internal/httpx"
	"github.com/thewellnesslondon/wellness-api/internal/triage"
	"github.com/thewellnesslondon/wellness-api/internal/webchat"
	"github.com/thewellnesslondon/wellness-api/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	ChatHandler        *chat.Handler
	TriageHandler      *triage.Handler
	BookingsHandler    *bookings.Handler
	CatalogHandler     *catalog.Handler
	WebChatHandler     *webchat.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
	ServiceName        string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health-check", healthCheck(cfg.ServiceName))

	r.Post("/chat", cfg.ChatHandler.Chat)
	r.Post("/symptom-check", cfg.TriageHandler.SymptomCheck)
	r.Post("/book-appointment", cfg.BookingsHandler.BookAppointment)
	r.Get("/services", cfg.CatalogHandler.ListServices)
	r.Get("/available-slots", cfg.CatalogHandler.AvailableSlots)

	if cfg.WebChatHandler != nil {
		r.Route("/webchat", func(wc chi.Router) {
			wc.Get("/ws", cfg.WebChatHandler.HandleWebSocket)
			wc.Post("/message", cfg.WebChatHandler.HandleMessage)
			wc.Get("/history", cfg.WebChatHandler.HandleHistory)
			wc.Get("/widget.js", cfg.WebChatHandler.HandleWidgetJS)
		})
	}

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	return r
}

func healthCheck(serviceName string) http.HandlerFunc {
	if serviceName == "" {
		serviceName = "The Wellness London API"
	}
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": serviceName,
		})
	}
}
