package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/thewellnesslondon/wellness-api/internal/bookings"
	"github.com/thewellnesslondon/wellness-api/internal/catalog"
	"github.com/thewellnesslondon/wellness-api/internal/chat"
	"github.com/thewellnesslondon/wellness-api/internal/notify"
	"github.com/thewellnesslondon/wellness-api/internal/triage"
	"github.com/thewellnesslondon/wellness-api/pkg/logging"
)

type memoryBookingRepo struct {
	bookings []*bookings.Booking
}

func (m *memoryBookingRepo) Create(_ context.Context, b *bookings.Booking) error {
	b.ID = int64(len(m.bookings) + 1)
	b.CreatedAt = time.Now().UTC()
	m.bookings = append(m.bookings, b)
	return nil
}

type memoryAssessmentRepo struct {
	assessments []*triage.HealthAssessment
}

func (m *memoryAssessmentRepo) Create(_ context.Context, a *triage.HealthAssessment) error {
	a.ID = int64(len(m.assessments) + 1)
	a.CreatedAt = time.Now().UTC()
	m.assessments = append(m.assessments, a)
	return nil
}

type noopNotifier struct{}

func (noopNotifier) SendBookingConfirmation(context.Context, notify.BookingConfirmation) error {
	return nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(mr.Close)

	logger := logging.New("error")

	sessions := chat.NewSessionStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	chatService := chat.NewService(chat.NewRuleResponder(), sessions, chat.NewSessionSigner("test"), time.Second, 200, nil, logger)
	triageService := triage.NewService(&memoryAssessmentRepo{}, nil, logger)
	bookingService := bookings.NewService(&memoryBookingRepo{}, noopNotifier{}, nil, logger)

	cfg := &Config{
		Logger:          logger,
		ChatHandler:     chat.NewHandler(chatService, logger),
		TriageHandler:   triage.NewHandler(triageService, logger),
		BookingsHandler: bookings.NewHandler(bookingService, logger),
		CatalogHandler:  catalog.NewHandler(logger),
	}

	return New(cfg)
}

func TestRouterHealthCheck(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health-check", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode health response: %v", err)
	}

	if resp["status"] != "healthy" {
		t.Errorf("expected status 'healthy', got %q", resp["status"])
	}
	if resp["service"] != "The Wellness London API" {
		t.Errorf("unexpected service name %q", resp["service"])
	}
}

func TestRouterChat(t *testing.T) {
	router := newTestRouter(t)

	body := bytes.NewBufferString(`{"message": "Can I book an appointment?"}`)
	req := httptest.NewRequest(http.MethodPost, "/chat", body)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp chat.ChatResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Response == "" || resp.SessionID == "" {
		t.Errorf("incomplete chat response: %+v", resp)
	}
}

func TestRouterSymptomCheck(t *testing.T) {
	router := newTestRouter(t)

	body := bytes.NewBufferString(`{"symptoms": ["headache", "fever"], "category": "general"}`)
	req := httptest.NewRequest(http.MethodPost, "/symptom-check", body)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp triage.SymptomCheckResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Severity != 4 {
		t.Errorf("expected severity 4 for two symptoms, got %d", resp.Severity)
	}
}

func TestRouterBookAppointment(t *testing.T) {
	router := newTestRouter(t)

	body := bytes.NewBufferString(`{"service": "gp", "date": "2024-03-15", "time": "10:00", "name": "Jane Doe"}`)
	req := httptest.NewRequest(http.MethodPost, "/book-appointment", body)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp bookings.BookResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != bookings.StatusConfirmed {
		t.Errorf("expected confirmed status, got %q", resp.Status)
	}
	if resp.BookingID == 0 {
		t.Error("expected a booking id")
	}
}

func TestRouterListServices(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/services", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var services []catalog.ServiceDescriptor
	if err := json.NewDecoder(rr.Body).Decode(&services); err != nil {
		t.Fatal(err)
	}
	if len(services) != 6 {
		t.Errorf("expected 6 services, got %d", len(services))
	}
}

func TestRouterAvailableSlots(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/available-slots?date=2024-03-15", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp struct {
		Date  string   `json:"date"`
		Slots []string `json:"slots"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Date != "2024-03-15" {
		t.Errorf("expected echoed date, got %q", resp.Date)
	}
	if len(resp.Slots) != 9 {
		t.Errorf("expected 9 slots, got %d", len(resp.Slots))
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}
