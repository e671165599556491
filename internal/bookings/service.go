package bookings

import (
	"context"
	"fmt"

	"github.com/thewellnesslondon/wellness-api/internal/notify"
	"github.com/thewellnesslondon/wellness-api/internal/observability/metrics"
	"github.com/thewellnesslondon/wellness-api/pkg/logging"
)

// Notifier sends booking confirmation emails.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, b notify.BookingConfirmation) error
}

// Service validates and persists appointment bookings.
type Service struct {
	repo     Repository
	notifier Notifier
	metrics  *metrics.ClinicMetrics
	logger   *logging.Logger
}

// NewService creates a booking service. A nil notifier disables emails.
func NewService(repo Repository, notifier Notifier, m *metrics.ClinicMetrics, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		repo:     repo,
		notifier: notifier,
		metrics:  m,
		logger:   logger,
	}
}

// Book validates the request, persists the booking and triggers the
// confirmation email. The row is stored with status pending while the
// response reports confirmed; both sides of that mismatch are pinned by
// tests and must not be silently reconciled.
func (s *Service) Book(ctx context.Context, req CreateBookingRequest) (*BookResponse, error) {
	date, err := req.Validate()
	if err != nil {
		return nil, err
	}

	booking := &Booking{
		Service:       req.Service,
		Date:          date,
		Time:          req.Time,
		CustomerName:  req.Name,
		CustomerEmail: req.Email,
		CustomerPhone: req.Phone,
		Status:        StatusPending,
		Notes:         req.Notes,
	}
	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("bookings: create: %w", err)
	}

	// Confirmation failures are logged and swallowed; the booking stands.
	if s.notifier != nil && booking.CustomerEmail != "" {
		confirmation := notify.BookingConfirmation{
			CustomerName:  booking.CustomerName,
			CustomerEmail: booking.CustomerEmail,
			Service:       booking.Service,
			Date:          booking.Date,
			Time:          booking.Time,
		}
		if err := s.notifier.SendBookingConfirmation(ctx, confirmation); err != nil {
			s.logger.Error("confirmation email failed", "error", err, "booking_id", booking.ID)
		}
	}

	s.metrics.ObserveBooking(booking.Service)
	s.logger.Info("booking created", "booking_id", booking.ID, "service", booking.Service, "date", req.Date, "time", req.Time)

	return &BookResponse{
		BookingID: booking.ID,
		Status:    StatusConfirmed,
		Message:   "Appointment booked successfully",
	}, nil
}
