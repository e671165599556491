package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/thewellnesslondon/wellness-api/internal/observability/metrics"
	"github.com/thewellnesslondon/wellness-api/pkg/logging"
)

// BookingConfirmation carries the details rendered into the confirmation email.
type BookingConfirmation struct {
	CustomerName  string
	CustomerEmail string
	Service       string
	Date          time.Time
	Time          string
}

// Service composes and sends booking confirmation emails.
type Service struct {
	email       EmailSender
	clinicName  string
	clinicPhone string
	timeout     time.Duration
	metrics     *metrics.ClinicMetrics
	logger      *logging.Logger
}

// NewService creates a notification service. A nil sender disables sending.
func NewService(email EmailSender, clinicName, clinicPhone string, timeout time.Duration, m *metrics.ClinicMetrics, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	if clinicName == "" {
		clinicName = "The Wellness London"
	}
	if timeout <= 0 {
		timeout = 6 * time.Second
	}
	return &Service{
		email:       email,
		clinicName:  clinicName,
		clinicPhone: clinicPhone,
		timeout:     timeout,
		metrics:     m,
		logger:      logger,
	}
}

// SendBookingConfirmation sends the confirmation email for a new booking.
// Errors are returned for the caller to log; booking success never depends on them.
func (s *Service) SendBookingConfirmation(ctx context.Context, b BookingConfirmation) error {
	if s.email == nil {
		s.logger.Debug("notify: email sender not configured, skipping confirmation")
		return nil
	}
	if b.CustomerEmail == "" {
		return nil
	}

	subject := fmt.Sprintf("Appointment Confirmation - %s", s.clinicName)
	body := fmt.Sprintf(`Dear %s,

Your appointment has been confirmed:

Service: %s
Date: %s
Time: %s

Location: %s
Please arrive 10 minutes early for check-in.

If you need to reschedule, please call us at %s.

Best regards,
%s Team`,
		b.CustomerName,
		b.Service,
		b.Date.Format("January 2, 2006"),
		b.Time,
		s.clinicName,
		s.clinicPhone,
		s.clinicName)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	msg := EmailMessage{
		To:      b.CustomerEmail,
		ToName:  b.CustomerName,
		Subject: subject,
		Body:    body,
	}
	if err := s.email.Send(ctx, msg); err != nil {
		s.metrics.ObserveEmail("failed")
		return fmt.Errorf("notify: booking confirmation: %w", err)
	}

	s.metrics.ObserveEmail("sent")
	s.logger.Info("confirmation email sent", "to", b.CustomerEmail, "service", b.Service)
	return nil
}
