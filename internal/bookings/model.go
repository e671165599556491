package bookings

import (
	"fmt"
	"strings"
	"time"
)

// Booking statuses. New bookings are stored as pending.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// dateLayout is the calendar format accepted on booking requests.
const dateLayout = "2006-01-02"

// Booking represents a persisted appointment booking.
type Booking struct {
	ID            int64     `json:"id"`
	Service       string    `json:"service"`
	Date          time.Time `json:"date"`
	Time          string    `json:"time"`
	CustomerName  string    `json:"customer_name,omitempty"`
	CustomerEmail string    `json:"customer_email,omitempty"`
	CustomerPhone string    `json:"customer_phone,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	Notes         string    `json:"notes,omitempty"`
}

// CreateBookingRequest is the body of POST /book-appointment.
type CreateBookingRequest struct {
	Service string `json:"service"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Notes   string `json:"notes"`
}

// Validate checks required fields and parses the calendar date.
func (r *CreateBookingRequest) Validate() (time.Time, error) {
	if strings.TrimSpace(r.Service) == "" {
		return time.Time{}, ErrMissingService
	}
	if strings.TrimSpace(r.Time) == "" {
		return time.Time{}, ErrMissingTime
	}
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, r.Date)
	}
	return date, nil
}

// BookResponse is returned to the caller after a successful booking.
type BookResponse struct {
	BookingID int64  `json:"booking_id"`
	Status    string `json:"status"`
	Message   string `json:"message"`
}
