package bookings

import "errors"

var (
	// ErrMissingService is returned when no service id is given
	ErrMissingService = errors.New("service is required")

	// ErrMissingTime is returned when no appointment time is given
	ErrMissingTime = errors.New("time is required")

	// ErrInvalidDate is returned when the date does not parse as YYYY-MM-DD
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)

// IsValidationError reports whether err is a client-input problem.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingService) ||
		errors.Is(err, ErrMissingTime) ||
		errors.Is(err, ErrInvalidDate)
}
