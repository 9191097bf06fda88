package validate

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// Rules carried over from the park's field data standards.

const (
	MaxPartySize          = 50
	MaxAdvanceBookingDays = 30
)

var (
	phonePattern    = regexp.MustCompile(`^1[3-9]\d{9}$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
)

// PhoneNumber validates an 11-digit mobile number.
func PhoneNumber(value string) error {
	if !phonePattern.MatchString(value) {
		return errors.New("invalid phone number")
	}
	return nil
}

// IDCardNumber validates a 15 or 18 digit national ID number.
func IDCardNumber(value string) error {
	if len(value) != 15 && len(value) != 18 {
		return errors.New("ID card number must be 15 or 18 characters")
	}
	return nil
}

// Latitude validates a latitude in [-90, 90].
func Latitude(value float64) error {
	if value < -90 || value > 90 {
		return errors.New("latitude must be between -90 and 90")
	}
	return nil
}

// Longitude validates a longitude in [-180, 180].
func Longitude(value float64) error {
	if value < -180 || value > 180 {
		return errors.New("longitude must be between -180 and 180")
	}
	return nil
}

// PartySize validates a reservation party size: positive and at most 50.
func PartySize(size int) error {
	if size <= 0 {
		return errors.New("party size must be greater than 0")
	}
	if size > MaxPartySize {
		return fmt.Errorf("party size cannot exceed %d", MaxPartySize)
	}
	return nil
}

// TicketAmount validates a reservation amount: non-negative.
func TicketAmount(amount float64) error {
	if amount < 0 {
		return errors.New("ticket amount cannot be negative")
	}
	return nil
}

// ReservationDate validates that a reservation date falls within
// [today, today+30].
func ReservationDate(date time.Time, now time.Time) error {
	today := now.Truncate(24 * time.Hour)
	day := date.Truncate(24 * time.Hour)
	if day.Before(today) {
		return errors.New("reservation date cannot be in the past")
	}
	if day.After(today.AddDate(0, 0, MaxAdvanceBookingDays)) {
		return fmt.Errorf("reservations can be made at most %d days in advance", MaxAdvanceBookingDays)
	}
	return nil
}

// Username validates a login name: 4-20 characters of letters, digits and
// underscores.
func Username(value string) error {
	if len(value) < 4 || len(value) > 20 {
		return errors.New("username must be between 4 and 20 characters")
	}
	if !usernamePattern.MatchString(value) {
		return errors.New("username may only contain letters, digits and underscores")
	}
	return nil
}
