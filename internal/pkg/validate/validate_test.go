package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPhoneNumber(t *testing.T) {
	assert.NoError(t, PhoneNumber("13812345678"))
	assert.NoError(t, PhoneNumber("19900001111"))

	assert.Error(t, PhoneNumber("12812345678"))
	assert.Error(t, PhoneNumber("1381234567"))
	assert.Error(t, PhoneNumber("138123456789"))
	assert.Error(t, PhoneNumber("abcdefghijk"))
}

func TestIDCardNumber(t *testing.T) {
	assert.NoError(t, IDCardNumber("110101199001011234"))
	assert.NoError(t, IDCardNumber("110101900101123"))

	assert.Error(t, IDCardNumber("12345"))
	assert.Error(t, IDCardNumber(""))
}

func TestCoordinates(t *testing.T) {
	assert.NoError(t, Latitude(0))
	assert.NoError(t, Latitude(-90))
	assert.NoError(t, Latitude(90))
	assert.Error(t, Latitude(90.1))
	assert.Error(t, Latitude(-91))

	assert.NoError(t, Longitude(180))
	assert.NoError(t, Longitude(-180))
	assert.Error(t, Longitude(180.5))
}

func TestPartySize(t *testing.T) {
	assert.NoError(t, PartySize(1))
	assert.NoError(t, PartySize(MaxPartySize))

	assert.Error(t, PartySize(0))
	assert.Error(t, PartySize(-1))
	assert.Error(t, PartySize(MaxPartySize+1))
}

func TestTicketAmount(t *testing.T) {
	assert.NoError(t, TicketAmount(0))
	assert.NoError(t, TicketAmount(120.50))
	assert.Error(t, TicketAmount(-0.01))
}

func TestReservationDate(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

	assert.NoError(t, ReservationDate(now, now))
	assert.NoError(t, ReservationDate(now.AddDate(0, 0, MaxAdvanceBookingDays), now))

	assert.Error(t, ReservationDate(now.AddDate(0, 0, -1), now))
	assert.Error(t, ReservationDate(now.AddDate(0, 0, MaxAdvanceBookingDays+1), now))
}

func TestUsername(t *testing.T) {
	assert.NoError(t, Username("admin"))
	assert.NoError(t, Username("park_mgr_01"))

	assert.Error(t, Username("abc"))
	assert.Error(t, Username("this_username_is_way_too_long"))
	assert.Error(t, Username("bad name"))
	assert.Error(t, Username("bad-name"))
}
