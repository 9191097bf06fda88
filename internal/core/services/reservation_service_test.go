package services

import (
	"context"
	"testing"
	"time"

	"natpark-backend/internal/adapters/persistence/models"
	"natpark-backend/internal/adapters/persistence/repositories"
	"natpark-backend/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReservationFixture(t *testing.T) (*ReservationService, *repositories.MemoryReservationStore) {
	t.Helper()
	store := repositories.NewMemoryReservationStore()
	store.SeedVisitor(&models.Visitor{
		VisitorID:    "V001",
		VisitorName:  "Li Wei",
		IDCardNumber: "110101199001011234",
		EntryMethod:  models.EntryOnlineReservation,
	})
	return NewReservationService(store), store
}

func dateString(daysFromNow int) string {
	return time.Now().AddDate(0, 0, daysFromNow).Format("2006-01-02")
}

func TestCreateReservation(t *testing.T) {
	svc, _ := newReservationFixture(t)

	reservation, err := svc.CreateReservation(context.Background(), &CreateReservationInput{
		VisitorID:       "V001",
		ReservationDate: dateString(3),
		EntryTimeSlot:   "09:00-11:00",
		PartySize:       4,
		TicketAmount:    240,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ReservationConfirmed, reservation.ReservationStatus)
	assert.Equal(t, models.PaymentUnpaid, reservation.PaymentStatus)
	assert.NotEmpty(t, reservation.ReservationID)
}

func TestCreateReservationUnknownVisitor(t *testing.T) {
	svc, _ := newReservationFixture(t)

	_, err := svc.CreateReservation(context.Background(), &CreateReservationInput{
		VisitorID:       "V999",
		ReservationDate: dateString(3),
		PartySize:       2,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateReservationDateWindow(t *testing.T) {
	svc, _ := newReservationFixture(t)

	_, err := svc.CreateReservation(context.Background(), &CreateReservationInput{
		VisitorID:       "V001",
		ReservationDate: dateString(-1),
		PartySize:       2,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.CreateReservation(context.Background(), &CreateReservationInput{
		VisitorID:       "V001",
		ReservationDate: dateString(45),
		PartySize:       2,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.CreateReservation(context.Background(), &CreateReservationInput{
		VisitorID:       "V001",
		ReservationDate: "not-a-date",
		PartySize:       2,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateReservationPartySize(t *testing.T) {
	svc, _ := newReservationFixture(t)

	for _, size := range []int{0, -3, 51} {
		_, err := svc.CreateReservation(context.Background(), &CreateReservationInput{
			VisitorID:       "V001",
			ReservationDate: dateString(1),
			PartySize:       size,
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestCancelReservation(t *testing.T) {
	svc, store := newReservationFixture(t)
	store.SeedReservation(&models.Reservation{
		ReservationID:     "R001",
		VisitorID:         "V001",
		ReservationDate:   time.Now().AddDate(0, 0, 5),
		PartySize:         2,
		ReservationStatus: models.ReservationConfirmed,
		PaymentStatus:     models.PaymentPaid,
	})

	reservation, err := svc.CancelReservation(context.Background(), "R001")
	require.NoError(t, err)
	assert.Equal(t, models.ReservationCancelled, reservation.ReservationStatus)

	// cancelling again is a no-op, not an error
	reservation, err = svc.CancelReservation(context.Background(), "R001")
	require.NoError(t, err)
	assert.Equal(t, models.ReservationCancelled, reservation.ReservationStatus)
}

func TestCancelCompletedReservationRejected(t *testing.T) {
	svc, store := newReservationFixture(t)
	store.SeedReservation(&models.Reservation{
		ReservationID:     "R001",
		VisitorID:         "V001",
		ReservationDate:   time.Now(),
		PartySize:         2,
		ReservationStatus: models.ReservationCompleted,
		PaymentStatus:     models.PaymentPaid,
	})

	_, err := svc.CancelReservation(context.Background(), "R001")
	assert.ErrorIs(t, err, domain.ErrAlreadyCompleted)
}

func TestCompleteReservation(t *testing.T) {
	svc, store := newReservationFixture(t)
	store.SeedReservation(&models.Reservation{
		ReservationID:     "R001",
		VisitorID:         "V001",
		ReservationDate:   time.Now(),
		PartySize:         2,
		ReservationStatus: models.ReservationConfirmed,
		PaymentStatus:     models.PaymentPaid,
	})

	reservation, err := svc.CompleteReservation(context.Background(), "R001")
	require.NoError(t, err)
	assert.Equal(t, models.ReservationCompleted, reservation.ReservationStatus)
}

func TestCompleteCancelledReservationRejected(t *testing.T) {
	svc, store := newReservationFixture(t)
	store.SeedReservation(&models.Reservation{
		ReservationID:     "R001",
		VisitorID:         "V001",
		ReservationDate:   time.Now(),
		PartySize:         2,
		ReservationStatus: models.ReservationCancelled,
		PaymentStatus:     models.PaymentUnpaid,
	})

	_, err := svc.CompleteReservation(context.Background(), "R001")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}
