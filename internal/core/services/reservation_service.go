package services

import (
	"context"
	"errors"
	"log"
	"time"

	"natpark-backend/internal/adapters/persistence/models"
	"natpark-backend/internal/adapters/persistence/repositories"
	"natpark-backend/internal/core/domain"
	"natpark-backend/internal/pkg/validate"

	"github.com/google/uuid"
)

// ReservationService handles the reservation lifecycle
type ReservationService struct {
	store repositories.ReservationStore
}

// NewReservationService creates a new reservation service
func NewReservationService(store repositories.ReservationStore) *ReservationService {
	return &ReservationService{store: store}
}

// CreateReservationInput represents reservation creation input
type CreateReservationInput struct {
	VisitorID       string  `json:"visitor_id" validate:"required"`
	ReservationDate string  `json:"reservation_date" validate:"required"`
	EntryTimeSlot   string  `json:"entry_time_slot"`
	PartySize       int     `json:"party_size" validate:"required"`
	TicketAmount    float64 `json:"ticket_amount"`
	PaymentStatus   string  `json:"payment_status"`
}

// CreateReservation books a confirmed visit. The date must fall inside the
// booking window and the party must fit the size cap.
func (s *ReservationService) CreateReservation(ctx context.Context, input *CreateReservationInput) (*models.Reservation, error) {
	if _, err := s.store.GetVisitor(ctx, input.VisitorID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	date, err := time.Parse("2006-01-02", input.ReservationDate)
	if err != nil {
		return nil, domain.ErrValidation
	}
	if err := validate.ReservationDate(date, time.Now()); err != nil {
		return nil, validationError(err)
	}
	if err := validate.PartySize(input.PartySize); err != nil {
		return nil, validationError(err)
	}
	if err := validate.TicketAmount(input.TicketAmount); err != nil {
		return nil, validationError(err)
	}

	payment := models.PaymentStatus(input.PaymentStatus)
	switch payment {
	case models.PaymentPaid, models.PaymentUnpaid:
	case "":
		payment = models.PaymentUnpaid
	default:
		return nil, domain.ErrValidation
	}

	reservation := &models.Reservation{
		ReservationID:     "R" + uuid.New().String()[:12],
		VisitorID:         input.VisitorID,
		ReservationDate:   date,
		EntryTimeSlot:     input.EntryTimeSlot,
		PartySize:         input.PartySize,
		ReservationStatus: models.ReservationConfirmed,
		TicketAmount:      input.TicketAmount,
		PaymentStatus:     payment,
	}
	if err := s.store.CreateReservation(ctx, reservation); err != nil {
		return nil, err
	}

	log.Printf("✅ Reservation created: %s for visitor %s", reservation.ReservationID, reservation.VisitorID)
	return reservation, nil
}

// CancelReservation cancels a confirmed reservation. A completed visit
// cannot be cancelled; cancelling twice is a no-op.
func (s *ReservationService) CancelReservation(ctx context.Context, id string) (*models.Reservation, error) {
	reservation, err := s.store.GetReservation(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	switch reservation.ReservationStatus {
	case models.ReservationCompleted:
		return nil, domain.ErrAlreadyCompleted
	case models.ReservationCancelled:
		return reservation, nil
	}

	reservation.ReservationStatus = models.ReservationCancelled
	if err := s.store.UpdateReservation(ctx, reservation); err != nil {
		return nil, err
	}
	return reservation, nil
}

// CompleteReservation marks a confirmed reservation as completed, normally
// when the party enters the park.
func (s *ReservationService) CompleteReservation(ctx context.Context, id string) (*models.Reservation, error) {
	reservation, err := s.store.GetReservation(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	switch reservation.ReservationStatus {
	case models.ReservationCancelled:
		return nil, domain.ErrInvalidTransition
	case models.ReservationCompleted:
		return reservation, nil
	}

	reservation.ReservationStatus = models.ReservationCompleted
	if err := s.store.UpdateReservation(ctx, reservation); err != nil {
		return nil, err
	}
	return reservation, nil
}
