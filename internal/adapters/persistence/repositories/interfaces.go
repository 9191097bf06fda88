package repositories

import (
	"context"
	"errors"

	"natpark-backend/internal/adapters/persistence/models"
)

// ErrNotFound is returned by every repository when a record does not exist,
// regardless of the backing store.
var ErrNotFound = errors.New("record not found")

// UserQuery filters and paginates user listings
type UserQuery struct {
	Role   string
	Status string
	Search string
	Offset int
	Limit  int
}

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, q UserQuery) ([]*models.User, int64, error)
}

// SessionRepository defines the audit session repository interface.
// Sessions never gate token validation.
type SessionRepository interface {
	Create(ctx context.Context, session *models.UserSession) error
	MarkLoggedOut(ctx context.Context, userID string) error
}

// EnforcementStore is the slice of enforcement persistence the workflow
// service needs: single-row fetch-mutate-persist on cases and dispatches.
type EnforcementStore interface {
	GetCase(ctx context.Context, id string) (*models.IllegalBehavior, error)
	UpdateCase(ctx context.Context, record *models.IllegalBehavior) error
	GetDispatch(ctx context.Context, id string) (*models.EnforcementDispatch, error)
	CreateDispatch(ctx context.Context, dispatch *models.EnforcementDispatch) error
	UpdateDispatch(ctx context.Context, dispatch *models.EnforcementDispatch) error
	GetEnforcer(ctx context.Context, id string) (*models.LawEnforcer, error)
}

// ReservationStore is the slice of visitor persistence the reservation and
// traffic services need.
type ReservationStore interface {
	GetVisitor(ctx context.Context, id string) (*models.Visitor, error)
	UpdateVisitor(ctx context.Context, visitor *models.Visitor) error
	GetReservation(ctx context.Context, id string) (*models.Reservation, error)
	CreateReservation(ctx context.Context, reservation *models.Reservation) error
	UpdateReservation(ctx context.Context, reservation *models.Reservation) error
	GetTrafficControl(ctx context.Context, areaID string) (*models.TrafficControl, error)
	SaveTrafficControl(ctx context.Context, control *models.TrafficControl) error
	ListTrafficControls(ctx context.Context) ([]*models.TrafficControl, error)
}
