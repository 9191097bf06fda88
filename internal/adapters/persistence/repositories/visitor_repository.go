package repositories

import (
	"context"
	"time"

	"natpark-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// ReservationQuery filters reservation listings
type ReservationQuery struct {
	VisitorID string
	Status    string
	Date      *time.Time
	Offset    int
	Limit     int
}

// VisitorRepository covers visitors, reservations, trajectories and traffic
// controls. The reservation and traffic services consume it through
// ReservationStore.
type VisitorRepository struct {
	db *gorm.DB
}

// NewVisitorRepository creates a new visitor repository
func NewVisitorRepository(db *gorm.DB) *VisitorRepository {
	return &VisitorRepository{db: db}
}

// CreateVisitor creates a new visitor
func (r *VisitorRepository) CreateVisitor(ctx context.Context, visitor *models.Visitor) error {
	return r.db.WithContext(ctx).Create(visitor).Error
}

// GetVisitor gets a visitor by ID
func (r *VisitorRepository) GetVisitor(ctx context.Context, id string) (*models.Visitor, error) {
	var visitor models.Visitor
	err := r.db.WithContext(ctx).Where("visitor_id = ?", id).First(&visitor).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &visitor, nil
}

// UpdateVisitor updates a visitor
func (r *VisitorRepository) UpdateVisitor(ctx context.Context, visitor *models.Visitor) error {
	return r.db.WithContext(ctx).Save(visitor).Error
}

// DeleteVisitor deletes a visitor
func (r *VisitorRepository) DeleteVisitor(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("visitor_id = ?", id).Delete(&models.Visitor{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListVisitors lists visitors, optionally only those currently inside
func (r *VisitorRepository) ListVisitors(ctx context.Context, insideOnly bool, offset, limit int) ([]*models.Visitor, int64, error) {
	var visitors []*models.Visitor
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Visitor{})
	if insideOnly {
		query = query.Where("entry_time IS NOT NULL AND exit_time IS NULL")
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("visitor_id").Offset(offset).Limit(limit).Find(&visitors).Error; err != nil {
		return nil, 0, err
	}
	return visitors, total, nil
}

// CreateReservation creates a new reservation
func (r *VisitorRepository) CreateReservation(ctx context.Context, reservation *models.Reservation) error {
	return r.db.WithContext(ctx).Create(reservation).Error
}

// GetReservation gets a reservation by ID
func (r *VisitorRepository) GetReservation(ctx context.Context, id string) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.db.WithContext(ctx).Where("reservation_id = ?", id).First(&reservation).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &reservation, nil
}

// UpdateReservation updates a reservation
func (r *VisitorRepository) UpdateReservation(ctx context.Context, reservation *models.Reservation) error {
	return r.db.WithContext(ctx).Save(reservation).Error
}

// ListReservations lists reservations with filters
func (r *VisitorRepository) ListReservations(ctx context.Context, q ReservationQuery) ([]*models.Reservation, int64, error) {
	var reservations []*models.Reservation
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Reservation{})
	if q.VisitorID != "" {
		query = query.Where("visitor_id = ?", q.VisitorID)
	}
	if q.Status != "" {
		query = query.Where("reservation_status = ?", q.Status)
	}
	if q.Date != nil {
		query = query.Where("reservation_date = ?", q.Date.Format("2006-01-02"))
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("reservation_date DESC").Offset(q.Offset).Limit(q.Limit).Find(&reservations).Error; err != nil {
		return nil, 0, err
	}
	return reservations, total, nil
}

// CreateTrajectory creates a new trajectory point
func (r *VisitorRepository) CreateTrajectory(ctx context.Context, trajectory *models.VisitorTrajectory) error {
	return r.db.WithContext(ctx).Create(trajectory).Error
}

// ListTrajectoriesByVisitor lists a visitor's trajectory points in time order
func (r *VisitorRepository) ListTrajectoriesByVisitor(ctx context.Context, visitorID string, offset, limit int) ([]*models.VisitorTrajectory, int64, error) {
	var points []*models.VisitorTrajectory
	var total int64

	query := r.db.WithContext(ctx).Model(&models.VisitorTrajectory{}).Where("visitor_id = ?", visitorID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("tracking_time").Offset(offset).Limit(limit).Find(&points).Error; err != nil {
		return nil, 0, err
	}
	return points, total, nil
}

// GetTrafficControl gets the traffic control row of an area
func (r *VisitorRepository) GetTrafficControl(ctx context.Context, areaID string) (*models.TrafficControl, error) {
	var control models.TrafficControl
	err := r.db.WithContext(ctx).Where("area_id = ?", areaID).First(&control).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &control, nil
}

// SaveTrafficControl creates or updates a traffic control row
func (r *VisitorRepository) SaveTrafficControl(ctx context.Context, control *models.TrafficControl) error {
	return r.db.WithContext(ctx).Save(control).Error
}

// DeleteTrafficControl deletes a traffic control row
func (r *VisitorRepository) DeleteTrafficControl(ctx context.Context, areaID string) error {
	res := r.db.WithContext(ctx).Where("area_id = ?", areaID).Delete(&models.TrafficControl{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListTrafficControls lists every area's traffic control row
func (r *VisitorRepository) ListTrafficControls(ctx context.Context) ([]*models.TrafficControl, error) {
	var controls []*models.TrafficControl
	if err := r.db.WithContext(ctx).Order("area_id").Find(&controls).Error; err != nil {
		return nil, err
	}
	return controls, nil
}
