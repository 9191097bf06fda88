package repositories

import (
	"context"
	"time"

	"natpark-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// CaseQuery filters illegal behavior listings
type CaseQuery struct {
	Status   string
	AreaID   string
	Behavior string
	From     *time.Time
	To       *time.Time
	Offset   int
	Limit    int
}

// DispatchQuery filters dispatch listings
type DispatchQuery struct {
	Status     string
	EnforcerID string
	RecordID   string
	Offset     int
	Limit      int
}

// EnforcementRepository covers enforcers, surveillance points, cases and
// dispatches. The workflow service consumes it through EnforcementStore.
type EnforcementRepository struct {
	db *gorm.DB
}

// NewEnforcementRepository creates a new enforcement repository
func NewEnforcementRepository(db *gorm.DB) *EnforcementRepository {
	return &EnforcementRepository{db: db}
}

// CreateEnforcer creates a new law enforcer
func (r *EnforcementRepository) CreateEnforcer(ctx context.Context, enforcer *models.LawEnforcer) error {
	return r.db.WithContext(ctx).Create(enforcer).Error
}

// GetEnforcer gets a law enforcer by ID
func (r *EnforcementRepository) GetEnforcer(ctx context.Context, id string) (*models.LawEnforcer, error) {
	var enforcer models.LawEnforcer
	err := r.db.WithContext(ctx).Where("enforcer_id = ?", id).First(&enforcer).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &enforcer, nil
}

// UpdateEnforcer updates a law enforcer
func (r *EnforcementRepository) UpdateEnforcer(ctx context.Context, enforcer *models.LawEnforcer) error {
	return r.db.WithContext(ctx).Save(enforcer).Error
}

// DeleteEnforcer deletes a law enforcer
func (r *EnforcementRepository) DeleteEnforcer(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("enforcer_id = ?", id).Delete(&models.LawEnforcer{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListEnforcers lists law enforcers, optionally filtered by department
func (r *EnforcementRepository) ListEnforcers(ctx context.Context, department string, offset, limit int) ([]*models.LawEnforcer, int64, error) {
	var enforcers []*models.LawEnforcer
	var total int64

	query := r.db.WithContext(ctx).Model(&models.LawEnforcer{})
	if department != "" {
		query = query.Where("department = ?", department)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("enforcer_id").Offset(offset).Limit(limit).Find(&enforcers).Error; err != nil {
		return nil, 0, err
	}
	return enforcers, total, nil
}

// CreateSurveillancePoint creates a new surveillance point
func (r *EnforcementRepository) CreateSurveillancePoint(ctx context.Context, point *models.SurveillancePoint) error {
	return r.db.WithContext(ctx).Create(point).Error
}

// GetSurveillancePoint gets a surveillance point by ID
func (r *EnforcementRepository) GetSurveillancePoint(ctx context.Context, id string) (*models.SurveillancePoint, error) {
	var point models.SurveillancePoint
	err := r.db.WithContext(ctx).Where("monitor_id = ?", id).First(&point).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &point, nil
}

// UpdateSurveillancePoint updates a surveillance point
func (r *EnforcementRepository) UpdateSurveillancePoint(ctx context.Context, point *models.SurveillancePoint) error {
	return r.db.WithContext(ctx).Save(point).Error
}

// DeleteSurveillancePoint deletes a surveillance point
func (r *EnforcementRepository) DeleteSurveillancePoint(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("monitor_id = ?", id).Delete(&models.SurveillancePoint{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListSurveillancePoints lists surveillance points, optionally by area and status
func (r *EnforcementRepository) ListSurveillancePoints(ctx context.Context, areaID, status string, offset, limit int) ([]*models.SurveillancePoint, int64, error) {
	var points []*models.SurveillancePoint
	var total int64

	query := r.db.WithContext(ctx).Model(&models.SurveillancePoint{})
	if areaID != "" {
		query = query.Where("area_id = ?", areaID)
	}
	if status != "" {
		query = query.Where("device_status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("monitor_id").Offset(offset).Limit(limit).Find(&points).Error; err != nil {
		return nil, 0, err
	}
	return points, total, nil
}

// CreateCase creates a new illegal behavior record
func (r *EnforcementRepository) CreateCase(ctx context.Context, record *models.IllegalBehavior) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// GetCase gets an illegal behavior record by ID
func (r *EnforcementRepository) GetCase(ctx context.Context, id string) (*models.IllegalBehavior, error) {
	var record models.IllegalBehavior
	err := r.db.WithContext(ctx).Where("record_id = ?", id).First(&record).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &record, nil
}

// UpdateCase updates an illegal behavior record
func (r *EnforcementRepository) UpdateCase(ctx context.Context, record *models.IllegalBehavior) error {
	return r.db.WithContext(ctx).Save(record).Error
}

// DeleteCase deletes an illegal behavior record
func (r *EnforcementRepository) DeleteCase(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("record_id = ?", id).Delete(&models.IllegalBehavior{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListCases lists illegal behavior records with filters
func (r *EnforcementRepository) ListCases(ctx context.Context, q CaseQuery) ([]*models.IllegalBehavior, int64, error) {
	var records []*models.IllegalBehavior
	var total int64

	query := r.db.WithContext(ctx).Model(&models.IllegalBehavior{})
	if q.Status != "" {
		query = query.Where("handling_status = ?", q.Status)
	}
	if q.AreaID != "" {
		query = query.Where("area_id = ?", q.AreaID)
	}
	if q.Behavior != "" {
		query = query.Where("behavior_type = ?", q.Behavior)
	}
	if q.From != nil {
		query = query.Where("occurrence_time >= ?", *q.From)
	}
	if q.To != nil {
		query = query.Where("occurrence_time <= ?", *q.To)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("occurrence_time DESC").Offset(q.Offset).Limit(q.Limit).Find(&records).Error; err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// CreateDispatch creates a new enforcement dispatch
func (r *EnforcementRepository) CreateDispatch(ctx context.Context, dispatch *models.EnforcementDispatch) error {
	return r.db.WithContext(ctx).Create(dispatch).Error
}

// GetDispatch gets an enforcement dispatch by ID
func (r *EnforcementRepository) GetDispatch(ctx context.Context, id string) (*models.EnforcementDispatch, error) {
	var dispatch models.EnforcementDispatch
	err := r.db.WithContext(ctx).Where("dispatch_id = ?", id).First(&dispatch).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &dispatch, nil
}

// UpdateDispatch updates an enforcement dispatch
func (r *EnforcementRepository) UpdateDispatch(ctx context.Context, dispatch *models.EnforcementDispatch) error {
	return r.db.WithContext(ctx).Save(dispatch).Error
}

// ListDispatches lists enforcement dispatches with filters
func (r *EnforcementRepository) ListDispatches(ctx context.Context, q DispatchQuery) ([]*models.EnforcementDispatch, int64, error) {
	var dispatches []*models.EnforcementDispatch
	var total int64

	query := r.db.WithContext(ctx).Model(&models.EnforcementDispatch{})
	if q.Status != "" {
		query = query.Where("dispatch_status = ?", q.Status)
	}
	if q.EnforcerID != "" {
		query = query.Where("enforcer_id = ?", q.EnforcerID)
	}
	if q.RecordID != "" {
		query = query.Where("record_id = ?", q.RecordID)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("dispatch_time DESC").Offset(q.Offset).Limit(q.Limit).Find(&dispatches).Error; err != nil {
		return nil, 0, err
	}
	return dispatches, total, nil
}
