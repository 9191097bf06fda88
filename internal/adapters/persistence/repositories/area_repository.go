package repositories

import (
	"context"

	"natpark-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// AreaRepository covers functional areas.
type AreaRepository struct {
	db *gorm.DB
}

// NewAreaRepository creates a new area repository
func NewAreaRepository(db *gorm.DB) *AreaRepository {
	return &AreaRepository{db: db}
}

// Create creates a new functional area
func (r *AreaRepository) Create(ctx context.Context, area *models.FunctionalArea) error {
	return r.db.WithContext(ctx).Create(area).Error
}

// GetByID gets a functional area by ID
func (r *AreaRepository) GetByID(ctx context.Context, id string) (*models.FunctionalArea, error) {
	var area models.FunctionalArea
	err := r.db.WithContext(ctx).Where("area_id = ?", id).First(&area).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &area, nil
}

// Update updates a functional area
func (r *AreaRepository) Update(ctx context.Context, area *models.FunctionalArea) error {
	return r.db.WithContext(ctx).Save(area).Error
}

// Delete deletes a functional area
func (r *AreaRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("area_id = ?", id).Delete(&models.FunctionalArea{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// List lists functional areas, optionally by type
func (r *AreaRepository) List(ctx context.Context, areaType string, offset, limit int) ([]*models.FunctionalArea, int64, error) {
	var areas []*models.FunctionalArea
	var total int64

	query := r.db.WithContext(ctx).Model(&models.FunctionalArea{})
	if areaType != "" {
		query = query.Where("area_type = ?", areaType)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("area_id").Offset(offset).Limit(limit).Find(&areas).Error; err != nil {
		return nil, 0, err
	}
	return areas, total, nil
}
