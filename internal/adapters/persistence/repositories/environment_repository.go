package repositories

import (
	"context"
	"time"

	"natpark-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// EnvironmentalDataQuery filters environmental data listings
type EnvironmentalDataQuery struct {
	IndicatorID string
	AreaID      string
	Quality     string
	From        *time.Time
	To          *time.Time
	Offset      int
	Limit       int
}

// IndicatorStats summarizes the samples of one indicator
type IndicatorStats struct {
	IndicatorID string  `json:"indicator_id"`
	SampleCount int64   `json:"sample_count"`
	MinValue    float64 `json:"min_value"`
	MaxValue    float64 `json:"max_value"`
	AvgValue    float64 `json:"avg_value"`
}

// EnvironmentRepository covers monitoring indicators and environmental data.
type EnvironmentRepository struct {
	db *gorm.DB
}

// NewEnvironmentRepository creates a new environment repository
func NewEnvironmentRepository(db *gorm.DB) *EnvironmentRepository {
	return &EnvironmentRepository{db: db}
}

// CreateIndicator creates a new monitoring indicator
func (r *EnvironmentRepository) CreateIndicator(ctx context.Context, indicator *models.MonitoringIndicator) error {
	return r.db.WithContext(ctx).Create(indicator).Error
}

// GetIndicator gets a monitoring indicator by ID
func (r *EnvironmentRepository) GetIndicator(ctx context.Context, id string) (*models.MonitoringIndicator, error) {
	var indicator models.MonitoringIndicator
	err := r.db.WithContext(ctx).Where("indicator_id = ?", id).First(&indicator).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &indicator, nil
}

// UpdateIndicator updates a monitoring indicator
func (r *EnvironmentRepository) UpdateIndicator(ctx context.Context, indicator *models.MonitoringIndicator) error {
	return r.db.WithContext(ctx).Save(indicator).Error
}

// DeleteIndicator deletes a monitoring indicator
func (r *EnvironmentRepository) DeleteIndicator(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("indicator_id = ?", id).Delete(&models.MonitoringIndicator{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListIndicators lists monitoring indicators
func (r *EnvironmentRepository) ListIndicators(ctx context.Context, offset, limit int) ([]*models.MonitoringIndicator, int64, error) {
	var indicators []*models.MonitoringIndicator
	var total int64

	query := r.db.WithContext(ctx).Model(&models.MonitoringIndicator{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("indicator_id").Offset(offset).Limit(limit).Find(&indicators).Error; err != nil {
		return nil, 0, err
	}
	return indicators, total, nil
}

// CreateData creates a new environmental data sample
func (r *EnvironmentRepository) CreateData(ctx context.Context, data *models.EnvironmentalData) error {
	return r.db.WithContext(ctx).Create(data).Error
}

// GetData gets an environmental data sample by ID
func (r *EnvironmentRepository) GetData(ctx context.Context, id string) (*models.EnvironmentalData, error) {
	var data models.EnvironmentalData
	err := r.db.WithContext(ctx).Where("data_id = ?", id).First(&data).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &data, nil
}

// ListData lists environmental data samples with filters
func (r *EnvironmentRepository) ListData(ctx context.Context, q EnvironmentalDataQuery) ([]*models.EnvironmentalData, int64, error) {
	var data []*models.EnvironmentalData
	var total int64

	query := r.db.WithContext(ctx).Model(&models.EnvironmentalData{})
	if q.IndicatorID != "" {
		query = query.Where("indicator_id = ?", q.IndicatorID)
	}
	if q.AreaID != "" {
		query = query.Where("area_id = ?", q.AreaID)
	}
	if q.Quality != "" {
		query = query.Where("data_quality = ?", q.Quality)
	}
	if q.From != nil {
		query = query.Where("collection_time >= ?", *q.From)
	}
	if q.To != nil {
		query = query.Where("collection_time <= ?", *q.To)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("collection_time DESC").Offset(q.Offset).Limit(q.Limit).Find(&data).Error; err != nil {
		return nil, 0, err
	}
	return data, total, nil
}

// StatsByIndicator aggregates min, max and average of an indicator's samples
func (r *EnvironmentRepository) StatsByIndicator(ctx context.Context, indicatorID string) (*IndicatorStats, error) {
	var stats IndicatorStats
	err := r.db.WithContext(ctx).Model(&models.EnvironmentalData{}).
		Select("indicator_id, COUNT(*) AS sample_count, MIN(monitoring_value) AS min_value, MAX(monitoring_value) AS max_value, AVG(monitoring_value) AS avg_value").
		Where("indicator_id = ?", indicatorID).
		Group("indicator_id").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	if stats.SampleCount == 0 {
		stats.IndicatorID = indicatorID
	}
	return &stats, nil
}
