package repositories

import (
	"context"
	"time"

	"natpark-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// SpeciesQuery filters species listings
type SpeciesQuery struct {
	ProtectionLevel string
	Kingdom         string
	Search          string
	Offset          int
	Limit           int
}

// MonitoringRecordQuery filters monitoring record listings
type MonitoringRecordQuery struct {
	SpeciesID string
	DeviceID  string
	Status    string
	From      *time.Time
	To        *time.Time
	Offset    int
	Limit     int
}

// SpeciesCount is one protection level bucket of the species statistics
type SpeciesCount struct {
	ProtectionLevel models.ProtectionLevel `json:"protection_level"`
	Count           int64                  `json:"count"`
}

// BiodiversityRepository covers species, habitats, devices and monitoring
// records.
type BiodiversityRepository struct {
	db *gorm.DB
}

// NewBiodiversityRepository creates a new biodiversity repository
func NewBiodiversityRepository(db *gorm.DB) *BiodiversityRepository {
	return &BiodiversityRepository{db: db}
}

// CreateSpecies creates a new species
func (r *BiodiversityRepository) CreateSpecies(ctx context.Context, species *models.Species) error {
	return r.db.WithContext(ctx).Create(species).Error
}

// GetSpecies gets a species by ID
func (r *BiodiversityRepository) GetSpecies(ctx context.Context, id string) (*models.Species, error) {
	var species models.Species
	err := r.db.WithContext(ctx).Where("species_id = ?", id).First(&species).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &species, nil
}

// UpdateSpecies updates a species
func (r *BiodiversityRepository) UpdateSpecies(ctx context.Context, species *models.Species) error {
	return r.db.WithContext(ctx).Save(species).Error
}

// DeleteSpecies deletes a species
func (r *BiodiversityRepository) DeleteSpecies(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("species_id = ?", id).Delete(&models.Species{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListSpecies lists species with filters
func (r *BiodiversityRepository) ListSpecies(ctx context.Context, q SpeciesQuery) ([]*models.Species, int64, error) {
	var species []*models.Species
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Species{})
	if q.ProtectionLevel != "" {
		query = query.Where("protection_level = ?", q.ProtectionLevel)
	}
	if q.Kingdom != "" {
		query = query.Where("kingdom = ?", q.Kingdom)
	}
	if q.Search != "" {
		like := "%" + q.Search + "%"
		query = query.Where("common_name LIKE ? OR latin_name LIKE ?", like, like)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("species_id").Offset(q.Offset).Limit(q.Limit).Find(&species).Error; err != nil {
		return nil, 0, err
	}
	return species, total, nil
}

// CountSpeciesByProtectionLevel groups species counts by protection level
func (r *BiodiversityRepository) CountSpeciesByProtectionLevel(ctx context.Context) ([]SpeciesCount, error) {
	var counts []SpeciesCount
	err := r.db.WithContext(ctx).Model(&models.Species{}).
		Select("protection_level, COUNT(*) AS count").
		Group("protection_level").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// CreateHabitat creates a new habitat
func (r *BiodiversityRepository) CreateHabitat(ctx context.Context, habitat *models.Habitat) error {
	return r.db.WithContext(ctx).Create(habitat).Error
}

// GetHabitat gets a habitat by ID
func (r *BiodiversityRepository) GetHabitat(ctx context.Context, id string) (*models.Habitat, error) {
	var habitat models.Habitat
	err := r.db.WithContext(ctx).Where("habitat_id = ?", id).First(&habitat).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &habitat, nil
}

// UpdateHabitat updates a habitat
func (r *BiodiversityRepository) UpdateHabitat(ctx context.Context, habitat *models.Habitat) error {
	return r.db.WithContext(ctx).Save(habitat).Error
}

// DeleteHabitat deletes a habitat
func (r *BiodiversityRepository) DeleteHabitat(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("habitat_id = ?", id).Delete(&models.Habitat{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListHabitats lists habitats, optionally by ecology type
func (r *BiodiversityRepository) ListHabitats(ctx context.Context, ecologyType string, offset, limit int) ([]*models.Habitat, int64, error) {
	var habitats []*models.Habitat
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Habitat{})
	if ecologyType != "" {
		query = query.Where("ecology_type = ?", ecologyType)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("habitat_id").Offset(offset).Limit(limit).Find(&habitats).Error; err != nil {
		return nil, 0, err
	}
	return habitats, total, nil
}

// LinkHabitatSpecies creates a habitat-species link
func (r *BiodiversityRepository) LinkHabitatSpecies(ctx context.Context, link *models.HabitatSpecies) error {
	return r.db.WithContext(ctx).Create(link).Error
}

// ListHabitatSpecies lists the species links of a habitat
func (r *BiodiversityRepository) ListHabitatSpecies(ctx context.Context, habitatID string) ([]*models.HabitatSpecies, error) {
	var links []*models.HabitatSpecies
	err := r.db.WithContext(ctx).Where("habitat_id = ?", habitatID).Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

// CreateDevice creates a new monitoring device
func (r *BiodiversityRepository) CreateDevice(ctx context.Context, device *models.MonitoringDevice) error {
	return r.db.WithContext(ctx).Create(device).Error
}

// GetDevice gets a monitoring device by ID
func (r *BiodiversityRepository) GetDevice(ctx context.Context, id string) (*models.MonitoringDevice, error) {
	var device models.MonitoringDevice
	err := r.db.WithContext(ctx).Where("device_id = ?", id).First(&device).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &device, nil
}

// UpdateDevice updates a monitoring device
func (r *BiodiversityRepository) UpdateDevice(ctx context.Context, device *models.MonitoringDevice) error {
	return r.db.WithContext(ctx).Save(device).Error
}

// DeleteDevice deletes a monitoring device
func (r *BiodiversityRepository) DeleteDevice(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("device_id = ?", id).Delete(&models.MonitoringDevice{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListDevices lists monitoring devices with filters
func (r *BiodiversityRepository) ListDevices(ctx context.Context, areaID, status string, offset, limit int) ([]*models.MonitoringDevice, int64, error) {
	var devices []*models.MonitoringDevice
	var total int64

	query := r.db.WithContext(ctx).Model(&models.MonitoringDevice{})
	if areaID != "" {
		query = query.Where("deployment_area_id = ?", areaID)
	}
	if status != "" {
		query = query.Where("operation_status = ?", status)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("device_id").Offset(offset).Limit(limit).Find(&devices).Error; err != nil {
		return nil, 0, err
	}
	return devices, total, nil
}

// CreateMonitoringRecord creates a new monitoring record
func (r *BiodiversityRepository) CreateMonitoringRecord(ctx context.Context, record *models.MonitoringRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// GetMonitoringRecord gets a monitoring record by ID
func (r *BiodiversityRepository) GetMonitoringRecord(ctx context.Context, id string) (*models.MonitoringRecord, error) {
	var record models.MonitoringRecord
	err := r.db.WithContext(ctx).Where("record_id = ?", id).First(&record).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &record, nil
}

// UpdateMonitoringRecord updates a monitoring record
func (r *BiodiversityRepository) UpdateMonitoringRecord(ctx context.Context, record *models.MonitoringRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

// ListMonitoringRecords lists monitoring records with filters
func (r *BiodiversityRepository) ListMonitoringRecords(ctx context.Context, q MonitoringRecordQuery) ([]*models.MonitoringRecord, int64, error) {
	var records []*models.MonitoringRecord
	var total int64

	query := r.db.WithContext(ctx).Model(&models.MonitoringRecord{})
	if q.SpeciesID != "" {
		query = query.Where("species_id = ?", q.SpeciesID)
	}
	if q.DeviceID != "" {
		query = query.Where("device_id = ?", q.DeviceID)
	}
	if q.Status != "" {
		query = query.Where("data_status = ?", q.Status)
	}
	if q.From != nil {
		query = query.Where("monitoring_time >= ?", *q.From)
	}
	if q.To != nil {
		query = query.Where("monitoring_time <= ?", *q.To)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("monitoring_time DESC").Offset(q.Offset).Limit(q.Limit).Find(&records).Error; err != nil {
		return nil, 0, err
	}
	return records, total, nil
}
