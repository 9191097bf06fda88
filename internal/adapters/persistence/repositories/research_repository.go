package repositories

import (
	"context"

	"natpark-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// ProjectQuery filters research project listings
type ProjectQuery struct {
	Status      string
	Field       string
	PrincipalID string
	Offset      int
	Limit       int
}

// ResearchRepository covers projects, data collections and achievements.
type ResearchRepository struct {
	db *gorm.DB
}

// NewResearchRepository creates a new research repository
func NewResearchRepository(db *gorm.DB) *ResearchRepository {
	return &ResearchRepository{db: db}
}

// CreateProject creates a new research project
func (r *ResearchRepository) CreateProject(ctx context.Context, project *models.ResearchProject) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// GetProject gets a research project by ID
func (r *ResearchRepository) GetProject(ctx context.Context, id string) (*models.ResearchProject, error) {
	var project models.ResearchProject
	err := r.db.WithContext(ctx).Where("project_id = ?", id).First(&project).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &project, nil
}

// UpdateProject updates a research project
func (r *ResearchRepository) UpdateProject(ctx context.Context, project *models.ResearchProject) error {
	return r.db.WithContext(ctx).Save(project).Error
}

// DeleteProject deletes a research project
func (r *ResearchRepository) DeleteProject(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("project_id = ?", id).Delete(&models.ResearchProject{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListProjects lists research projects with filters
func (r *ResearchRepository) ListProjects(ctx context.Context, q ProjectQuery) ([]*models.ResearchProject, int64, error) {
	var projects []*models.ResearchProject
	var total int64

	query := r.db.WithContext(ctx).Model(&models.ResearchProject{})
	if q.Status != "" {
		query = query.Where("project_status = ?", q.Status)
	}
	if q.Field != "" {
		query = query.Where("research_field = ?", q.Field)
	}
	if q.PrincipalID != "" {
		query = query.Where("principal_id = ?", q.PrincipalID)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("start_date DESC").Offset(q.Offset).Limit(q.Limit).Find(&projects).Error; err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

// CreateCollection creates a new data collection record
func (r *ResearchRepository) CreateCollection(ctx context.Context, collection *models.ResearchDataCollection) error {
	return r.db.WithContext(ctx).Create(collection).Error
}

// GetCollection gets a data collection record by ID
func (r *ResearchRepository) GetCollection(ctx context.Context, id string) (*models.ResearchDataCollection, error) {
	var collection models.ResearchDataCollection
	err := r.db.WithContext(ctx).Where("collection_id = ?", id).First(&collection).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &collection, nil
}

// ListCollections lists data collection records, optionally by project
func (r *ResearchRepository) ListCollections(ctx context.Context, projectID string, offset, limit int) ([]*models.ResearchDataCollection, int64, error) {
	var collections []*models.ResearchDataCollection
	var total int64

	query := r.db.WithContext(ctx).Model(&models.ResearchDataCollection{})
	if projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("collection_time DESC").Offset(offset).Limit(limit).Find(&collections).Error; err != nil {
		return nil, 0, err
	}
	return collections, total, nil
}

// CreateAchievement creates a new research achievement
func (r *ResearchRepository) CreateAchievement(ctx context.Context, achievement *models.ResearchAchievement) error {
	return r.db.WithContext(ctx).Create(achievement).Error
}

// GetAchievement gets a research achievement by ID
func (r *ResearchRepository) GetAchievement(ctx context.Context, id string) (*models.ResearchAchievement, error) {
	var achievement models.ResearchAchievement
	err := r.db.WithContext(ctx).Where("achievement_id = ?", id).First(&achievement).Error
	if err != nil {
		return nil, wrapNotFound(err)
	}
	return &achievement, nil
}

// UpdateAchievement updates a research achievement
func (r *ResearchRepository) UpdateAchievement(ctx context.Context, achievement *models.ResearchAchievement) error {
	return r.db.WithContext(ctx).Save(achievement).Error
}

// ListAchievements lists research achievements with filters
func (r *ResearchRepository) ListAchievements(ctx context.Context, projectID, achievementType string, offset, limit int) ([]*models.ResearchAchievement, int64, error) {
	var achievements []*models.ResearchAchievement
	var total int64

	query := r.db.WithContext(ctx).Model(&models.ResearchAchievement{})
	if projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}
	if achievementType != "" {
		query = query.Where("achievement_type = ?", achievementType)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Order("publish_date DESC").Offset(offset).Limit(limit).Find(&achievements).Error; err != nil {
		return nil, 0, err
	}
	return achievements, total, nil
}
