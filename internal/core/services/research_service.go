package services

import (
	"context"
	"errors"
	"log"
	"time"

	"natpark-backend/internal/adapters/persistence/models"
	"natpark-backend/internal/adapters/persistence/repositories"
	"natpark-backend/internal/core/domain"
)

// ResearchService handles research project lifecycle rules
type ResearchService struct {
	repo *repositories.ResearchRepository
}

// NewResearchService creates a new research service
func NewResearchService(repo *repositories.ResearchRepository) *ResearchService {
	return &ResearchService{repo: repo}
}

// CompleteProject closes an ongoing project and stamps its end date.
// Closed is terminal.
func (s *ResearchService) CompleteProject(ctx context.Context, projectID string) (*models.ResearchProject, error) {
	project, err := s.repo.GetProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	switch project.ProjectStatus {
	case models.ProjectClosed:
		return nil, domain.ErrAlreadyCompleted
	case models.ProjectSuspended:
		return nil, domain.ErrInvalidTransition
	}

	now := time.Now()
	project.ProjectStatus = models.ProjectClosed
	project.EndDate = &now
	if err := s.repo.UpdateProject(ctx, project); err != nil {
		return nil, err
	}

	log.Printf("✅ Research project closed: %s", project.ProjectID)
	return project, nil
}

// SuspendProject pauses an ongoing project
func (s *ResearchService) SuspendProject(ctx context.Context, projectID string) (*models.ResearchProject, error) {
	project, err := s.repo.GetProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	switch project.ProjectStatus {
	case models.ProjectClosed:
		return nil, domain.ErrAlreadyCompleted
	case models.ProjectSuspended:
		return project, nil
	}

	project.ProjectStatus = models.ProjectSuspended
	if err := s.repo.UpdateProject(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// ResumeProject returns a suspended project to ongoing
func (s *ResearchService) ResumeProject(ctx context.Context, projectID string) (*models.ResearchProject, error) {
	project, err := s.repo.GetProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	switch project.ProjectStatus {
	case models.ProjectClosed:
		return nil, domain.ErrAlreadyCompleted
	case models.ProjectOngoing:
		return project, nil
	}

	project.ProjectStatus = models.ProjectOngoing
	if err := s.repo.UpdateProject(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// CanReadAchievement applies the share permission of an achievement.
// Public is open to everyone, internal to any authenticated staff role,
// confidential to researchers, park managers and system admins.
func CanReadAchievement(permission models.SharePermission, role domain.Role) bool {
	switch permission {
	case models.SharePublic:
		return true
	case models.ShareInternal:
		return role != domain.RoleVisitor
	case models.ShareConfidential:
		return role == domain.RoleResearcher || role == domain.RoleParkManager || role == domain.RoleSystemAdmin
	}
	return false
}
