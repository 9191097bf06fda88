package handlers

import (
	"natpark-backend/internal/adapters/persistence/models"
	"natpark-backend/internal/adapters/persistence/repositories"
	"natpark-backend/internal/core/services"
	"natpark-backend/internal/pkg/pagination"
	"natpark-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ResearchHandler handles project, data collection and achievement
// endpoints
type ResearchHandler struct {
	repo    *repositories.ResearchRepository
	service *services.ResearchService
}

// NewResearchHandler creates a new research handler
func NewResearchHandler(repo *repositories.ResearchRepository, service *services.ResearchService) *ResearchHandler {
	return &ResearchHandler{repo: repo, service: service}
}

// CreateProject handles project creation
func (h *ResearchHandler) CreateProject(c *fiber.Ctx) error {
	var project models.ResearchProject
	if err := c.BodyParser(&project); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if project.ProjectID == "" || project.ProjectName == "" || project.PrincipalID == "" {
		return response.BadRequest(c, "project_id, project_name and principal_id are required")
	}
	if project.ProjectStatus == "" {
		project.ProjectStatus = models.ProjectOngoing
	}
	if err := h.repo.CreateProject(c.Context(), &project); err != nil {
		return respondError(c, err)
	}
	return response.Created(c, "Project created successfully", project)
}

// GetProject handles project retrieval
func (h *ResearchHandler) GetProject(c *fiber.Ctx) error {
	project, err := h.repo.GetProject(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Project retrieved successfully", project)
}

// UpdateProject handles project updates
func (h *ResearchHandler) UpdateProject(c *fiber.Ctx) error {
	project, err := h.repo.GetProject(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if err := c.BodyParser(project); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	project.ProjectID = c.Params("id")
	if err := h.repo.UpdateProject(c.Context(), project); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Project updated successfully", project)
}

// DeleteProject handles project deletion
func (h *ResearchHandler) DeleteProject(c *fiber.Ctx) error {
	if err := h.repo.DeleteProject(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Project deleted successfully", nil)
}

// ListProjects handles project listing with filters
func (h *ResearchHandler) ListProjects(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	projects, total, err := h.repo.ListProjects(c.Context(), repositories.ProjectQuery{
		Status:      c.Query("status"),
		Field:       c.Query("field"),
		PrincipalID: c.Query("principal_id"),
		Offset:      params.Offset,
		Limit:       params.Limit,
	})
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Projects retrieved successfully", pagination.NewResponse(projects, params, total))
}

// CompleteProject closes a project
func (h *ResearchHandler) CompleteProject(c *fiber.Ctx) error {
	project, err := h.service.CompleteProject(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Project completed successfully", project)
}

// SuspendProject pauses a project
func (h *ResearchHandler) SuspendProject(c *fiber.Ctx) error {
	project, err := h.service.SuspendProject(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Project suspended successfully", project)
}

// ResumeProject resumes a suspended project
func (h *ResearchHandler) ResumeProject(c *fiber.Ctx) error {
	project, err := h.service.ResumeProject(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Project resumed successfully", project)
}

// CreateCollection records a data collection entry
func (h *ResearchHandler) CreateCollection(c *fiber.Ctx) error {
	var collection models.ResearchDataCollection
	if err := c.BodyParser(&collection); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if collection.CollectionID == "" || collection.ProjectID == "" || collection.CollectionContent == "" {
		return response.BadRequest(c, "collection_id, project_id and collection_content are required")
	}
	switch collection.DataSource {
	case models.SourceFieldCollection, models.SourceSystemQuery:
	default:
		return response.BadRequest(c, "data_source must be field or system")
	}
	if userID, ok := currentUserID(c); ok && collection.CollectorID == "" {
		collection.CollectorID = userID
	}
	if _, err := h.repo.GetProject(c.Context(), collection.ProjectID); err != nil {
		return respondError(c, err)
	}
	if err := h.repo.CreateCollection(c.Context(), &collection); err != nil {
		return respondError(c, err)
	}
	return response.Created(c, "Data collection recorded successfully", collection)
}

// GetCollection handles data collection retrieval
func (h *ResearchHandler) GetCollection(c *fiber.Ctx) error {
	collection, err := h.repo.GetCollection(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Data collection retrieved successfully", collection)
}

// ListCollections handles data collection listing
func (h *ResearchHandler) ListCollections(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	collections, total, err := h.repo.ListCollections(c.Context(), c.Query("project_id"), params.Offset, params.Limit)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Data collections retrieved successfully", pagination.NewResponse(collections, params, total))
}

// CreateAchievement registers a research output
func (h *ResearchHandler) CreateAchievement(c *fiber.Ctx) error {
	var achievement models.ResearchAchievement
	if err := c.BodyParser(&achievement); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if achievement.AchievementID == "" || achievement.ProjectID == "" || achievement.AchievementName == "" {
		return response.BadRequest(c, "achievement_id, project_id and achievement_name are required")
	}
	switch achievement.AchievementType {
	case models.AchievementPaper, models.AchievementReport, models.AchievementPatent, models.AchievementOther:
	default:
		return response.BadRequest(c, "achievement_type must be paper, report, patent or other")
	}
	switch achievement.SharePermission {
	case models.SharePublic, models.ShareInternal, models.ShareConfidential:
	case "":
		achievement.SharePermission = models.ShareInternal
	default:
		return response.BadRequest(c, "share_permission must be public, internal or confidential")
	}
	if _, err := h.repo.GetProject(c.Context(), achievement.ProjectID); err != nil {
		return respondError(c, err)
	}
	if err := h.repo.CreateAchievement(c.Context(), &achievement); err != nil {
		return respondError(c, err)
	}
	return response.Created(c, "Achievement created successfully", achievement)
}

// GetAchievement handles achievement retrieval, honoring share permissions
func (h *ResearchHandler) GetAchievement(c *fiber.Ctx) error {
	achievement, err := h.repo.GetAchievement(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if !services.CanReadAchievement(achievement.SharePermission, currentRole(c)) {
		return response.Forbidden(c, "You don't have permission to read this achievement")
	}
	return response.Success(c, "Achievement retrieved successfully", achievement)
}

// ListAchievements handles achievement listing, filtered to readable rows
func (h *ResearchHandler) ListAchievements(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	achievements, total, err := h.repo.ListAchievements(c.Context(), c.Query("project_id"), c.Query("type"), params.Offset, params.Limit)
	if err != nil {
		return respondError(c, err)
	}
	role := currentRole(c)
	readable := make([]*models.ResearchAchievement, 0, len(achievements))
	for _, achievement := range achievements {
		if services.CanReadAchievement(achievement.SharePermission, role) {
			readable = append(readable, achievement)
		}
	}
	return response.Success(c, "Achievements retrieved successfully", pagination.NewResponse(readable, params, total))
}
