package handlers

import (
	"natpark-backend/internal/adapters/persistence/models"
	"natpark-backend/internal/adapters/persistence/repositories"
	"natpark-backend/internal/pkg/pagination"
	"natpark-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AreaHandler handles functional area endpoints
type AreaHandler struct {
	areaRepo *repositories.AreaRepository
}

// NewAreaHandler creates a new area handler
func NewAreaHandler(areaRepo *repositories.AreaRepository) *AreaHandler {
	return &AreaHandler{areaRepo: areaRepo}
}

// CreateArea handles area creation
func (h *AreaHandler) CreateArea(c *fiber.Ctx) error {
	var area models.FunctionalArea
	if err := c.BodyParser(&area); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if area.AreaID == "" || area.AreaName == "" {
		return response.BadRequest(c, "area_id and area_name are required")
	}
	switch area.AreaType {
	case models.AreaCore, models.AreaBuffer, models.AreaExperimental:
	default:
		return response.BadRequest(c, "area_type must be core, buffer or experimental")
	}
	if err := h.areaRepo.Create(c.Context(), &area); err != nil {
		return respondError(c, err)
	}
	return response.Created(c, "Area created successfully", area)
}

// GetArea handles area retrieval
func (h *AreaHandler) GetArea(c *fiber.Ctx) error {
	area, err := h.areaRepo.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Area retrieved successfully", area)
}

// UpdateArea handles area updates
func (h *AreaHandler) UpdateArea(c *fiber.Ctx) error {
	area, err := h.areaRepo.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if err := c.BodyParser(area); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	area.AreaID = c.Params("id")
	if err := h.areaRepo.Update(c.Context(), area); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Area updated successfully", area)
}

// DeleteArea handles area deletion
func (h *AreaHandler) DeleteArea(c *fiber.Ctx) error {
	if err := h.areaRepo.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Area deleted successfully", nil)
}

// ListAreas handles area listing
func (h *AreaHandler) ListAreas(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	areas, total, err := h.areaRepo.List(c.Context(), c.Query("area_type"), params.Offset, params.Limit)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Areas retrieved successfully", pagination.NewResponse(areas, params, total))
}
