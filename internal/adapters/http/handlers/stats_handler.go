package handlers

import (
	"natpark-backend/internal/core/services"
	"natpark-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// StatsHandler handles dashboard and per-module statistics endpoints
type StatsHandler struct {
	statsService *services.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Dashboard answers the landing page summary
func (h *StatsHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.statsService.Dashboard(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Dashboard statistics retrieved successfully", stats)
}

// Biodiversity answers biodiversity statistics
func (h *StatsHandler) Biodiversity(c *fiber.Ctx) error {
	stats, err := h.statsService.Biodiversity(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Biodiversity statistics retrieved successfully", stats)
}

// Visitors answers visitor statistics
func (h *StatsHandler) Visitors(c *fiber.Ctx) error {
	stats, err := h.statsService.Visitors(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Visitor statistics retrieved successfully", stats)
}

// Enforcement answers enforcement statistics
func (h *StatsHandler) Enforcement(c *fiber.Ctx) error {
	stats, err := h.statsService.Enforcement(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Enforcement statistics retrieved successfully", stats)
}

// Research answers research statistics
func (h *StatsHandler) Research(c *fiber.Ctx) error {
	stats, err := h.statsService.Research(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Research statistics retrieved successfully", stats)
}
