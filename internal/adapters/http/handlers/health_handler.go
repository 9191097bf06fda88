package handlers

import (
	"time"

	"natpark-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	startedAt time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{startedAt: time.Now()}
}

// Root answers the API root
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return response.Success(c, "National park records API", fiber.Map{
		"service": "natpark-backend",
		"version": "1.0.0",
	})
}

// HealthCheck answers liveness probes
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	return response.Success(c, "OK", fiber.Map{
		"status": "healthy",
		"uptime": time.Since(h.startedAt).String(),
	})
}
