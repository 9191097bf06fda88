package handlers

import (
	"errors"

	"natpark-backend/internal/adapters/persistence/repositories"
	"natpark-backend/internal/core/domain"
	"natpark-backend/internal/core/services"
	"natpark-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// respondError maps a service error onto the API envelope. Every handler
// funnels its service errors through here so the error taxonomy stays in
// one place.
func respondError(c *fiber.Ctx, err error) error {
	var invalidCred *services.InvalidCredentialError
	if errors.As(err, &invalidCred) {
		return response.ErrorWithDetails(c, fiber.StatusUnauthorized,
			"INVALID_CREDENTIAL", "Invalid username or password",
			fiber.Map{"remaining_attempts": invalidCred.Remaining})
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return response.NotFound(c, "User not found")
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, repositories.ErrNotFound):
		return response.NotFound(c, "Resource not found")
	case errors.Is(err, domain.ErrAccountLocked):
		return response.Error(c, fiber.StatusForbidden, "ACCOUNT_LOCKED", "Account is locked")
	case errors.Is(err, domain.ErrAccountDisabled):
		return response.Error(c, fiber.StatusForbidden, "ACCOUNT_DISABLED", "Account is disabled")
	case errors.Is(err, domain.ErrInvalidCredential):
		return response.Error(c, fiber.StatusUnauthorized, "INVALID_CREDENTIAL", "Invalid username or password")
	case errors.Is(err, domain.ErrUnauthenticated):
		return response.Unauthorized(c, "Authentication required")
	case errors.Is(err, domain.ErrForbidden):
		return response.Forbidden(c, "You don't have permission to perform this action")
	case errors.Is(err, domain.ErrUserAlreadyExists):
		return response.Conflict(c, "Username already exists")
	case errors.Is(err, domain.ErrAlreadyHandled):
		return response.Error(c, fiber.StatusConflict, "ALREADY_HANDLED", "Case is already closed")
	case errors.Is(err, domain.ErrAlreadyCompleted):
		return response.Error(c, fiber.StatusConflict, "ALREADY_COMPLETED", "Record is already completed")
	case errors.Is(err, domain.ErrInvalidOrder):
		return response.Error(c, fiber.StatusBadRequest, "INVALID_ORDER", "Timestamps are out of order")
	case errors.Is(err, domain.ErrInvalidTransition):
		return response.BadRequest(c, "Invalid status transition")
	case errors.Is(err, domain.ErrValidation):
		return response.BadRequest(c, err.Error())
	default:
		return response.InternalServerError(c, "Internal server error")
	}
}

// currentUserID reads the authenticated user ID set by the auth middleware
func currentUserID(c *fiber.Ctx) (string, bool) {
	id, ok := c.Locals("userID").(string)
	return id, ok && id != ""
}

// currentRole reads the authenticated role set by the auth middleware
func currentRole(c *fiber.Ctx) domain.Role {
	role, _ := c.Locals("role").(string)
	return domain.Role(role)
}
