package handlers

import (
	"natpark-backend/internal/adapters/persistence/repositories"
	"natpark-backend/internal/core/services"
	"natpark-backend/internal/pkg/pagination"
	"natpark-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles user administration endpoints
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUser handles user creation
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var input services.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.Username == "" || input.Password == "" || input.RealName == "" || input.RoleType == "" {
		return response.BadRequest(c, "username, password, real_name and role_type are required")
	}

	user, err := h.userService.CreateUser(c.Context(), &input)
	if err != nil {
		return respondError(c, err)
	}
	return response.Created(c, "User created successfully", user)
}

// GetUser handles user retrieval
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	user, err := h.userService.GetUser(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "User retrieved successfully", user)
}

// UpdateUser handles user updates
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	var input services.UpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	user, err := h.userService.UpdateUser(c.Context(), c.Params("id"), &input)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "User updated successfully", user)
}

// ResetPasswordRequest represents password reset request body
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password"`
}

// ResetPassword handles administrative password resets
func (h *UserHandler) ResetPassword(c *fiber.Ctx) error {
	var req ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.NewPassword == "" {
		return response.BadRequest(c, "new_password is required")
	}
	if err := h.userService.ResetPassword(c.Context(), c.Params("id"), req.NewPassword); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Password reset successfully", nil)
}

// DeleteUser handles user deletion
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.userService.DeleteUser(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "User deleted successfully", nil)
}

// ListUsers handles user directory listing
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	users, total, err := h.userService.ListUsers(c.Context(), repositories.UserQuery{
		Role:   c.Query("role"),
		Status: c.Query("status"),
		Search: c.Query("search"),
		Offset: params.Offset,
		Limit:  params.Limit,
	})
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, "Users retrieved successfully", pagination.NewResponse(users, params, total))
}
