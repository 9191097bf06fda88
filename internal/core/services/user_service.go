package services

import (
	"context"
	"errors"
	"log"

	"natpark-backend/internal/adapters/persistence/models"
	"natpark-backend/internal/adapters/persistence/repositories"
	"natpark-backend/internal/core/domain"
	"natpark-backend/internal/pkg/password"
	"natpark-backend/internal/pkg/validate"

	"github.com/google/uuid"
)

// UserService handles user administration business logic
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUserInput represents user creation input
type CreateUserInput struct {
	Username     string `json:"username" validate:"required"`
	Password     string `json:"password" validate:"required"`
	RealName     string `json:"real_name" validate:"required"`
	ContactPhone string `json:"contact_phone"`
	RoleType     string `json:"role_type" validate:"required"`
}

// UpdateUserInput represents user update input. Nil fields are untouched.
type UpdateUserInput struct {
	RealName      *string `json:"real_name"`
	ContactPhone  *string `json:"contact_phone"`
	RoleType      *string `json:"role_type"`
	AccountStatus *string `json:"account_status"`
}

// CreateUser creates a new user account
func (s *UserService) CreateUser(ctx context.Context, input *CreateUserInput) (*models.UserResponse, error) {
	if err := validate.Username(input.Username); err != nil {
		return nil, validationError(err)
	}
	if err := password.ValidateStrength(input.Password); err != nil {
		return nil, validationError(err)
	}
	if !domain.Role(input.RoleType).Valid() {
		return nil, domain.ErrValidation
	}
	if input.ContactPhone != "" {
		if err := validate.PhoneNumber(input.ContactPhone); err != nil {
			return nil, validationError(err)
		}
	}

	if _, err := s.userRepo.GetByUsername(ctx, input.Username); err == nil {
		return nil, domain.ErrUserAlreadyExists
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	user := &models.User{
		UserID:        "U" + uuid.New().String()[:8],
		Username:      input.Username,
		PasswordHash:  password.Hash(input.Password),
		RealName:      input.RealName,
		ContactPhone:  input.ContactPhone,
		RoleType:      input.RoleType,
		AccountStatus: models.AccountActive,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("✅ User created: %s (%s)", user.Username, user.RoleType)
	return user.ToResponse(), nil
}

// GetUser gets a user by ID
func (s *UserService) GetUser(ctx context.Context, id string) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user.ToResponse(), nil
}

// UpdateUser updates a user's profile, role or status
func (s *UserService) UpdateUser(ctx context.Context, id string, input *UpdateUserInput) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	if input.RealName != nil {
		user.RealName = *input.RealName
	}
	if input.ContactPhone != nil {
		if *input.ContactPhone != "" {
			if err := validate.PhoneNumber(*input.ContactPhone); err != nil {
				return nil, validationError(err)
			}
		}
		user.ContactPhone = *input.ContactPhone
	}
	if input.RoleType != nil {
		if !domain.Role(*input.RoleType).Valid() {
			return nil, domain.ErrValidation
		}
		user.RoleType = *input.RoleType
	}
	if input.AccountStatus != nil {
		status := models.AccountStatus(*input.AccountStatus)
		switch status {
		case models.AccountActive, models.AccountLocked, models.AccountDisabled:
		default:
			return nil, domain.ErrValidation
		}
		// Unlocking clears the failure counter so the next window starts fresh.
		if user.AccountStatus == models.AccountLocked && status == models.AccountActive {
			user.FailedLoginCount = 0
			user.LastFailedLoginTime = nil
		}
		user.AccountStatus = status
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user.ToResponse(), nil
}

// ResetPassword sets a new password and reactivates a locked account
func (s *UserService) ResetPassword(ctx context.Context, id, newPassword string) error {
	if err := password.ValidateStrength(newPassword); err != nil {
		return validationError(err)
	}
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	user.PasswordHash = password.Hash(newPassword)
	user.FailedLoginCount = 0
	user.LastFailedLoginTime = nil
	if user.AccountStatus == models.AccountLocked {
		user.AccountStatus = models.AccountActive
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}
	log.Printf("✅ Password reset for user: %s", user.Username)
	return nil
}

// DeleteUser deletes a user account
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return nil
}

// ListUsers lists users with filters and pagination
func (s *UserService) ListUsers(ctx context.Context, q repositories.UserQuery) ([]*models.UserResponse, int64, error) {
	users, total, err := s.userRepo.List(ctx, q)
	if err != nil {
		return nil, 0, err
	}
	out := make([]*models.UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, user.ToResponse())
	}
	return out, total, nil
}
