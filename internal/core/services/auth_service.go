package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"natpark-backend/internal/adapters/persistence/models"
	"natpark-backend/internal/adapters/persistence/repositories"
	"natpark-backend/internal/config"
	"natpark-backend/internal/core/domain"
	"natpark-backend/internal/pkg/jwt"
	"natpark-backend/internal/pkg/password"

	"github.com/google/uuid"
)

// MaxFailedLogins is the consecutive failure count that locks an account.
const MaxFailedLogins = 5

// InvalidCredentialError is a wrong-password rejection carrying the number
// of attempts left before the account locks. errors.Is matches it against
// domain.ErrInvalidCredential.
type InvalidCredentialError struct {
	Remaining int
}

func (e *InvalidCredentialError) Error() string {
	return fmt.Sprintf("invalid credential, %d attempts remaining", e.Remaining)
}

func (e *InvalidCredentialError) Is(target error) bool {
	return target == domain.ErrInvalidCredential
}

// AuthService handles authentication business logic
type AuthService struct {
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
	cfg         *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		cfg:         cfg,
	}
}

// LoginInput represents login input
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	IP       string `json:"-"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	User         *models.UserResponse `json:"user"`
	AccessToken  string               `json:"access_token"`
	RefreshToken string               `json:"refresh_token"`
}

// Login authenticates a user.
//
// Account status is checked before the password, so attempts against a
// locked or disabled account never touch the failure counter. A wrong
// password increments the counter; the failure that reaches the threshold
// locks the account and is itself answered as locked. A correct password
// resets the counter and stamps the login time.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	switch user.AccountStatus {
	case models.AccountLocked:
		return nil, domain.ErrAccountLocked
	case models.AccountDisabled:
		return nil, domain.ErrAccountDisabled
	}

	if !password.Verify(input.Password, user.PasswordHash) {
		now := time.Now()
		user.FailedLoginCount++
		user.LastFailedLoginTime = &now
		locked := user.FailedLoginCount >= MaxFailedLogins
		if locked {
			user.AccountStatus = models.AccountLocked
		}
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
		if locked {
			log.Printf("🔒 Account locked after %d failed logins: %s", user.FailedLoginCount, user.Username)
			return nil, domain.ErrAccountLocked
		}
		return nil, &InvalidCredentialError{Remaining: MaxFailedLogins - user.FailedLoginCount}
	}

	now := time.Now()
	user.FailedLoginCount = 0
	user.LastFailedLoginTime = nil
	user.LastLoginTime = &now
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	session := &models.UserSession{
		SessionID:     uuid.New().String(),
		UserID:        user.UserID,
		IPAddress:     input.IP,
		SessionStatus: models.SessionActive,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	tokens, err := s.generateTokens(user)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ User logged in: %s", user.Username)

	return &AuthResponse{
		User:         user.ToResponse(),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// RefreshToken issues a fresh token pair from a valid refresh token.
// Refresh is stateless; the account must still be active.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	claims, err := jwt.ValidateRefreshToken(refreshToken, s.cfg.JWT.RefreshSecret)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	switch user.AccountStatus {
	case models.AccountLocked:
		return nil, domain.ErrAccountLocked
	case models.AccountDisabled:
		return nil, domain.ErrAccountDisabled
	}

	tokens, err := s.generateTokens(user)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		User:         user.ToResponse(),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, nil
}

// Logout closes the user's active audit sessions. Tokens stay valid until
// they expire; the session rows only record the action.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	if err := s.sessionRepo.MarkLoggedOut(ctx, userID); err != nil {
		return err
	}
	log.Printf("✅ User logged out: %s", userID)
	return nil
}

// CurrentUser returns the identity behind a validated token.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user.ToResponse(), nil
}

// ValidateAccessToken validates an access token
func (s *AuthService) ValidateAccessToken(accessToken string) (*jwt.Claims, error) {
	return jwt.ValidateAccessToken(accessToken, s.cfg.JWT.Secret)
}

// TokenPair represents access and refresh tokens
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// generateTokens generates access and refresh tokens
func (s *AuthService) generateTokens(user *models.User) (*TokenPair, error) {
	accessToken, err := jwt.GenerateAccessToken(
		user.UserID,
		user.Username,
		user.RoleType,
		s.cfg.JWT.Secret,
		s.cfg.JWT.AccessTokenMins,
	)
	if err != nil {
		return nil, err
	}

	refreshToken, err := jwt.GenerateRefreshToken(
		user.UserID,
		uuid.New().String(),
		s.cfg.JWT.RefreshSecret,
		s.cfg.JWT.RefreshTokenDays,
	)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
