package services

import (
	"context"
	"errors"
	"testing"

	"natpark-backend/internal/adapters/persistence/models"
	"natpark-backend/internal/adapters/persistence/repositories"
	"natpark-backend/internal/config"
	"natpark-backend/internal/core/domain"
	"natpark-backend/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			RefreshSecret:    "test-refresh-secret",
			AccessTokenMins:  30,
			RefreshTokenDays: 7,
		},
	}
}

func newAuthFixture(t *testing.T) (*AuthService, *repositories.MemoryUserRepository, *repositories.MemorySessionRepository) {
	t.Helper()
	userRepo := repositories.NewMemoryUserRepository()
	sessionRepo := repositories.NewMemorySessionRepository()
	return NewAuthService(userRepo, sessionRepo, testConfig()), userRepo, sessionRepo
}

func seedUser(t *testing.T, repo *repositories.MemoryUserRepository, username, pass string, status models.AccountStatus) *models.User {
	t.Helper()
	user := &models.User{
		UserID:        "U-" + username,
		Username:      username,
		PasswordHash:  password.Hash(pass),
		RealName:      "Test User",
		RoleType:      string(domain.RoleMonitor),
		AccountStatus: status,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestLoginSuccess(t *testing.T) {
	svc, userRepo, sessionRepo := newAuthFixture(t)
	seedUser(t, userRepo, "admin", "admin123", models.AccountActive)

	result, err := svc.Login(context.Background(), &LoginInput{Username: "admin", Password: "admin123", IP: "10.0.0.1"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "admin", result.User.Username)
	assert.NotNil(t, result.User.LastLoginTime)

	// login recorded an audit session
	require.Len(t, sessionRepo.Sessions, 1)
	assert.Equal(t, "10.0.0.1", sessionRepo.Sessions[0].IPAddress)
	assert.Equal(t, models.SessionActive, sessionRepo.Sessions[0].SessionStatus)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), &LoginInput{Username: "ghost", Password: "whatever1"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLoginWrongPasswordCountsDown(t *testing.T) {
	svc, userRepo, _ := newAuthFixture(t)
	seedUser(t, userRepo, "monitor", "monitor123", models.AccountActive)

	for i := 1; i <= 4; i++ {
		_, err := svc.Login(context.Background(), &LoginInput{Username: "monitor", Password: "wrong"})
		require.ErrorIs(t, err, domain.ErrInvalidCredential)

		var invalidCred *InvalidCredentialError
		require.ErrorAs(t, err, &invalidCred)
		assert.Equal(t, MaxFailedLogins-i, invalidCred.Remaining)
	}

	user, err := userRepo.GetByUsername(context.Background(), "monitor")
	require.NoError(t, err)
	assert.Equal(t, 4, user.FailedLoginCount)
	assert.Equal(t, models.AccountActive, user.AccountStatus)
	assert.NotNil(t, user.LastFailedLoginTime)
}

func TestLoginFifthFailureLocks(t *testing.T) {
	svc, userRepo, _ := newAuthFixture(t)
	seedUser(t, userRepo, "monitor", "monitor123", models.AccountActive)

	for i := 0; i < MaxFailedLogins-1; i++ {
		_, err := svc.Login(context.Background(), &LoginInput{Username: "monitor", Password: "wrong"})
		require.ErrorIs(t, err, domain.ErrInvalidCredential)
	}

	// the failure that reaches the threshold is answered as locked
	_, err := svc.Login(context.Background(), &LoginInput{Username: "monitor", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrAccountLocked)

	user, err := userRepo.GetByUsername(context.Background(), "monitor")
	require.NoError(t, err)
	assert.Equal(t, models.AccountLocked, user.AccountStatus)
	assert.Equal(t, MaxFailedLogins, user.FailedLoginCount)

	// even the correct password is refused afterwards, without counter change
	_, err = svc.Login(context.Background(), &LoginInput{Username: "monitor", Password: "monitor123"})
	assert.ErrorIs(t, err, domain.ErrAccountLocked)

	user, err = userRepo.GetByUsername(context.Background(), "monitor")
	require.NoError(t, err)
	assert.Equal(t, MaxFailedLogins, user.FailedLoginCount)
}

func TestLoginSuccessResetsCounter(t *testing.T) {
	svc, userRepo, _ := newAuthFixture(t)
	seedUser(t, userRepo, "analyst", "analyst123", models.AccountActive)

	for i := 0; i < 3; i++ {
		_, err := svc.Login(context.Background(), &LoginInput{Username: "analyst", Password: "wrong"})
		require.Error(t, err)
	}

	_, err := svc.Login(context.Background(), &LoginInput{Username: "analyst", Password: "analyst123"})
	require.NoError(t, err)

	user, err := userRepo.GetByUsername(context.Background(), "analyst")
	require.NoError(t, err)
	assert.Equal(t, 0, user.FailedLoginCount)
	assert.Nil(t, user.LastFailedLoginTime)

	// the full failure allowance is available again
	_, err = svc.Login(context.Background(), &LoginInput{Username: "analyst", Password: "wrong"})
	var invalidCred *InvalidCredentialError
	require.ErrorAs(t, err, &invalidCred)
	assert.Equal(t, MaxFailedLogins-1, invalidCred.Remaining)
}

func TestLoginDisabledAccountNoSideEffects(t *testing.T) {
	svc, userRepo, _ := newAuthFixture(t)
	seedUser(t, userRepo, "former", "former1234", models.AccountDisabled)

	_, err := svc.Login(context.Background(), &LoginInput{Username: "former", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrAccountDisabled)

	// status is checked before the password, so the counter never moves
	user, err := userRepo.GetByUsername(context.Background(), "former")
	require.NoError(t, err)
	assert.Equal(t, 0, user.FailedLoginCount)
}

func TestRefreshToken(t *testing.T) {
	svc, userRepo, _ := newAuthFixture(t)
	seedUser(t, userRepo, "admin", "admin123", models.AccountActive)

	result, err := svc.Login(context.Background(), &LoginInput{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), result.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, "admin", refreshed.User.Username)

	_, err = svc.RefreshToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestRefreshTokenLockedAccount(t *testing.T) {
	svc, userRepo, _ := newAuthFixture(t)
	user := seedUser(t, userRepo, "admin", "admin123", models.AccountActive)

	result, err := svc.Login(context.Background(), &LoginInput{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	user, err = userRepo.GetByID(context.Background(), user.UserID)
	require.NoError(t, err)
	user.AccountStatus = models.AccountLocked
	require.NoError(t, userRepo.Update(context.Background(), user))

	_, err = svc.RefreshToken(context.Background(), result.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrAccountLocked)
}

func TestLogoutClosesSessions(t *testing.T) {
	svc, userRepo, sessionRepo := newAuthFixture(t)
	user := seedUser(t, userRepo, "admin", "admin123", models.AccountActive)

	_, err := svc.Login(context.Background(), &LoginInput{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), user.UserID))
	require.Len(t, sessionRepo.Sessions, 1)
	assert.Equal(t, models.SessionLoggedOut, sessionRepo.Sessions[0].SessionStatus)
}

func TestInvalidCredentialErrorMatching(t *testing.T) {
	err := &InvalidCredentialError{Remaining: 2}
	assert.True(t, errors.Is(err, domain.ErrInvalidCredential))
	assert.Contains(t, err.Error(), "2 attempts remaining")
}
