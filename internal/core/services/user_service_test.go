package services

import (
	"context"
	"testing"

	"natpark-backend/internal/adapters/persistence/models"
	"natpark-backend/internal/adapters/persistence/repositories"
	"natpark-backend/internal/core/domain"
	"natpark-backend/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserFixture(t *testing.T) (*UserService, *repositories.MemoryUserRepository) {
	t.Helper()
	repo := repositories.NewMemoryUserRepository()
	return NewUserService(repo), repo
}

func TestCreateUser(t *testing.T) {
	svc, repo := newUserFixture(t)

	user, err := svc.CreateUser(context.Background(), &CreateUserInput{
		Username: "new_monitor",
		Password: "secret123",
		RealName: "New Monitor",
		RoleType: string(domain.RoleMonitor),
	})
	require.NoError(t, err)
	assert.Equal(t, "new_monitor", user.Username)
	assert.Equal(t, models.AccountActive, user.AccountStatus)
	assert.NotEmpty(t, user.UserID)

	stored, err := repo.GetByUsername(context.Background(), "new_monitor")
	require.NoError(t, err)
	assert.True(t, password.Verify("secret123", stored.PasswordHash))
}

func TestCreateUserValidation(t *testing.T) {
	svc, _ := newUserFixture(t)

	cases := []struct {
		name  string
		input CreateUserInput
	}{
		{"short username", CreateUserInput{Username: "ab", Password: "secret123", RealName: "X", RoleType: "monitor"}},
		{"weak password", CreateUserInput{Username: "valid_name", Password: "short", RealName: "X", RoleType: "monitor"}},
		{"digits only password", CreateUserInput{Username: "valid_name", Password: "12345678", RealName: "X", RoleType: "monitor"}},
		{"unknown role", CreateUserInput{Username: "valid_name", Password: "secret123", RealName: "X", RoleType: "warlord"}},
		{"bad phone", CreateUserInput{Username: "valid_name", Password: "secret123", RealName: "X", RoleType: "monitor", ContactPhone: "12345"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateUser(context.Background(), &tc.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	svc, _ := newUserFixture(t)

	input := &CreateUserInput{
		Username: "duplicate",
		Password: "secret123",
		RealName: "First",
		RoleType: string(domain.RoleAnalyst),
	}
	_, err := svc.CreateUser(context.Background(), input)
	require.NoError(t, err)

	_, err = svc.CreateUser(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
}

func TestUpdateUserUnlockClearsCounter(t *testing.T) {
	svc, repo := newUserFixture(t)
	seedUser(t, repo, "locked_out", "locked123", models.AccountLocked)

	stored, err := repo.GetByUsername(context.Background(), "locked_out")
	require.NoError(t, err)
	stored.FailedLoginCount = MaxFailedLogins
	require.NoError(t, repo.Update(context.Background(), stored))

	active := string(models.AccountActive)
	updated, err := svc.UpdateUser(context.Background(), stored.UserID, &UpdateUserInput{AccountStatus: &active})
	require.NoError(t, err)
	assert.Equal(t, models.AccountActive, updated.AccountStatus)

	stored, err = repo.GetByID(context.Background(), stored.UserID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.FailedLoginCount)
}

func TestResetPasswordUnlocks(t *testing.T) {
	svc, repo := newUserFixture(t)
	user := seedUser(t, repo, "forgetful", "oldpass99", models.AccountLocked)

	require.NoError(t, svc.ResetPassword(context.Background(), user.UserID, "newpass99"))

	stored, err := repo.GetByID(context.Background(), user.UserID)
	require.NoError(t, err)
	assert.Equal(t, models.AccountActive, stored.AccountStatus)
	assert.Equal(t, 0, stored.FailedLoginCount)
	assert.True(t, password.Verify("newpass99", stored.PasswordHash))
	assert.False(t, password.Verify("oldpass99", stored.PasswordHash))
}

func TestDeleteUser(t *testing.T) {
	svc, repo := newUserFixture(t)
	user := seedUser(t, repo, "leaving", "leaving123", models.AccountActive)

	require.NoError(t, svc.DeleteUser(context.Background(), user.UserID))

	_, err := repo.GetByID(context.Background(), user.UserID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	err = svc.DeleteUser(context.Background(), user.UserID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestListUsersFilters(t *testing.T) {
	svc, repo := newUserFixture(t)
	seedUser(t, repo, "monitor_one", "monitor123", models.AccountActive)
	seedUser(t, repo, "monitor_two", "monitor123", models.AccountActive)
	other := seedUser(t, repo, "ranger_one", "ranger1234", models.AccountActive)
	other.RoleType = string(domain.RoleEnforcementOfficer)
	require.NoError(t, repo.Update(context.Background(), other))

	users, total, err := svc.ListUsers(context.Background(), repositories.UserQuery{
		Role:  string(domain.RoleMonitor),
		Limit: 10,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, users, 2)

	users, total, err = svc.ListUsers(context.Background(), repositories.UserQuery{
		Search: "ranger",
		Limit:  10,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, users, 1)
	assert.Equal(t, "ranger_one", users[0].Username)
}
