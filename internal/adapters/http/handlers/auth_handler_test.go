package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"natpark-backend/internal/adapters/http/middleware"
	"natpark-backend/internal/adapters/persistence/models"
	"natpark-backend/internal/adapters/persistence/repositories"
	"natpark-backend/internal/config"
	"natpark-backend/internal/core/domain"
	"natpark-backend/internal/core/services"
	"natpark-backend/internal/pkg/password"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string                 `json:"code"`
		Message string                 `json:"message"`
		Details map[string]interface{} `json:"details"`
	} `json:"error"`
}

func newAuthTestApp(t *testing.T) (*fiber.App, *repositories.MemoryUserRepository, *config.Config) {
	t.Helper()
	cfg := &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:           "handler-test-secret",
			RefreshSecret:    "handler-test-refresh",
			AccessTokenMins:  30,
			RefreshTokenDays: 7,
		},
	}
	userRepo := repositories.NewMemoryUserRepository()
	sessionRepo := repositories.NewMemorySessionRepository()
	authService := services.NewAuthService(userRepo, sessionRepo, cfg)
	authHandler := NewAuthHandler(authService, cfg)

	app := fiber.New()
	app.Post("/api/v1/auth/login", authHandler.Login)
	app.Post("/api/v1/auth/refresh", authHandler.RefreshToken)

	authed := app.Group("", middleware.AuthMiddleware(cfg))
	authed.Get("/api/v1/auth/current-user", authHandler.CurrentUser)
	authed.Post("/api/v1/enforcement/guarded",
		middleware.RequirePermission(domain.OpWriteEnforcement),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) },
	)

	return app, userRepo, cfg
}

func seedHandlerUser(t *testing.T, repo *repositories.MemoryUserRepository, username string, role domain.Role) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &models.User{
		UserID:        "U-" + username,
		Username:      username,
		PasswordHash:  password.Hash(username + "123"),
		RealName:      "Test User",
		RoleType:      string(role),
		AccountStatus: models.AccountActive,
	}))
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, *envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env envelope
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &env))
	}
	return resp, &env
}

func loginToken(t *testing.T, app *fiber.App, username, pass string) string {
	t.Helper()
	resp, env := doJSON(t, app, fiber.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"username": username,
		"password": pass,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var data struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.AccessToken)
	return data.AccessToken
}

func TestLoginEndpoint(t *testing.T) {
	app, userRepo, _ := newAuthTestApp(t)
	seedHandlerUser(t, userRepo, "admin", domain.RoleSystemAdmin)

	resp, env := doJSON(t, app, fiber.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"username": "admin",
		"password": "admin123",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)

	var data struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		User         struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotEmpty(t, data.AccessToken)
	assert.NotEmpty(t, data.RefreshToken)
	assert.Equal(t, "admin", data.User.Username)
}

func TestLoginEndpointMissingFields(t *testing.T) {
	app, _, _ := newAuthTestApp(t)

	resp, _ := doJSON(t, app, fiber.MethodPost, "/api/v1/auth/login", "", fiber.Map{"username": "admin"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodPost, "/api/v1/auth/login", "", fiber.Map{"password": "admin123"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLoginEndpointUnknownUser(t *testing.T) {
	app, _, _ := newAuthTestApp(t)

	resp, env := doJSON(t, app, fiber.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"username": "ghost",
		"password": "whatever1",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestLoginEndpointWrongPassword(t *testing.T) {
	app, userRepo, _ := newAuthTestApp(t)
	seedHandlerUser(t, userRepo, "monitor", domain.RoleMonitor)

	resp, env := doJSON(t, app, fiber.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"username": "monitor",
		"password": "wrong",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_CREDENTIAL", env.Error.Code)
	assert.EqualValues(t, 4, env.Error.Details["remaining_attempts"])
}

func TestLoginEndpointLockout(t *testing.T) {
	app, userRepo, _ := newAuthTestApp(t)
	seedHandlerUser(t, userRepo, "monitor", domain.RoleMonitor)

	body := fiber.Map{"username": "monitor", "password": "wrong"}
	for i := 0; i < services.MaxFailedLogins-1; i++ {
		resp, _ := doJSON(t, app, fiber.MethodPost, "/api/v1/auth/login", "", body)
		require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	}

	resp, env := doJSON(t, app, fiber.MethodPost, "/api/v1/auth/login", "", body)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Equal(t, "ACCOUNT_LOCKED", env.Error.Code)

	// the correct password no longer helps
	resp, env = doJSON(t, app, fiber.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"username": "monitor",
		"password": "monitor123",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "ACCOUNT_LOCKED", env.Error.Code)
}

func TestCurrentUserEndpoint(t *testing.T) {
	app, userRepo, _ := newAuthTestApp(t)
	seedHandlerUser(t, userRepo, "admin", domain.RoleSystemAdmin)
	token := loginToken(t, app, "admin", "admin123")

	resp, env := doJSON(t, app, fiber.MethodGet, "/api/v1/auth/current-user", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var data struct {
		User struct {
			Username string `json:"username"`
			RoleType string `json:"role_type"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "admin", data.User.Username)
	assert.Equal(t, string(domain.RoleSystemAdmin), data.User.RoleType)
}

func TestAuthMiddlewareRejectsBadTokens(t *testing.T) {
	app, _, _ := newAuthTestApp(t)

	resp, _ := doJSON(t, app, fiber.MethodGet, "/api/v1/auth/current-user", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, app, fiber.MethodGet, "/api/v1/auth/current-user", "garbage.token.here", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestPermissionGate(t *testing.T) {
	app, userRepo, _ := newAuthTestApp(t)
	seedHandlerUser(t, userRepo, "monitor", domain.RoleMonitor)
	seedHandlerUser(t, userRepo, "officer", domain.RoleEnforcementOfficer)
	seedHandlerUser(t, userRepo, "admin", domain.RoleSystemAdmin)

	monitorToken := loginToken(t, app, "monitor", "monitor123")
	resp, env := doJSON(t, app, fiber.MethodPost, "/api/v1/enforcement/guarded", monitorToken, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)

	officerToken := loginToken(t, app, "officer", "officer123")
	resp, _ = doJSON(t, app, fiber.MethodPost, "/api/v1/enforcement/guarded", officerToken, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	// system admin passes every gate
	adminToken := loginToken(t, app, "admin", "admin123")
	resp, _ = doJSON(t, app, fiber.MethodPost, "/api/v1/enforcement/guarded", adminToken, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestRefreshEndpoint(t *testing.T) {
	app, userRepo, _ := newAuthTestApp(t)
	seedHandlerUser(t, userRepo, "admin", domain.RoleSystemAdmin)

	resp, env := doJSON(t, app, fiber.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"username": "admin",
		"password": "admin123",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var data struct {
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))

	resp, _ = doJSON(t, app, fiber.MethodPost, "/api/v1/auth/refresh", "", fiber.Map{
		"refresh_token": data.RefreshToken,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, env = doJSON(t, app, fiber.MethodPost, "/api/v1/auth/refresh", "", fiber.Map{
		"refresh_token": "bogus",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHENTICATED", env.Error.Code)
}
