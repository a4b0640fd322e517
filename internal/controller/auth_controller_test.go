package controller

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"ai-recipe-be/internal/config"
	"ai-recipe-be/internal/pkg/serverutils"
	"ai-recipe-be/internal/repository/memory"
	"ai-recipe-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	store := memory.NewStore()
	factory := memory.NewFactory(store)

	authSvc := service.NewAuthService(factory, nil, nil, config.AuthConfig{
		JWTSecret:       "test_secret",
		SessionTTLHours: 1,
	})
	userSvc := service.NewUserService(factory)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())

	api := app.Group("/api")
	authMiddleware := serverutils.NewAuthMiddleware(authSvc)

	NewAuthController(authSvc).RegisterRoutes(api)
	NewUserController(userSvc).RegisterRoutes(api, authMiddleware)

	return app
}

func TestAuthFlow(t *testing.T) {
	app := newTestApp()

	register := func(email string) int {
		payload, _ := json.Marshal(fiber.Map{
			"email":     email,
			"password":  "supersecret",
			"full_name": "Test Cook",
		})
		req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, 201, register("cook@example.com"))
	assert.Equal(t, 409, register("cook@example.com"), "duplicate email is a conflict")

	// Login
	payload, _ := json.Marshal(fiber.Map{"email": "cook@example.com", "password": "supersecret"})
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var cookie string
	for _, c := range resp.Header.Values("Set-Cookie") {
		cookie = c
	}
	assert.Contains(t, cookie, serverutils.SessionCookieName+"=")
	assert.Contains(t, cookie, "HttpOnly")

	var loginBody struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&loginBody))
	token := loginBody.Data.AccessToken
	require.NotEmpty(t, token)

	// Authenticated profile fetch via bearer token
	req = httptest.NewRequest("GET", "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	// Logout, then the token must be rejected
	req = httptest.NewRequest("POST", "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	req = httptest.NewRequest("GET", "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestLoginBadCredentials(t *testing.T) {
	app := newTestApp()

	payload, _ := json.Marshal(fiber.Map{"email": "nobody@example.com", "password": "whatever1"})
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestRegisterValidation(t *testing.T) {
	app := newTestApp()

	// Short password fails the validate tags.
	payload, _ := json.Marshal(fiber.Map{
		"email":     "cook@example.com",
		"password":  "short",
		"full_name": "Test Cook",
	})
	req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest("GET", "/api/users/me", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}
