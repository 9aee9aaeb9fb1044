package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-catalog/domain"
	"recipe-catalog/pkg/jwt"
)

func newApp(jwtService jwt.JWTService) *fiber.App {
	m := NewMiddleware("")
	app := fiber.New()
	app.Use(m.CORSMiddleware())
	app.Get("/me", m.AuthMiddleware(jwtService), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(LocalUsername).(string))
	})
	app.Get("/admin", m.AuthMiddleware(jwtService), m.RequireRoles(domain.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func request(t *testing.T, app *fiber.App, path, token string) int {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, path, nil)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestAuthMiddleware(t *testing.T) {
	jwtService := jwt.NewJWTService("secret", "TEST", time.Hour)
	app := newApp(jwtService)

	token, err := jwtService.GenerateToken(1, "alice", []string{domain.RoleUser})
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, request(t, app, "/me", token))
	assert.Equal(t, fiber.StatusUnauthorized, request(t, app, "/me", ""))
	assert.Equal(t, fiber.StatusUnauthorized, request(t, app, "/me", "garbage"))
}

func TestRequireRoles(t *testing.T) {
	jwtService := jwt.NewJWTService("secret", "TEST", time.Hour)
	app := newApp(jwtService)

	userToken, err := jwtService.GenerateToken(1, "alice", []string{domain.RoleUser})
	require.NoError(t, err)
	adminToken, err := jwtService.GenerateToken(2, "root", []string{domain.RoleAdmin})
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, request(t, app, "/admin", userToken))
	assert.Equal(t, fiber.StatusOK, request(t, app, "/admin", adminToken))
}

func TestCORSPreflight(t *testing.T) {
	app := newApp(jwt.NewJWTService("secret", "TEST", time.Hour))

	req := httptest.NewRequest(fiber.MethodOptions, "/me", nil)
	req.Header.Set(fiber.HeaderOrigin, "http://example.com")
	req.Header.Set(fiber.HeaderAccessControlRequestMethod, fiber.MethodGet)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
}
