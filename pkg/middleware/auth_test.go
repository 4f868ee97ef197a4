package middleware

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"smart-global-hub/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(jwt *auth.JWTManager) *fiber.App {
	app := fiber.New()
	app.Get("/me", AuthMiddleware(jwt, zap.NewNop()), func(c *fiber.Ctx) error {
		id, err := GetIdentity(c)
		if err != nil {
			return err
		}
		return c.SendString(id.TenantID.String())
	})
	app.Get("/admin", AuthMiddleware(jwt, zap.NewNop()), RequireRole("admin"), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	jwt := auth.NewJWTManager("secret", time.Hour, time.Hour)
	app := newTestApp(jwt)
	tenantID := uuid.New()

	access, err := jwt.GenerateToken(uuid.NewString(), tenantID.String(), "a@b.c", "staff")
	require.NoError(t, err)
	refresh, err := jwt.GenerateRefreshToken(uuid.NewString(), tenantID.String())
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{name: "no token", header: "", status: fiber.StatusUnauthorized},
		{name: "garbage token", header: "Bearer nope", status: fiber.StatusUnauthorized},
		{name: "refresh token rejected", header: "Bearer " + refresh, status: fiber.StatusUnauthorized},
		{name: "valid token", header: "Bearer " + access, status: fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			if tt.status == fiber.StatusOK {
				body, _ := io.ReadAll(resp.Body)
				assert.Equal(t, tenantID.String(), string(body))
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	jwt := auth.NewJWTManager("secret", time.Hour, time.Hour)
	app := newTestApp(jwt)

	staff, _ := jwt.GenerateToken(uuid.NewString(), uuid.NewString(), "", "staff")
	admin, _ := jwt.GenerateToken(uuid.NewString(), uuid.NewString(), "", "admin")

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+staff)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+admin)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
