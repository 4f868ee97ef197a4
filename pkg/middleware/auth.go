package middleware

import (
	"strings"

	"smart-global-hub/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const identityKey = "identity"

// Identity is the authenticated caller of a request. Every tenant-scoped
// query takes its TenantID from here, never from the request body.
type Identity struct {
	UserID   uuid.UUID
	TenantID uuid.UUID
	Email    string
	Role     string
}

func (i *Identity) IsAdmin() bool {
	return i.Role == "admin"
}

func AuthMiddleware(jwtManager *auth.JWTManager, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get(fiber.HeaderAuthorization)
		if token == "" {
			logger.Warn("Missing authorization token", zap.String("path", c.Path()))
			return unauthorized(c, "Authorization token required")
		}
		token = strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))

		claims, err := jwtManager.ValidateToken(token)
		if err != nil {
			logger.Warn("Invalid token", zap.Error(err))
			return unauthorized(c, "Invalid or expired token")
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			return unauthorized(c, "Invalid or expired token")
		}
		tenantID, err := uuid.Parse(claims.TenantID)
		if err != nil {
			return unauthorized(c, "Invalid or expired token")
		}

		c.Locals(identityKey, &Identity{
			UserID:   userID,
			TenantID: tenantID,
			Email:    claims.Email,
			Role:     claims.Role,
		})

		return c.Next()
	}
}

// RequireRole must run after AuthMiddleware.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := GetIdentity(c)
		if err != nil {
			return unauthorized(c, "Unauthorized")
		}
		if id.Role != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"statusCode": fiber.StatusForbidden,
				"success":    false,
				"message":    "Insufficient permissions",
			})
		}
		return c.Next()
	}
}

func GetIdentity(c *fiber.Ctx) (*Identity, error) {
	id, ok := c.Locals(identityKey).(*Identity)
	if !ok || id == nil {
		return nil, fiber.ErrUnauthorized
	}
	return id, nil
}

// SetIdentity is used by handler tests that bypass token parsing.
func SetIdentity(c *fiber.Ctx, id *Identity) {
	c.Locals(identityKey, id)
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"statusCode": fiber.StatusUnauthorized,
		"success":    false,
		"message":    msg,
	})
}
