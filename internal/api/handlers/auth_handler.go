package handlers

import (
	"smart-global-hub/internal/dto"
	"smart-global-hub/internal/service"
	"smart-global-hub/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
	validator   *validator.CustomValidator
	logger      *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, v *validator.CustomValidator, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   v,
		logger:      logger,
	}
}

// Login godoc
// @Summary Login user
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login request"
// @Success 200 {object} dto.Response{data=dto.AuthResponse}
// @Failure 400 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := bind(c, h.validator, &req); err != nil {
		return handleError(c, h.logger, err, "Login failed")
	}

	resp, err := h.authService.Login(c.UserContext(), &req)
	if err != nil {
		h.logger.Warn("Login rejected", zap.String("email", req.Email))
		return handleError(c, h.logger, err, "Login failed")
	}

	return respond(c, fiber.StatusOK, "Login successful", resp)
}

// RefreshToken godoc
// @Summary Refresh access token
// @Description Refresh access token using refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token request"
// @Success 200 {object} dto.Response{data=dto.AuthResponse}
// @Failure 401 {object} dto.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	var req dto.RefreshTokenRequest
	if err := bind(c, h.validator, &req); err != nil {
		return handleError(c, h.logger, err, "Token refresh failed")
	}

	resp, err := h.authService.RefreshToken(c.UserContext(), req.RefreshToken)
	if err != nil {
		return handleError(c, h.logger, err, "Token refresh failed")
	}

	return respond(c, fiber.StatusOK, "Token refreshed", resp)
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.Response{data=dto.UserResponse}
// @Failure 401 {object} dto.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}

	resp, err := h.authService.Me(c.UserContext(), id.UserID)
	if err != nil {
		return handleError(c, h.logger, err, "Failed to load user")
	}

	return respond(c, fiber.StatusOK, "User retrieved", resp)
}

// CreateUser godoc
// @Summary Create a user in the caller's tenant
// @Description Admin only. Role defaults to staff.
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "User"
// @Security Bearer
// @Success 201 {object} dto.Response{data=dto.UserResponse}
// @Failure 400 {object} dto.Response
// @Failure 403 {object} dto.Response
// @Failure 409 {object} dto.Response
// @Router /users [post]
func (h *AuthHandler) CreateUser(c *fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}

	var req dto.CreateUserRequest
	if err := bind(c, h.validator, &req); err != nil {
		return handleError(c, h.logger, err, "User creation failed")
	}

	resp, err := h.authService.CreateUser(c.UserContext(), id.TenantID, &req)
	if err != nil {
		return handleError(c, h.logger, err, "User creation failed")
	}

	return respond(c, fiber.StatusCreated, "User created", resp)
}
