package handlers

import (
	"smart-global-hub/internal/dto"
	"smart-global-hub/internal/service"
	"smart-global-hub/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type RateHandler struct {
	service   *service.RateService
	validator *validator.CustomValidator
	logger    *zap.Logger
}

func NewRateHandler(svc *service.RateService, v *validator.CustomValidator, logger *zap.Logger) *RateHandler {
	return &RateHandler{
		service:   svc,
		validator: v,
		logger:    logger,
	}
}

// ListExchangeRates godoc
// @Summary List exchange rates, newest first
// @Tags rates
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Param base query string false "Base currency"
// @Param quote query string false "Quote currency"
// @Security Bearer
// @Success 200 {object} dto.Response{data=[]dto.ExchangeRateResponse}
// @Router /exchange-rates [get]
func (h *RateHandler) ListExchangeRates(c *fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}

	page, err := h.service.ListExchangeRates(c.UserContext(), id.TenantID, c.Query("base"), c.Query("quote"), pageRequest(c))
	if err != nil {
		return handleError(c, h.logger, err, "Failed to list exchange rates")
	}
	return respondPage(c, "Exchange rates retrieved", page, nil)
}

// CreateExchangeRate godoc
// @Summary Publish an exchange rate
// @Tags rates
// @Accept json
// @Produce json
// @Param request body dto.ExchangeRateRequest true "Rate"
// @Security Bearer
// @Success 201 {object} dto.Response{data=dto.ExchangeRateResponse}
// @Router /exchange-rates [post]
func (h *RateHandler) CreateExchangeRate(c *fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}

	var req dto.ExchangeRateRequest
	if err := bind(c, h.validator, &req); err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}

	resp, err := h.service.CreateExchangeRate(c.UserContext(), id.TenantID, id.UserID, &req)
	if err != nil {
		return handleError(c, h.logger, err, "Failed to create exchange rate")
	}
	return respond(c, fiber.StatusCreated, "Exchange rate created", resp)
}

// LatestExchangeRate godoc
// @Summary Latest exchange rate of a pair
// @Tags rates
// @Produce json
// @Param base query string true "Base currency"
// @Param quote query string true "Quote currency"
// @Security Bearer
// @Success 200 {object} dto.Response{data=dto.ExchangeRateResponse}
// @Failure 422 {object} dto.Response
// @Router /exchange-rates/latest [get]
func (h *RateHandler) LatestExchangeRate(c *fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}

	base, quote := c.Query("base"), c.Query("quote")
	if base == "" || quote == "" {
		return fail(c, fiber.StatusBadRequest, "base and quote are required")
	}

	resp, err := h.service.LatestExchangeRate(c.UserContext(), id.TenantID, base, quote)
	if err != nil {
		return handleError(c, h.logger, err, "Failed to load exchange rate")
	}
	return respond(c, fiber.StatusOK, "Exchange rate retrieved", resp)
}

// ListCommissionRates godoc
// @Summary List commission rates, newest first
// @Tags rates
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Security Bearer
// @Success 200 {object} dto.Response{data=[]dto.CommissionRateResponse}
// @Router /commission-rates [get]
func (h *RateHandler) ListCommissionRates(c *fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}

	page, err := h.service.ListCommissionRates(c.UserContext(), id.TenantID, pageRequest(c))
	if err != nil {
		return handleError(c, h.logger, err, "Failed to list commission rates")
	}
	return respondPage(c, "Commission rates retrieved", page, nil)
}

// CreateCommissionRate godoc
// @Summary Publish a commission rate (percent)
// @Tags rates
// @Accept json
// @Produce json
// @Param request body dto.CommissionRateRequest true "Rate"
// @Security Bearer
// @Success 201 {object} dto.Response{data=dto.CommissionRateResponse}
// @Router /commission-rates [post]
func (h *RateHandler) CreateCommissionRate(c *fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}

	var req dto.CommissionRateRequest
	if err := bind(c, h.validator, &req); err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}

	resp, err := h.service.CreateCommissionRate(c.UserContext(), id.TenantID, id.UserID, &req)
	if err != nil {
		return handleError(c, h.logger, err, "Failed to create commission rate")
	}
	return respond(c, fiber.StatusCreated, "Commission rate created", resp)
}

// LatestCommissionRate godoc
// @Summary Latest commission rate
// @Tags rates
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.Response{data=dto.CommissionRateResponse}
// @Failure 422 {object} dto.Response
// @Router /commission-rates/latest [get]
func (h *RateHandler) LatestCommissionRate(c *fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}

	resp, err := h.service.LatestCommissionRate(c.UserContext(), id.TenantID)
	if err != nil {
		return handleError(c, h.logger, err, "Failed to load commission rate")
	}
	return respond(c, fiber.StatusOK, "Commission rate retrieved", resp)
}
