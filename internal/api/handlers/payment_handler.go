package handlers

import (
	"smart-global-hub/internal/dto"
	"smart-global-hub/internal/models"
	"smart-global-hub/internal/service"
	"smart-global-hub/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PaymentHandler serves the payment and balance routes of one party.
type PaymentHandler struct {
	service   *service.PaymentService
	validator *validator.CustomValidator
	logger    *zap.Logger
	// IDParam names the counterparty in query strings and paths: agentId or supplierId.
	IDParam string
}

func NewPaymentHandler(svc *service.PaymentService, party models.Party, v *validator.CustomValidator, logger *zap.Logger) *PaymentHandler {
	idParam := "agentId"
	if party == models.PartySupplier {
		idParam = "supplierId"
	}
	return &PaymentHandler{
		service:   svc,
		validator: v,
		logger:    logger,
		IDParam:   idParam,
	}
}

// List godoc
// @Summary List payments
// @Tags payments
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Param agentId query string false "Agent ID (agent payments)"
// @Param supplierId query string false "Supplier ID (supplier payments)"
// @Param currency query string false "Currency"
// @Security Bearer
// @Success 200 {object} dto.Response{data=[]dto.PaymentResponse}
// @Router /agent-payments [get]
// @Router /supplier-payments [get]
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}

	cpID, err := queryID(c, h.IDParam)
	if err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}

	page, err := h.service.List(c.UserContext(), id.TenantID, models.PaymentFilter{
		CounterpartyID: cpID,
		Currency:       c.Query("currency"),
	}, pageRequest(c))
	if err != nil {
		return handleError(c, h.logger, err, "Failed to list payments")
	}
	return respondPage(c, "Payments retrieved", page, nil)
}

// Create godoc
// @Summary Record a payment
// @Description Applies the amount to open transactions oldest first, or to transactionIds when given. The remainder is credited to the balance.
// @Tags payments
// @Accept json
// @Produce json
// @Param request body dto.PaymentRequest true "Payment"
// @Security Bearer
// @Success 201 {object} dto.Response{data=dto.PaymentResponse}
// @Failure 400 {object} dto.Response
// @Router /agent-payments [post]
// @Router /supplier-payments [post]
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}

	var req dto.PaymentRequest
	if err := bind(c, h.validator, &req); err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}

	resp, err := h.service.Record(c.UserContext(), id.TenantID, id.UserID, &req)
	if err != nil {
		return handleError(c, h.logger, err, "Failed to record payment")
	}
	return respond(c, fiber.StatusCreated, "Payment recorded", resp)
}

// DirectPayment godoc
// @Summary Record a direct payment
// @Description Credits the whole amount to the balance without settling transactions.
// @Tags payments
// @Accept json
// @Produce json
// @Param request body dto.PaymentRequest true "Payment"
// @Security Bearer
// @Success 201 {object} dto.Response{data=dto.PaymentResponse}
// @Router /agent-payments/directPayment [post]
// @Router /supplier-payments/directPayment [post]
func (h *PaymentHandler) DirectPayment(c *fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}

	var req dto.PaymentRequest
	if err := bind(c, h.validator, &req); err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}

	resp, err := h.service.RecordDirect(c.UserContext(), id.TenantID, id.UserID, &req)
	if err != nil {
		return handleError(c, h.logger, err, "Failed to record payment")
	}
	return respond(c, fiber.StatusCreated, "Payment recorded", resp)
}

// Get godoc
// @Summary Get a payment with its allocations
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Security Bearer
// @Success 200 {object} dto.Response{data=dto.PaymentResponse}
// @Failure 404 {object} dto.Response
// @Router /agent-payments/{id} [get]
// @Router /supplier-payments/{id} [get]
func (h *PaymentHandler) Get(c *fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}
	paymentID, err := paramID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}

	resp, err := h.service.Get(c.UserContext(), id.TenantID, paymentID)
	if err != nil {
		return handleError(c, h.logger, err, "Failed to load payment")
	}
	return respond(c, fiber.StatusOK, "Payment retrieved", resp)
}

// Balances godoc
// @Summary List counterparty balances
// @Tags balances
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Param currency query string false "Currency"
// @Security Bearer
// @Success 200 {object} dto.Response{data=[]dto.BalanceResponse}
// @Router /agent-balance [get]
// @Router /supplier-balance [get]
func (h *PaymentHandler) Balances(c *fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}

	page, err := h.service.Balances(c.UserContext(), id.TenantID, c.Query("currency"), pageRequest(c))
	if err != nil {
		return handleError(c, h.logger, err, "Failed to list balances")
	}
	return respondPage(c, "Balances retrieved", page, nil)
}

// CounterpartyBalances godoc
// @Summary Balances of one counterparty, per currency
// @Tags balances
// @Produce json
// @Param agentId path string false "Agent ID"
// @Param supplierId path string false "Supplier ID"
// @Security Bearer
// @Success 200 {object} dto.Response{data=[]dto.BalanceResponse}
// @Failure 404 {object} dto.Response
// @Router /agent-balance/{agentId} [get]
// @Router /supplier-balance/{supplierId} [get]
func (h *PaymentHandler) CounterpartyBalances(c *fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}
	cpID, err := paramID(c, h.IDParam)
	if err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}

	resp, err := h.service.CounterpartyBalances(c.UserContext(), id.TenantID, cpID)
	if err != nil {
		return handleError(c, h.logger, err, "Failed to load balances")
	}
	return respond(c, fiber.StatusOK, "Balances retrieved", resp)
}
