package handlers

import (
	"strings"

	"smart-global-hub/internal/dto"
	"smart-global-hub/internal/models"
	"smart-global-hub/internal/service"
	"smart-global-hub/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type TransactionHandler struct {
	service   *service.TransactionService
	validator *validator.CustomValidator
	logger    *zap.Logger
}

func NewTransactionHandler(svc *service.TransactionService, v *validator.CustomValidator, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		service:   svc,
		validator: v,
		logger:    logger,
	}
}

// List godoc
// @Summary List transactions
// @Description Paged list with a per quote currency overview of the whole filtered set.
// @Tags transactions
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Param agentId query string false "Agent ID"
// @Param supplierId query string false "Supplier ID"
// @Param currency query string false "Quote currency"
// @Param status query string false "unpaid, partial or paid"
// @Param from query string false "From date (inclusive)"
// @Param to query string false "To date (inclusive)"
// @Security Bearer
// @Success 200 {object} dto.Response{data=[]dto.TransactionResponse,overview=[]dto.TransactionOverview}
// @Router /transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}

	filter, err := h.filter(c)
	if err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}

	page, overview, err := h.service.List(c.UserContext(), id.TenantID, filter, pageRequest(c))
	if err != nil {
		return handleError(c, h.logger, err, "Failed to list transactions")
	}
	return respondPage(c, "Transactions retrieved", page, overview)
}

func (h *TransactionHandler) filter(c *fiber.Ctx) (models.TransactionFilter, error) {
	var (
		f   models.TransactionFilter
		err error
	)
	if f.AgentID, err = queryID(c, "agentId"); err != nil {
		return f, err
	}
	if f.SupplierID, err = queryID(c, "supplierId"); err != nil {
		return f, err
	}
	if f.Status, err = service.ParseStatus(c.Query("status")); err != nil {
		return f, err
	}
	if f.From, err = queryTime(c, "from", false); err != nil {
		return f, err
	}
	if f.To, err = queryTime(c, "to", true); err != nil {
		return f, err
	}
	f.QuoteCurrency = strings.TrimSpace(c.Query("currency"))
	return f, nil
}

// Create godoc
// @Summary Record a transaction
// @Description Omitted rates are taken from the latest exchange and commission rates.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body dto.TransactionRequest true "Transaction"
// @Security Bearer
// @Success 201 {object} dto.Response{data=dto.TransactionResponse}
// @Failure 400 {object} dto.Response
// @Failure 422 {object} dto.Response
// @Router /transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}

	var req dto.TransactionRequest
	if err := bind(c, h.validator, &req); err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}

	resp, err := h.service.Create(c.UserContext(), id.TenantID, id.UserID, &req)
	if err != nil {
		return handleError(c, h.logger, err, "Failed to create transaction")
	}
	return respond(c, fiber.StatusCreated, "Transaction created", resp)
}

// Quote godoc
// @Summary Preview transaction figures
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body dto.QuoteRequest true "Inputs"
// @Security Bearer
// @Success 200 {object} dto.Response{data=dto.QuoteResponse}
// @Router /transactions/quote [post]
func (h *TransactionHandler) Quote(c *fiber.Ctx) error {
	var req dto.QuoteRequest
	if err := bind(c, h.validator, &req); err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}

	resp, err := h.service.Quote(&req)
	if err != nil {
		return handleError(c, h.logger, err, "Quote failed")
	}
	return respond(c, fiber.StatusOK, "Quote calculated", resp)
}

// Get godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Security Bearer
// @Success 200 {object} dto.Response{data=dto.TransactionResponse}
// @Failure 404 {object} dto.Response
// @Router /transactions/{id} [get]
func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}
	txID, err := paramID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}

	resp, err := h.service.Get(c.UserContext(), id.TenantID, txID)
	if err != nil {
		return handleError(c, h.logger, err, "Failed to load transaction")
	}
	return respond(c, fiber.StatusOK, "Transaction retrieved", resp)
}

// Update godoc
// @Summary Update a transaction
// @Description Refused with 409 once a payment was applied.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body dto.TransactionRequest true "Transaction"
// @Security Bearer
// @Success 200 {object} dto.Response{data=dto.TransactionResponse}
// @Failure 409 {object} dto.Response
// @Router /transactions/{id} [put]
func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}
	txID, err := paramID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}

	var req dto.TransactionRequest
	if err := bind(c, h.validator, &req); err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}

	resp, err := h.service.Update(c.UserContext(), id.TenantID, txID, &req)
	if err != nil {
		return handleError(c, h.logger, err, "Failed to update transaction")
	}
	return respond(c, fiber.StatusOK, "Transaction updated", resp)
}

// Delete godoc
// @Summary Delete a transaction
// @Description Refused with 409 once a payment was applied.
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Security Bearer
// @Success 200 {object} dto.Response
// @Failure 409 {object} dto.Response
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}
	txID, err := paramID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}

	if err := h.service.Delete(c.UserContext(), id.TenantID, txID); err != nil {
		return handleError(c, h.logger, err, "Failed to delete transaction")
	}
	return respond(c, fiber.StatusOK, "Transaction deleted", nil)
}
