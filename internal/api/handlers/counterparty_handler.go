package handlers

import (
	"smart-global-hub/internal/dto"
	"smart-global-hub/internal/models"
	"smart-global-hub/internal/service"
	"smart-global-hub/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CounterpartyHandler serves /agents or /suppliers depending on the
// service it wraps.
type CounterpartyHandler struct {
	service   *service.CounterpartyService
	validator *validator.CustomValidator
	logger    *zap.Logger
	label     string
}

func NewCounterpartyHandler(svc *service.CounterpartyService, v *validator.CustomValidator, logger *zap.Logger) *CounterpartyHandler {
	label := "Agent"
	if svc.Party() == models.PartySupplier {
		label = "Supplier"
	}
	return &CounterpartyHandler{
		service:   svc,
		validator: v,
		logger:    logger,
		label:     label,
	}
}

// List godoc
// @Summary List agents or suppliers
// @Tags counterparties
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Param search query string false "Name filter"
// @Security Bearer
// @Success 200 {object} dto.Response{data=[]dto.CounterpartyResponse}
// @Router /agents [get]
// @Router /suppliers [get]
func (h *CounterpartyHandler) List(c *fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}

	page, err := h.service.List(c.UserContext(), id.TenantID, c.Query("search"), pageRequest(c))
	if err != nil {
		return handleError(c, h.logger, err, "Failed to list "+h.label+"s")
	}
	return respondPage(c, h.label+"s retrieved", page, nil)
}

// Create godoc
// @Summary Create an agent or supplier
// @Tags counterparties
// @Accept json
// @Produce json
// @Param request body dto.CounterpartyRequest true "Counterparty"
// @Security Bearer
// @Success 201 {object} dto.Response{data=dto.CounterpartyResponse}
// @Failure 400 {object} dto.Response
// @Failure 409 {object} dto.Response
// @Router /agents [post]
// @Router /suppliers [post]
func (h *CounterpartyHandler) Create(c *fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}

	var req dto.CounterpartyRequest
	if err := bind(c, h.validator, &req); err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}

	resp, err := h.service.Create(c.UserContext(), id.TenantID, &req)
	if err != nil {
		return handleError(c, h.logger, err, "Failed to create "+h.label)
	}
	return respond(c, fiber.StatusCreated, h.label+" created", resp)
}

// Get godoc
// @Summary Get an agent or supplier
// @Tags counterparties
// @Produce json
// @Param id path string true "ID"
// @Security Bearer
// @Success 200 {object} dto.Response{data=dto.CounterpartyResponse}
// @Failure 404 {object} dto.Response
// @Router /agents/{id} [get]
// @Router /suppliers/{id} [get]
func (h *CounterpartyHandler) Get(c *fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}
	cpID, err := paramID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}

	resp, err := h.service.Get(c.UserContext(), id.TenantID, cpID)
	if err != nil {
		return handleError(c, h.logger, err, "Failed to load "+h.label)
	}
	return respond(c, fiber.StatusOK, h.label+" retrieved", resp)
}

// Update godoc
// @Summary Update an agent or supplier
// @Tags counterparties
// @Accept json
// @Produce json
// @Param id path string true "ID"
// @Param request body dto.CounterpartyRequest true "Counterparty"
// @Security Bearer
// @Success 200 {object} dto.Response{data=dto.CounterpartyResponse}
// @Router /agents/{id} [put]
// @Router /suppliers/{id} [put]
func (h *CounterpartyHandler) Update(c *fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}
	cpID, err := paramID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}

	var req dto.CounterpartyRequest
	if err := bind(c, h.validator, &req); err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}

	resp, err := h.service.Update(c.UserContext(), id.TenantID, cpID, &req)
	if err != nil {
		return handleError(c, h.logger, err, "Failed to update "+h.label)
	}
	return respond(c, fiber.StatusOK, h.label+" updated", resp)
}

// Delete godoc
// @Summary Delete an agent or supplier
// @Description Refused with 409 while transactions reference it.
// @Tags counterparties
// @Produce json
// @Param id path string true "ID"
// @Security Bearer
// @Success 200 {object} dto.Response
// @Failure 409 {object} dto.Response
// @Router /agents/{id} [delete]
// @Router /suppliers/{id} [delete]
func (h *CounterpartyHandler) Delete(c *fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}
	cpID, err := paramID(c, "id")
	if err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}

	if err := h.service.Delete(c.UserContext(), id.TenantID, cpID); err != nil {
		return handleError(c, h.logger, err, "Failed to delete "+h.label)
	}
	return respond(c, fiber.StatusOK, h.label+" deleted", nil)
}
