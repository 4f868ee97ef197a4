package handlers

import (
	"smart-global-hub/internal/models"
	"smart-global-hub/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	service *service.DashboardService
	logger  *zap.Logger
}

func NewDashboardHandler(svc *service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: svc,
		logger:  logger,
	}
}

// TransactionStatistics godoc
// @Summary Transaction totals per quote currency
// @Tags dashboard
// @Produce json
// @Param from query string false "From date (inclusive)"
// @Param to query string false "To date (inclusive)"
// @Security Bearer
// @Success 200 {object} dto.Response{data=[]dto.TransactionOverview}
// @Router /dashboard/transaction-statistics [get]
func (h *DashboardHandler) TransactionStatistics(c *fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}
	from, err := queryTime(c, "from", false)
	if err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}
	to, err := queryTime(c, "to", true)
	if err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}

	resp, err := h.service.TransactionStatistics(c.UserContext(), id.TenantID, from, to)
	if err != nil {
		return handleError(c, h.logger, err, "Failed to load transaction statistics")
	}
	return respond(c, fiber.StatusOK, "Transaction statistics retrieved", resp)
}

// AgentStatistics godoc
// @Summary Dues, payments and credit per agent and currency
// @Tags dashboard
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.Response{data=[]dto.CounterpartyStatisticResponse}
// @Router /dashboard/agent-statistics [get]
func (h *DashboardHandler) AgentStatistics(c *fiber.Ctx) error {
	return h.counterpartyStatistics(c, models.PartyAgent)
}

// SupplierStatistics godoc
// @Summary Dues, payments and credit per supplier and currency
// @Tags dashboard
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.Response{data=[]dto.CounterpartyStatisticResponse}
// @Router /dashboard/supplier-statistics [get]
func (h *DashboardHandler) SupplierStatistics(c *fiber.Ctx) error {
	return h.counterpartyStatistics(c, models.PartySupplier)
}

func (h *DashboardHandler) counterpartyStatistics(c *fiber.Ctx, party models.Party) error {
	id, err := identity(c)
	if err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}

	resp, err := h.service.CounterpartyStatistics(c.UserContext(), id.TenantID, party)
	if err != nil {
		return handleError(c, h.logger, err, "Failed to load "+string(party)+" statistics")
	}
	return respond(c, fiber.StatusOK, "Statistics retrieved", resp)
}

// EarningsStatistics godoc
// @Summary Daily earnings per quote currency
// @Tags dashboard
// @Produce json
// @Param days query int false "Days back, max 365" default(30)
// @Security Bearer
// @Success 200 {object} dto.Response{data=[]dto.DailyEarningsResponse}
// @Router /dashboard/earnings-statistics [get]
func (h *DashboardHandler) EarningsStatistics(c *fiber.Ctx) error {
	id, err := identity(c)
	if err != nil {
		return handleError(c, h.logger, err, "Request failed")
	}

	resp, err := h.service.EarningsStatistics(c.UserContext(), id.TenantID, c.QueryInt("days", service.DefaultEarningsDays))
	if err != nil {
		return handleError(c, h.logger, err, "Failed to load earnings")
	}
	return respond(c, fiber.StatusOK, "Earnings retrieved", resp)
}
