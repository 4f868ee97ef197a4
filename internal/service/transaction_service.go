package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"smart-global-hub/internal/calc"
	"smart-global-hub/internal/dto"
	"smart-global-hub/internal/ledger"
	"smart-global-hub/internal/models"
	"smart-global-hub/internal/repository"
	"smart-global-hub/pkg/cache"
	"smart-global-hub/pkg/metrics"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type TransactionService struct {
	txRepo    TransactionStore
	agents    *CounterpartyService
	suppliers *CounterpartyService
	rates     *RateService
	cache     cache.Cache
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

func NewTransactionService(
	txRepo TransactionStore,
	agents *CounterpartyService,
	suppliers *CounterpartyService,
	rates *RateService,
	c cache.Cache,
	m *metrics.Metrics,
	logger *zap.Logger,
) *TransactionService {
	return &TransactionService{
		txRepo:    txRepo,
		agents:    agents,
		suppliers: suppliers,
		rates:     rates,
		cache:     c,
		metrics:   m,
		logger:    logger,
	}
}

// Quote computes transaction figures without persisting anything.
func (s *TransactionService) Quote(req *dto.QuoteRequest) (*dto.QuoteResponse, error) {
	in := calc.Input{
		BaseAmount:     req.BaseAmount,
		BuyRate:        req.BuyRate,
		SellRate:       req.SellRate,
		CommissionRate: req.CommissionRate,
	}
	if err := calc.Validate(in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	f := calc.Compute(in)
	return &dto.QuoteResponse{
		QuoteAmountBuy:  f.QuoteAmountBuy,
		QuoteAmountSell: f.QuoteAmountSell,
		Commission:      f.Commission,
		Profit:          f.Profit,
		TotalEarnings:   f.TotalEarnings,
		AgentDue:        f.AgentDue(),
		SupplierDue:     f.SupplierDue(),
	}, nil
}

func (s *TransactionService) Create(ctx context.Context, tenantID, userID uuid.UUID, req *dto.TransactionRequest) (*dto.TransactionResponse, error) {
	now := time.Now()
	tx := &models.Transaction{
		ID:           uuid.New(),
		TenantID:     tenantID,
		AgentPaid:    decimal.Zero,
		SupplierPaid: decimal.Zero,
		CreatedBy:    userID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.applyRequest(ctx, tx, req); err != nil {
		return nil, err
	}

	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, writeError(err, "create transaction")
	}

	s.metrics.TransactionCreated(tx.QuoteCurrency)
	invalidateDashboard(ctx, s.cache, tenantID, s.logger)
	s.logger.Info("Transaction recorded",
		zap.String("id", tx.ID.String()),
		zap.String("tenant_id", tenantID.String()),
		zap.String("pair", tx.BaseCurrency+"/"+tx.QuoteCurrency),
		zap.String("base_amount", tx.BaseAmount.String()),
		zap.String("total_earnings", tx.TotalEarnings.String()),
	)

	resp := toTransactionResponse(tx)
	return &resp, nil
}

func (s *TransactionService) Get(ctx context.Context, tenantID, id uuid.UUID) (*dto.TransactionResponse, error) {
	tx, err := s.txRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, notFound(err)
	}
	resp := toTransactionResponse(tx)
	return &resp, nil
}

func (s *TransactionService) List(ctx context.Context, tenantID uuid.UUID, f models.TransactionFilter, page dto.PageRequest) (*dto.Page[dto.TransactionResponse], []dto.TransactionOverview, error) {
	f.QuoteCurrency = strings.ToUpper(f.QuoteCurrency)

	items, total, err := s.txRepo.List(ctx, tenantID, f, uint64(page.Limit), page.Offset())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	overview, err := s.txRepo.Overview(ctx, tenantID, f)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to aggregate transactions: %w", err)
	}

	out := &dto.Page[dto.TransactionResponse]{Data: make([]dto.TransactionResponse, 0, len(items)), Meta: page.Meta(total)}
	for _, tx := range items {
		out.Data = append(out.Data, toTransactionResponse(tx))
	}

	ov := make([]dto.TransactionOverview, 0, len(overview))
	for _, o := range overview {
		ov = append(ov, toOverviewResponse(o))
	}
	return out, ov, nil
}

// Update recomputes the figures of a transaction without payments.
func (s *TransactionService) Update(ctx context.Context, tenantID, id uuid.UUID, req *dto.TransactionRequest) (*dto.TransactionResponse, error) {
	tx, err := s.txRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, notFound(err)
	}
	if tx.HasPayments() {
		return nil, ErrTransactionLocked
	}

	if err := s.applyRequest(ctx, tx, req); err != nil {
		return nil, err
	}
	tx.UpdatedAt = time.Now()

	if err := s.txRepo.Update(ctx, tx); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrTransactionLocked
		}
		return nil, writeError(err, "update transaction")
	}

	invalidateDashboard(ctx, s.cache, tenantID, s.logger)
	resp := toTransactionResponse(tx)
	return &resp, nil
}

func (s *TransactionService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	tx, err := s.txRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return notFound(err)
	}
	if tx.HasPayments() {
		return ErrTransactionLocked
	}

	if err := s.txRepo.Delete(ctx, tenantID, id); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return ErrTransactionLocked
		}
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	invalidateDashboard(ctx, s.cache, tenantID, s.logger)
	s.logger.Info("Transaction deleted", zap.String("id", id.String()), zap.String("tenant_id", tenantID.String()))
	return nil
}

// applyRequest validates the counterparties, resolves missing rates and
// recomputes every derived figure of tx.
func (s *TransactionService) applyRequest(ctx context.Context, tx *models.Transaction, req *dto.TransactionRequest) error {
	agentID, err := uuid.Parse(req.AgentID)
	if err != nil {
		return fmt.Errorf("%w: agentId", ErrInvalidInput)
	}
	supplierID, err := uuid.Parse(req.SupplierID)
	if err != nil {
		return fmt.Errorf("%w: supplierId", ErrInvalidInput)
	}

	if err := s.agents.Exists(ctx, tx.TenantID, agentID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("%w: agent %s does not exist", ErrInvalidInput, agentID)
		}
		return err
	}
	if err := s.suppliers.Exists(ctx, tx.TenantID, supplierID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return fmt.Errorf("%w: supplier %s does not exist", ErrInvalidInput, supplierID)
		}
		return err
	}

	tx.AgentID = agentID
	tx.SupplierID = supplierID
	tx.BaseCurrency = strings.ToUpper(req.BaseCurrency)
	tx.QuoteCurrency = strings.ToUpper(req.QuoteCurrency)
	tx.BaseAmount = req.BaseAmount
	tx.Note = req.Note

	if req.BuyRate == nil || req.SellRate == nil {
		latest, err := s.rates.LatestExchangeRate(ctx, tx.TenantID, tx.BaseCurrency, tx.QuoteCurrency)
		if err != nil {
			return err
		}
		tx.BuyRate, tx.SellRate = latest.BuyRate, latest.SellRate
	}
	if req.BuyRate != nil {
		tx.BuyRate = *req.BuyRate
	}
	if req.SellRate != nil {
		tx.SellRate = *req.SellRate
	}

	switch {
	case req.CommissionRate != nil:
		tx.CommissionRate = *req.CommissionRate
	default:
		latest, err := s.rates.LatestCommissionRate(ctx, tx.TenantID)
		switch {
		case errors.Is(err, ErrRateNotFound):
			tx.CommissionRate = decimal.Zero
		case err != nil:
			return err
		default:
			tx.CommissionRate = latest.Rate
		}
	}

	in := tx.CalcInput()
	if err := calc.Validate(in); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	tx.ApplyFigures(calc.Compute(in))
	return nil
}

// ParseStatus parses the status query parameter; empty means any.
func ParseStatus(raw string) (ledger.Status, error) {
	switch s := ledger.Status(strings.ToLower(raw)); s {
	case "", ledger.StatusUnpaid, ledger.StatusPartial, ledger.StatusPaid:
		return s, nil
	default:
		return "", fmt.Errorf("%w: unknown status %q", ErrInvalidInput, raw)
	}
}
