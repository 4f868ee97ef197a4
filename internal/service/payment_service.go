package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"smart-global-hub/internal/dto"
	"smart-global-hub/internal/ledger"
	"smart-global-hub/internal/models"
	"smart-global-hub/pkg/cache"
	"smart-global-hub/pkg/metrics"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PaymentService records payments of one party (agents pay us, we pay
// suppliers) and keeps transaction settlement and balances in step.
type PaymentService struct {
	party          models.Party
	transactor     Transactor
	txRepo         TransactionStore
	payments       PaymentStore
	balances       BalanceStore
	counterparties *CounterpartyService
	cache          cache.Cache
	metrics        *metrics.Metrics
	logger         *zap.Logger
}

func NewPaymentService(
	transactor Transactor,
	txRepo TransactionStore,
	payments PaymentStore,
	balances BalanceStore,
	counterparties *CounterpartyService,
	c cache.Cache,
	m *metrics.Metrics,
	logger *zap.Logger,
) *PaymentService {
	party := counterparties.Party()
	return &PaymentService{
		party:          party,
		transactor:     transactor,
		txRepo:         txRepo,
		payments:       payments,
		balances:       balances,
		counterparties: counterparties,
		cache:          c,
		metrics:        m,
		logger:         logger.With(zap.String("party", string(party))),
	}
}

// Record applies the payment to open transactions oldest first, limited to
// req.TransactionIDs when given. Whatever is left is credited to the
// counterparty balance.
func (s *PaymentService) Record(ctx context.Context, tenantID, userID uuid.UUID, req *dto.PaymentRequest) (*dto.PaymentResponse, error) {
	return s.record(ctx, tenantID, userID, req, false)
}

// RecordDirect credits the whole amount to the balance without touching
// any transaction.
func (s *PaymentService) RecordDirect(ctx context.Context, tenantID, userID uuid.UUID, req *dto.PaymentRequest) (*dto.PaymentResponse, error) {
	if len(req.TransactionIDs) > 0 {
		return nil, fmt.Errorf("%w: direct payments cannot target transactions", ErrInvalidInput)
	}
	return s.record(ctx, tenantID, userID, req, true)
}

func (s *PaymentService) record(ctx context.Context, tenantID, userID uuid.UUID, req *dto.PaymentRequest, direct bool) (*dto.PaymentResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}

	counterpartyID, err := uuid.Parse(req.CounterpartyID)
	if err != nil {
		return nil, fmt.Errorf("%w: counterpartyId", ErrInvalidInput)
	}
	ids, err := parseIDs(req.TransactionIDs)
	if err != nil {
		return nil, err
	}

	if err := s.counterparties.Exists(ctx, tenantID, counterpartyID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: %s %s does not exist", ErrInvalidInput, s.party, counterpartyID)
		}
		return nil, err
	}

	now := time.Now()
	payment := &models.Payment{
		ID:             uuid.New(),
		TenantID:       tenantID,
		Party:          s.party,
		CounterpartyID: counterpartyID,
		Currency:       strings.ToUpper(req.Currency),
		Amount:         req.Amount,
		Direct:         direct,
		Reference:      req.Reference,
		Note:           req.Note,
		PaidAt:         now,
		CreatedBy:      userID,
		CreatedAt:      now,
	}
	if req.PaidAt != nil {
		payment.PaidAt = *req.PaidAt
	}

	err = s.transactor.InTx(ctx, func(ctx context.Context) error {
		remainder := payment.Amount
		if !direct {
			allocations, rest, err := s.allocate(ctx, payment, ids)
			if err != nil {
				return err
			}
			payment.Allocations = allocations
			remainder = rest
		}

		payment.AppliedAmount = payment.Amount.Sub(remainder)
		payment.CreditedAmount = remainder

		if err := s.payments.Create(ctx, payment); err != nil {
			return writeError(err, "store payment")
		}

		if remainder.IsPositive() {
			if err := s.balances.Credit(ctx, tenantID, s.party, counterpartyID, payment.Currency, remainder); err != nil {
				return fmt.Errorf("failed to credit balance: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.PaymentRecorded(string(s.party), direct)
	invalidateDashboard(ctx, s.cache, tenantID, s.logger)
	s.logger.Info("Payment recorded",
		zap.String("id", payment.ID.String()),
		zap.String("tenant_id", tenantID.String()),
		zap.String("counterparty_id", counterpartyID.String()),
		zap.String("currency", payment.Currency),
		zap.String("amount", payment.Amount.String()),
		zap.String("applied", payment.AppliedAmount.String()),
		zap.String("credited", payment.CreditedAmount.String()),
		zap.Bool("direct", direct),
	)

	resp := toPaymentResponse(payment)
	return &resp, nil
}

// allocate locks the open transactions of the counterparty and settles
// them in creation order. It must run inside a database transaction.
func (s *PaymentService) allocate(ctx context.Context, payment *models.Payment, ids []uuid.UUID) ([]models.PaymentAllocation, decimal.Decimal, error) {
	open, err := s.txRepo.LockOpen(ctx, payment.TenantID, s.party, payment.CounterpartyID, payment.Currency, ids)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to lock open transactions: %w", err)
	}

	byID := make(map[uuid.UUID]*models.Transaction, len(open))
	items := make([]ledger.Open, 0, len(open))
	for _, tx := range open {
		byID[tx.ID] = tx
		items = append(items, ledger.Open{ID: tx.ID, Outstanding: tx.Outstanding(s.party)})
	}

	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			return nil, decimal.Zero, fmt.Errorf("%w: transaction %s is settled or does not belong to this %s in %s",
				ErrInvalidAllocation, id, s.party, payment.Currency)
		}
	}

	allocations, remainder, err := ledger.Allocate(payment.Amount, items)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	out := make([]models.PaymentAllocation, 0, len(allocations))
	for _, a := range allocations {
		tx := byID[a.TransactionID]

		due, paid := tx.AgentDue, tx.AgentPaid
		if s.party == models.PartySupplier {
			due, paid = tx.SupplierDue, tx.SupplierPaid
		}
		paid = paid.Add(a.Amount)

		if err := s.txRepo.SetPaid(ctx, tx.TenantID, s.party, tx.ID, paid, ledger.StatusFor(paid, due)); err != nil {
			return nil, decimal.Zero, fmt.Errorf("failed to settle transaction %s: %w", tx.ID, err)
		}

		out = append(out, models.PaymentAllocation{
			PaymentID:     payment.ID,
			TransactionID: a.TransactionID,
			Amount:        a.Amount,
		})
	}

	return out, remainder, nil
}

func (s *PaymentService) Get(ctx context.Context, tenantID, id uuid.UUID) (*dto.PaymentResponse, error) {
	p, err := s.payments.GetByID(ctx, tenantID, s.party, id)
	if err != nil {
		return nil, notFound(err)
	}
	resp := toPaymentResponse(p)
	return &resp, nil
}

func (s *PaymentService) List(ctx context.Context, tenantID uuid.UUID, f models.PaymentFilter, page dto.PageRequest) (*dto.Page[dto.PaymentResponse], error) {
	f.Currency = strings.ToUpper(f.Currency)

	items, total, err := s.payments.List(ctx, tenantID, s.party, f, uint64(page.Limit), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	out := &dto.Page[dto.PaymentResponse]{Data: make([]dto.PaymentResponse, 0, len(items)), Meta: page.Meta(total)}
	for _, p := range items {
		out.Data = append(out.Data, toPaymentResponse(p))
	}
	return out, nil
}

// Balances lists the credit every counterparty of this party holds.
func (s *PaymentService) Balances(ctx context.Context, tenantID uuid.UUID, currency string, page dto.PageRequest) (*dto.Page[dto.BalanceResponse], error) {
	items, total, err := s.balances.List(ctx, tenantID, s.party, strings.ToUpper(currency), uint64(page.Limit), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list balances: %w", err)
	}

	out := &dto.Page[dto.BalanceResponse]{Data: make([]dto.BalanceResponse, 0, len(items)), Meta: page.Meta(total)}
	for _, b := range items {
		out.Data = append(out.Data, toBalanceResponse(b))
	}
	return out, nil
}

// CounterpartyBalances returns one row per currency for a single counterparty.
func (s *PaymentService) CounterpartyBalances(ctx context.Context, tenantID, counterpartyID uuid.UUID) ([]dto.BalanceResponse, error) {
	if err := s.counterparties.Exists(ctx, tenantID, counterpartyID); err != nil {
		return nil, err
	}

	items, err := s.balances.ListByCounterparty(ctx, tenantID, s.party, counterpartyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load balances: %w", err)
	}

	out := make([]dto.BalanceResponse, 0, len(items))
	for _, b := range items {
		out = append(out, toBalanceResponse(b))
	}
	return out, nil
}

func parseIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	seen := make(map[uuid.UUID]struct{}, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, fmt.Errorf("%w: transaction id %q", ErrInvalidInput, r)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}
