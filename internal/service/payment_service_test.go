package service_test

import (
	"context"
	"testing"
	"time"

	"smart-global-hub/internal/dto"
	"smart-global-hub/internal/ledger"
	"smart-global-hub/internal/models"
	"smart-global-hub/internal/service"
	mock_service "smart-global-hub/internal/service/mocks"
	"smart-global-hub/pkg/cache"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type paymentFixture struct {
	transactor     *mock_service.MockTransactor
	txStore        *mock_service.MockTransactionStore
	payments       *mock_service.MockPaymentStore
	balances       *mock_service.MockBalanceStore
	counterparties *mock_service.MockCounterpartyStore
	svc            *service.PaymentService
}

func newPaymentFixture(t *testing.T, party models.Party) *paymentFixture {
	ctrl := gomock.NewController(t)
	logger := zap.NewNop()

	f := &paymentFixture{
		transactor:     mock_service.NewMockTransactor(ctrl),
		txStore:        mock_service.NewMockTransactionStore(ctrl),
		payments:       mock_service.NewMockPaymentStore(ctrl),
		balances:       mock_service.NewMockBalanceStore(ctrl),
		counterparties: mock_service.NewMockCounterpartyStore(ctrl),
	}
	f.svc = service.NewPaymentService(
		f.transactor,
		f.txStore,
		f.payments,
		f.balances,
		service.NewCounterpartyService(party, f.counterparties, cache.NewMemory(), logger),
		cache.NewMemory(),
		nil,
		logger,
	)
	return f
}

// runInline executes the InTx callback directly.
func (f *paymentFixture) runInline() {
	f.transactor.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestPaymentService_Record_AllocatesOldestFirst(t *testing.T) {
	f := newPaymentFixture(t, models.PartyAgent)
	tenantID, userID, agentID := uuid.New(), uuid.New(), uuid.New()

	older := &models.Transaction{
		ID: uuid.New(), TenantID: tenantID, AgentID: agentID,
		AgentDue: decimal.NewFromInt(100), AgentPaid: decimal.Zero,
	}
	newer := &models.Transaction{
		ID: uuid.New(), TenantID: tenantID, AgentID: agentID,
		AgentDue: decimal.NewFromInt(50), AgentPaid: decimal.NewFromInt(20),
	}

	f.counterparties.EXPECT().GetByID(gomock.Any(), tenantID, agentID).Return(&models.Counterparty{ID: agentID}, nil)
	f.runInline()
	f.txStore.EXPECT().LockOpen(gomock.Any(), tenantID, models.PartyAgent, agentID, "USD", gomock.Any()).
		Return([]*models.Transaction{older, newer}, nil)

	settled := map[uuid.UUID]string{}
	f.txStore.EXPECT().SetPaid(gomock.Any(), tenantID, models.PartyAgent, gomock.Any(), gomock.Any(), ledger.StatusPaid).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ models.Party, id uuid.UUID, paid decimal.Decimal, _ ledger.Status) error {
			settled[id] = paid.String()
			return nil
		}).Times(2)

	var stored *models.Payment
	f.payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *models.Payment) error {
		stored = p
		return nil
	})

	var credited decimal.Decimal
	f.balances.EXPECT().Credit(gomock.Any(), tenantID, models.PartyAgent, agentID, "USD", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ models.Party, _ uuid.UUID, _ string, amount decimal.Decimal) error {
			credited = amount
			return nil
		})

	got, err := f.svc.Record(context.Background(), tenantID, userID, &dto.PaymentRequest{
		CounterpartyID: agentID.String(),
		Currency:       "usd",
		Amount:         decimal.NewFromInt(150),
	})
	require.NoError(t, err)

	assert.Equal(t, map[uuid.UUID]string{older.ID: "100", newer.ID: "50"}, settled)
	assert.Equal(t, "20", credited.String())

	require.NotNil(t, stored)
	assert.False(t, stored.Direct)
	assert.Equal(t, "130", stored.AppliedAmount.String())
	assert.Equal(t, "20", stored.CreditedAmount.String())

	require.Len(t, got.Allocations, 2)
	assert.Equal(t, older.ID.String(), got.Allocations[0].TransactionID)
	assert.Equal(t, "100", got.Allocations[0].Amount.String())
	assert.Equal(t, "30", got.Allocations[1].Amount.String())
}

func TestPaymentService_Record_PartialLeavesNoCredit(t *testing.T) {
	f := newPaymentFixture(t, models.PartySupplier)
	tenantID, supplierID := uuid.New(), uuid.New()

	open := &models.Transaction{
		ID: uuid.New(), TenantID: tenantID, SupplierID: supplierID,
		SupplierDue: decimal.NewFromInt(1449), SupplierPaid: decimal.Zero,
	}

	f.counterparties.EXPECT().GetByID(gomock.Any(), tenantID, supplierID).Return(&models.Counterparty{ID: supplierID}, nil)
	f.runInline()
	f.txStore.EXPECT().LockOpen(gomock.Any(), tenantID, models.PartySupplier, supplierID, "USD", []uuid.UUID{open.ID}).
		Return([]*models.Transaction{open}, nil)
	f.txStore.EXPECT().SetPaid(gomock.Any(), tenantID, models.PartySupplier, open.ID, gomock.Any(), ledger.StatusPartial).Return(nil)
	f.payments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	got, err := f.svc.Record(context.Background(), tenantID, uuid.New(), &dto.PaymentRequest{
		CounterpartyID: supplierID.String(),
		Currency:       "USD",
		Amount:         decimal.NewFromInt(1000),
		TransactionIDs: []string{open.ID.String(), open.ID.String()},
	})
	require.NoError(t, err)

	assert.Equal(t, "supplier", got.Party)
	assert.Equal(t, "1000", got.AppliedAmount.String())
	assert.True(t, got.CreditedAmount.IsZero())
}

func TestPaymentService_Record_RejectsUnknownTransaction(t *testing.T) {
	f := newPaymentFixture(t, models.PartyAgent)
	tenantID, agentID := uuid.New(), uuid.New()

	f.counterparties.EXPECT().GetByID(gomock.Any(), tenantID, agentID).Return(&models.Counterparty{ID: agentID}, nil)
	f.runInline()
	f.txStore.EXPECT().LockOpen(gomock.Any(), tenantID, models.PartyAgent, agentID, "EUR", gomock.Any()).Return(nil, nil)

	_, err := f.svc.Record(context.Background(), tenantID, uuid.New(), &dto.PaymentRequest{
		CounterpartyID: agentID.String(),
		Currency:       "EUR",
		Amount:         decimal.NewFromInt(10),
		TransactionIDs: []string{uuid.NewString()},
	})
	assert.ErrorIs(t, err, service.ErrInvalidAllocation)
}

func TestPaymentService_Record_UnknownCounterparty(t *testing.T) {
	f := newPaymentFixture(t, models.PartyAgent)
	tenantID, agentID := uuid.New(), uuid.New()

	f.counterparties.EXPECT().GetByID(gomock.Any(), tenantID, agentID).Return(nil, service.ErrNotFound)

	_, err := f.svc.Record(context.Background(), tenantID, uuid.New(), &dto.PaymentRequest{
		CounterpartyID: agentID.String(),
		Currency:       "USD",
		Amount:         decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestPaymentService_RecordDirect_CreditsEverything(t *testing.T) {
	f := newPaymentFixture(t, models.PartyAgent)
	tenantID, agentID := uuid.New(), uuid.New()
	paidAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	f.counterparties.EXPECT().GetByID(gomock.Any(), tenantID, agentID).Return(&models.Counterparty{ID: agentID}, nil)
	f.runInline()
	f.payments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.balances.EXPECT().Credit(gomock.Any(), tenantID, models.PartyAgent, agentID, "AED", gomock.Any()).Return(nil)

	got, err := f.svc.RecordDirect(context.Background(), tenantID, uuid.New(), &dto.PaymentRequest{
		CounterpartyID: agentID.String(),
		Currency:       "aed",
		Amount:         decimal.RequireFromString("250.75"),
		PaidAt:         &paidAt,
	})
	require.NoError(t, err)

	assert.True(t, got.Direct)
	assert.True(t, got.AppliedAmount.IsZero())
	assert.Equal(t, "250.75", got.CreditedAmount.String())
	assert.Equal(t, "2024-03-01T12:00:00Z", got.PaidAt)
	assert.Empty(t, got.Allocations)
}

func TestPaymentService_RecordDirect_RejectsTargets(t *testing.T) {
	f := newPaymentFixture(t, models.PartyAgent)

	_, err := f.svc.RecordDirect(context.Background(), uuid.New(), uuid.New(), &dto.PaymentRequest{
		CounterpartyID: uuid.NewString(),
		Currency:       "USD",
		Amount:         decimal.NewFromInt(1),
		TransactionIDs: []string{uuid.NewString()},
	})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestPaymentService_CounterpartyBalances(t *testing.T) {
	f := newPaymentFixture(t, models.PartySupplier)
	tenantID, supplierID := uuid.New(), uuid.New()

	f.counterparties.EXPECT().GetByID(gomock.Any(), tenantID, supplierID).Return(&models.Counterparty{ID: supplierID}, nil)
	f.balances.EXPECT().ListByCounterparty(gomock.Any(), tenantID, models.PartySupplier, supplierID).Return([]*models.Balance{
		{Party: models.PartySupplier, CounterpartyID: supplierID, Currency: "USD", Amount: decimal.NewFromInt(5)},
		{Party: models.PartySupplier, CounterpartyID: supplierID, Currency: "CNY", Amount: decimal.NewFromInt(7)},
	}, nil)

	got, err := f.svc.CounterpartyBalances(context.Background(), tenantID, supplierID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "CNY", got[1].Currency)
}
