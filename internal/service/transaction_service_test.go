package service_test

import (
	"context"
	"testing"
	"time"

	"smart-global-hub/internal/dto"
	"smart-global-hub/internal/ledger"
	"smart-global-hub/internal/models"
	"smart-global-hub/internal/repository"
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

type transactionFixture struct {
	txStore   *mock_service.MockTransactionStore
	agents    *mock_service.MockCounterpartyStore
	suppliers *mock_service.MockCounterpartyStore
	rates     *mock_service.MockRateStore
	svc       *service.TransactionService
}

func newTransactionFixture(t *testing.T) *transactionFixture {
	ctrl := gomock.NewController(t)
	logger := zap.NewNop()
	c := cache.NewMemory()

	f := &transactionFixture{
		txStore:   mock_service.NewMockTransactionStore(ctrl),
		agents:    mock_service.NewMockCounterpartyStore(ctrl),
		suppliers: mock_service.NewMockCounterpartyStore(ctrl),
		rates:     mock_service.NewMockRateStore(ctrl),
	}
	f.svc = service.NewTransactionService(
		f.txStore,
		service.NewCounterpartyService(models.PartyAgent, f.agents, c, logger),
		service.NewCounterpartyService(models.PartySupplier, f.suppliers, c, logger),
		service.NewRateService(f.rates, c, time.Minute, nil, logger),
		c,
		nil,
		logger,
	)
	return f
}

func (f *transactionFixture) expectCounterparties(tenantID, agentID, supplierID uuid.UUID) {
	f.agents.EXPECT().GetByID(gomock.Any(), tenantID, agentID).Return(&models.Counterparty{ID: agentID}, nil)
	f.suppliers.EXPECT().GetByID(gomock.Any(), tenantID, supplierID).Return(&models.Counterparty{ID: supplierID}, nil)
}

func TestTransactionService_Quote(t *testing.T) {
	svc := newTransactionFixture(t).svc

	got, err := svc.Quote(&dto.QuoteRequest{
		BaseAmount:     decimal.RequireFromString("10000"),
		BuyRate:        decimal.RequireFromString("0.1449"),
		SellRate:       decimal.RequireFromString("0.1451"),
		CommissionRate: decimal.RequireFromString("0.5"),
	})
	require.NoError(t, err)

	assert.Equal(t, "1449", got.QuoteAmountBuy.String())
	assert.Equal(t, "1451", got.QuoteAmountSell.String())
	assert.Equal(t, "7.255", got.Commission.String())
	assert.Equal(t, "2", got.Profit.String())
	assert.Equal(t, "9.255", got.TotalEarnings.String())
	assert.Equal(t, "1458.255", got.AgentDue.String())
	assert.Equal(t, "1449", got.SupplierDue.String())

	_, err = svc.Quote(&dto.QuoteRequest{BaseAmount: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestTransactionService_Create_ResolvesLatestRates(t *testing.T) {
	f := newTransactionFixture(t)
	tenantID, userID, agentID, supplierID := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	f.expectCounterparties(tenantID, agentID, supplierID)
	f.rates.EXPECT().LatestExchangeRate(gomock.Any(), tenantID, "CNY", "USD").Return(&models.ExchangeRate{
		ID:            uuid.New(),
		TenantID:      tenantID,
		BaseCurrency:  "CNY",
		QuoteCurrency: "USD",
		BuyRate:       decimal.RequireFromString("0.1449"),
		SellRate:      decimal.RequireFromString("0.1451"),
	}, nil)
	f.rates.EXPECT().LatestCommissionRate(gomock.Any(), tenantID).Return(&models.CommissionRate{
		ID:   uuid.New(),
		Rate: decimal.RequireFromString("0.5"),
	}, nil)

	var stored *models.Transaction
	f.txStore.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tx *models.Transaction) error {
		stored = tx
		return nil
	})

	got, err := f.svc.Create(context.Background(), tenantID, userID, &dto.TransactionRequest{
		AgentID:       agentID.String(),
		SupplierID:    supplierID.String(),
		BaseCurrency:  "cny",
		QuoteCurrency: "usd",
		BaseAmount:    decimal.RequireFromString("10000"),
	})
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Equal(t, "CNY", stored.BaseCurrency)
	assert.Equal(t, "USD", stored.QuoteCurrency)
	assert.Equal(t, userID, stored.CreatedBy)
	assert.Equal(t, "9.255", got.TotalEarnings.String())
	assert.Equal(t, "1458.255", got.AgentDue.String())
	assert.Equal(t, "1449", got.SupplierDue.String())
	assert.Equal(t, string(ledger.StatusUnpaid), got.AgentStatus)
	assert.Equal(t, string(ledger.StatusUnpaid), got.SupplierStatus)
}

func TestTransactionService_Create_DefaultsCommissionToZero(t *testing.T) {
	f := newTransactionFixture(t)
	tenantID, agentID, supplierID := uuid.New(), uuid.New(), uuid.New()

	f.expectCounterparties(tenantID, agentID, supplierID)
	f.rates.EXPECT().LatestCommissionRate(gomock.Any(), tenantID).Return(nil, repository.ErrNotFound)
	f.txStore.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	buy, sell := decimal.RequireFromString("7.1"), decimal.RequireFromString("7.2")
	got, err := f.svc.Create(context.Background(), tenantID, uuid.New(), &dto.TransactionRequest{
		AgentID:       agentID.String(),
		SupplierID:    supplierID.String(),
		BaseCurrency:  "USD",
		QuoteCurrency: "CNY",
		BaseAmount:    decimal.NewFromInt(100),
		BuyRate:       &buy,
		SellRate:      &sell,
	})
	require.NoError(t, err)

	assert.True(t, got.CommissionRate.IsZero())
	assert.True(t, got.Commission.IsZero())
	assert.Equal(t, "10", got.Profit.String())
}

func TestTransactionService_Create_Errors(t *testing.T) {
	t.Run("unknown agent", func(t *testing.T) {
		f := newTransactionFixture(t)
		tenantID, agentID := uuid.New(), uuid.New()
		f.agents.EXPECT().GetByID(gomock.Any(), tenantID, agentID).Return(nil, repository.ErrNotFound)

		_, err := f.svc.Create(context.Background(), tenantID, uuid.New(), &dto.TransactionRequest{
			AgentID:       agentID.String(),
			SupplierID:    uuid.NewString(),
			BaseCurrency:  "USD",
			QuoteCurrency: "CNY",
			BaseAmount:    decimal.NewFromInt(1),
		})
		assert.ErrorIs(t, err, service.ErrInvalidInput)
	})

	t.Run("missing exchange rate", func(t *testing.T) {
		f := newTransactionFixture(t)
		tenantID, agentID, supplierID := uuid.New(), uuid.New(), uuid.New()
		f.expectCounterparties(tenantID, agentID, supplierID)
		f.rates.EXPECT().LatestExchangeRate(gomock.Any(), tenantID, "USD", "AED").Return(nil, repository.ErrNotFound)

		_, err := f.svc.Create(context.Background(), tenantID, uuid.New(), &dto.TransactionRequest{
			AgentID:       agentID.String(),
			SupplierID:    supplierID.String(),
			BaseCurrency:  "USD",
			QuoteCurrency: "AED",
			BaseAmount:    decimal.NewFromInt(1),
		})
		assert.ErrorIs(t, err, service.ErrRateNotFound)
	})

	t.Run("value the database cannot hold", func(t *testing.T) {
		f := newTransactionFixture(t)
		tenantID, agentID, supplierID := uuid.New(), uuid.New(), uuid.New()
		f.expectCounterparties(tenantID, agentID, supplierID)
		f.txStore.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repository.ErrOutOfRange)

		rate, commission := decimal.NewFromInt(1), decimal.Zero
		_, err := f.svc.Create(context.Background(), tenantID, uuid.New(), &dto.TransactionRequest{
			AgentID:        agentID.String(),
			SupplierID:     supplierID.String(),
			BaseCurrency:   "USD",
			QuoteCurrency:  "CNY",
			BaseAmount:     decimal.NewFromInt(1),
			BuyRate:        &rate,
			SellRate:       &rate,
			CommissionRate: &commission,
		})
		assert.ErrorIs(t, err, service.ErrInvalidInput)
	})
}

func TestTransactionService_Create_KeepsFullPrecision(t *testing.T) {
	f := newTransactionFixture(t)
	tenantID, agentID, supplierID := uuid.New(), uuid.New(), uuid.New()
	f.expectCounterparties(tenantID, agentID, supplierID)

	var stored *models.Transaction
	f.txStore.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tx *models.Transaction) error {
		stored = tx
		return nil
	})

	buy := decimal.RequireFromString("0.12345678912")
	sell := decimal.RequireFromString("0.12345678934")
	commission := decimal.RequireFromString("0.1234567")
	got, err := f.svc.Create(context.Background(), tenantID, uuid.New(), &dto.TransactionRequest{
		AgentID:        agentID.String(),
		SupplierID:     supplierID.String(),
		BaseCurrency:   "CNY",
		QuoteCurrency:  "USD",
		BaseAmount:     decimal.RequireFromString("1234.5678901"),
		BuyRate:        &buy,
		SellRate:       &sell,
		CommissionRate: &commission,
	})
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Equal(t, "0.1234567", stored.CommissionRate.String())
	assert.True(t, stored.QuoteAmountSell.Equal(stored.BaseAmount.Mul(stored.SellRate)))
	assert.True(t, stored.Commission.Equal(stored.QuoteAmountSell.Mul(stored.CommissionRate).Shift(-2)))
	assert.Greater(t, -stored.Commission.Exponent(), int32(10), "commission keeps more than ten decimal places")
	assert.True(t, got.Commission.Equal(stored.Commission))
}

func TestTransactionService_LockedOncePaid(t *testing.T) {
	tenantID, id := uuid.New(), uuid.New()
	paid := &models.Transaction{
		ID:        id,
		TenantID:  tenantID,
		AgentDue:  decimal.NewFromInt(100),
		AgentPaid: decimal.NewFromInt(10),
	}

	t.Run("update", func(t *testing.T) {
		f := newTransactionFixture(t)
		f.txStore.EXPECT().GetByID(gomock.Any(), tenantID, id).Return(paid, nil)

		_, err := f.svc.Update(context.Background(), tenantID, id, &dto.TransactionRequest{})
		assert.ErrorIs(t, err, service.ErrTransactionLocked)
	})

	t.Run("delete", func(t *testing.T) {
		f := newTransactionFixture(t)
		f.txStore.EXPECT().GetByID(gomock.Any(), tenantID, id).Return(paid, nil)

		err := f.svc.Delete(context.Background(), tenantID, id)
		assert.ErrorIs(t, err, service.ErrTransactionLocked)
	})

	t.Run("payment lands between read and delete", func(t *testing.T) {
		f := newTransactionFixture(t)
		f.txStore.EXPECT().GetByID(gomock.Any(), tenantID, id).Return(&models.Transaction{ID: id, TenantID: tenantID}, nil)
		f.txStore.EXPECT().Delete(gomock.Any(), tenantID, id).Return(repository.ErrConflict)

		err := f.svc.Delete(context.Background(), tenantID, id)
		assert.ErrorIs(t, err, service.ErrTransactionLocked)
	})

	t.Run("not found", func(t *testing.T) {
		f := newTransactionFixture(t)
		f.txStore.EXPECT().GetByID(gomock.Any(), tenantID, id).Return(nil, repository.ErrNotFound)

		err := f.svc.Delete(context.Background(), tenantID, id)
		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestTransactionService_Update_Recomputes(t *testing.T) {
	f := newTransactionFixture(t)
	tenantID, id, agentID, supplierID := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	existing := &models.Transaction{ID: id, TenantID: tenantID, AgentID: agentID, SupplierID: supplierID}
	f.txStore.EXPECT().GetByID(gomock.Any(), tenantID, id).Return(existing, nil)
	f.expectCounterparties(tenantID, agentID, supplierID)
	f.txStore.EXPECT().Update(gomock.Any(), existing).Return(nil)

	buy, sell, commission := decimal.NewFromInt(2), decimal.NewFromInt(3), decimal.NewFromInt(10)
	got, err := f.svc.Update(context.Background(), tenantID, id, &dto.TransactionRequest{
		AgentID:        agentID.String(),
		SupplierID:     supplierID.String(),
		BaseCurrency:   "EUR",
		QuoteCurrency:  "USD",
		BaseAmount:     decimal.NewFromInt(10),
		BuyRate:        &buy,
		SellRate:       &sell,
		CommissionRate: &commission,
	})
	require.NoError(t, err)

	assert.Equal(t, "20", got.QuoteAmountBuy.String())
	assert.Equal(t, "30", got.QuoteAmountSell.String())
	assert.Equal(t, "3", got.Commission.String())
	assert.Equal(t, "13", got.TotalEarnings.String())
	assert.Equal(t, "33", got.AgentDue.String())
}

func TestTransactionService_List(t *testing.T) {
	f := newTransactionFixture(t)
	tenantID := uuid.New()
	filter := models.TransactionFilter{QuoteCurrency: "usd", Status: ledger.StatusPartial}
	normalized := models.TransactionFilter{QuoteCurrency: "USD", Status: ledger.StatusPartial}

	f.txStore.EXPECT().List(gomock.Any(), tenantID, normalized, uint64(2), uint64(2)).
		Return([]*models.Transaction{{ID: uuid.New()}, {ID: uuid.New()}}, int64(5), nil)
	f.txStore.EXPECT().Overview(gomock.Any(), tenantID, normalized).
		Return([]*models.TransactionOverview{{QuoteCurrency: "USD", Count: 5}}, nil)

	page, overview, err := f.svc.List(context.Background(), tenantID, filter, dto.NewPageRequest(2, 2))
	require.NoError(t, err)

	assert.Len(t, page.Data, 2)
	assert.Equal(t, &dto.Meta{TotalItems: 5, TotalPages: 3, CurrentPage: 2}, page.Meta)
	require.Len(t, overview, 1)
	assert.Equal(t, int64(5), overview[0].Count)
}

func TestParseStatus(t *testing.T) {
	got, err := service.ParseStatus("PAID")
	require.NoError(t, err)
	assert.Equal(t, ledger.StatusPaid, got)

	got, err = service.ParseStatus("")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = service.ParseStatus("overdue")
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}
