package service_test

import (
	"context"
	"testing"
	"time"

	"smart-global-hub/internal/dto"
	"smart-global-hub/internal/models"
	"smart-global-hub/internal/repository"
	"smart-global-hub/internal/service"
	mock_service "smart-global-hub/internal/service/mocks"
	"smart-global-hub/pkg/cache"
	"smart-global-hub/pkg/metrics"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRateService_LatestExchangeRate_Cached(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock_service.NewMockRateStore(ctrl)
	svc := service.NewRateService(store, cache.NewMemory(), time.Minute, metrics.NewMetrics("test"), zap.NewNop())
	tenantID := uuid.New()

	store.EXPECT().LatestExchangeRate(gomock.Any(), tenantID, "CNY", "USD").Return(&models.ExchangeRate{
		ID:            uuid.New(),
		BaseCurrency:  "CNY",
		QuoteCurrency: "USD",
		BuyRate:       decimal.RequireFromString("0.1449"),
		SellRate:      decimal.RequireFromString("0.1451"),
	}, nil).Times(1)

	first, err := svc.LatestExchangeRate(context.Background(), tenantID, "cny", "usd")
	require.NoError(t, err)
	second, err := svc.LatestExchangeRate(context.Background(), tenantID, "CNY", "USD")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.SellRate.Equal(decimal.RequireFromString("0.1451")))
}

func TestRateService_CreateInvalidatesLatest(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock_service.NewMockRateStore(ctrl)
	svc := service.NewRateService(store, cache.NewMemory(), time.Minute, nil, zap.NewNop())
	tenantID := uuid.New()

	gomock.InOrder(
		store.EXPECT().LatestCommissionRate(gomock.Any(), tenantID).Return(&models.CommissionRate{Rate: decimal.NewFromInt(1)}, nil),
		store.EXPECT().CreateCommissionRate(gomock.Any(), gomock.Any()).Return(nil),
		store.EXPECT().LatestCommissionRate(gomock.Any(), tenantID).Return(&models.CommissionRate{Rate: decimal.NewFromInt(2)}, nil),
	)

	before, err := svc.LatestCommissionRate(context.Background(), tenantID)
	require.NoError(t, err)
	assert.Equal(t, "1", before.Rate.String())

	_, err = svc.CreateCommissionRate(context.Background(), tenantID, uuid.New(), &dto.CommissionRateRequest{Rate: decimal.NewFromInt(2)})
	require.NoError(t, err)

	after, err := svc.LatestCommissionRate(context.Background(), tenantID)
	require.NoError(t, err)
	assert.Equal(t, "2", after.Rate.String())
}

func TestRateService_LatestMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock_service.NewMockRateStore(ctrl)
	svc := service.NewRateService(store, cache.NewMemory(), time.Minute, nil, zap.NewNop())

	store.EXPECT().LatestExchangeRate(gomock.Any(), gomock.Any(), "USD", "EUR").Return(nil, repository.ErrNotFound)

	_, err := svc.LatestExchangeRate(context.Background(), uuid.New(), "USD", "EUR")
	assert.ErrorIs(t, err, service.ErrRateNotFound)
}
