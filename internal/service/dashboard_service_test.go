package service_test

import (
	"context"
	"testing"
	"time"

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

func TestDashboardService_EarningsStatistics(t *testing.T) {
	tests := []struct {
		name     string
		days     int
		wantDays int
	}{
		{name: "default", days: 0, wantDays: service.DefaultEarningsDays},
		{name: "week", days: 7, wantDays: 7},
		{name: "clamped", days: 1000, wantDays: service.MaxEarningsDays},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mock_service.NewMockDashboardStore(ctrl)
			svc := service.NewDashboardService(mock_service.NewMockTransactionStore(ctrl), store, cache.NewMemory(), time.Minute, nil, zap.NewNop())
			tenantID := uuid.New()

			today := time.Now().UTC().Truncate(24 * time.Hour)
			store.EXPECT().DailyEarnings(gomock.Any(), tenantID, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ uuid.UUID, since time.Time) ([]*models.DailyEarnings, error) {
					assert.Equal(t, today.AddDate(0, 0, -(tt.wantDays-1)), since)
					return []*models.DailyEarnings{{
						Day:           today,
						QuoteCurrency: "USD",
						Transactions:  3,
						Profit:        decimal.NewFromInt(6),
						Commission:    decimal.NewFromInt(4),
						TotalEarnings: decimal.NewFromInt(10),
					}}, nil
				}).Times(1)

			got, err := svc.EarningsStatistics(context.Background(), tenantID, tt.days)
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, today.Format("2006-01-02"), got[0].Day)

			// served from cache
			again, err := svc.EarningsStatistics(context.Background(), tenantID, tt.days)
			require.NoError(t, err)
			assert.Equal(t, "10", again[0].TotalEarnings.String())
		})
	}
}

func TestDashboardService_CounterpartyStatistics(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock_service.NewMockDashboardStore(ctrl)
	svc := service.NewDashboardService(mock_service.NewMockTransactionStore(ctrl), store, cache.NewMemory(), time.Minute, nil, zap.NewNop())
	tenantID, agentID := uuid.New(), uuid.New()

	store.EXPECT().CounterpartyStatistics(gomock.Any(), tenantID, models.PartyAgent).Return([]*models.CounterpartyStatistic{{
		CounterpartyID:   agentID,
		CounterpartyName: "Golden Gate",
		Currency:         "USD",
		Transactions:     2,
		Due:              decimal.NewFromInt(300),
		Paid:             decimal.NewFromInt(100),
		Outstanding:      decimal.NewFromInt(200),
		Credit:           decimal.Zero,
	}}, nil)

	got, err := svc.CounterpartyStatistics(context.Background(), tenantID, models.PartyAgent)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, agentID.String(), got[0].CounterpartyID)
	assert.Equal(t, "200", got[0].Outstanding.String())

	_, err = svc.CounterpartyStatistics(context.Background(), tenantID, models.Party("broker"))
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestDashboardService_TransactionStatistics(t *testing.T) {
	ctrl := gomock.NewController(t)
	txStore := mock_service.NewMockTransactionStore(ctrl)
	svc := service.NewDashboardService(txStore, mock_service.NewMockDashboardStore(ctrl), cache.NewMemory(), time.Minute, nil, zap.NewNop())
	tenantID := uuid.New()
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	txStore.EXPECT().Overview(gomock.Any(), tenantID, models.TransactionFilter{From: &from}).
		Return([]*models.TransactionOverview{{QuoteCurrency: "USD", Count: 4}}, nil)

	got, err := svc.TransactionStatistics(context.Background(), tenantID, &from, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(4), got[0].Count)
}
