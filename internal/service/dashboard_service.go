package service

import (
	"context"
	"fmt"
	"time"

	"smart-global-hub/internal/dto"
	"smart-global-hub/internal/models"
	"smart-global-hub/pkg/cache"
	"smart-global-hub/pkg/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultEarningsDays = 30
	MaxEarningsDays     = 365
)

type DashboardService struct {
	txRepo   TransactionStore
	repo     DashboardStore
	cache    cache.Cache
	cacheTTL time.Duration
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

func NewDashboardService(txRepo TransactionStore, repo DashboardStore, c cache.Cache, cacheTTL time.Duration, m *metrics.Metrics, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		txRepo:   txRepo,
		repo:     repo,
		cache:    c,
		cacheTTL: cacheTTL,
		metrics:  m,
		logger:   logger,
	}
}

func dashboardCachePrefix(tenantID uuid.UUID) string {
	return "dashboard:" + tenantID.String() + ":"
}

// invalidateDashboard drops every cached aggregate of the tenant. Failures
// are logged only; entries expire on their own.
func invalidateDashboard(ctx context.Context, c cache.Cache, tenantID uuid.UUID, logger *zap.Logger) {
	if err := c.DeletePrefix(ctx, dashboardCachePrefix(tenantID)); err != nil {
		logger.Warn("Dashboard cache invalidation failed", zap.String("tenant_id", tenantID.String()), zap.Error(err))
	}
}

func (s *DashboardService) TransactionStatistics(ctx context.Context, tenantID uuid.UUID, from, to *time.Time) ([]dto.TransactionOverview, error) {
	key := dashboardCachePrefix(tenantID) + "transactions:" + timeKey(from) + ":" + timeKey(to)

	var cached []dto.TransactionOverview
	if s.lookup(ctx, key, &cached) {
		return cached, nil
	}

	rows, err := s.txRepo.Overview(ctx, tenantID, models.TransactionFilter{From: from, To: to})
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate transactions: %w", err)
	}

	out := make([]dto.TransactionOverview, 0, len(rows))
	for _, o := range rows {
		out = append(out, toOverviewResponse(o))
	}
	s.store(ctx, key, out)
	return out, nil
}

// CounterpartyStatistics aggregates dues, payments and credit per
// counterparty and currency.
func (s *DashboardService) CounterpartyStatistics(ctx context.Context, tenantID uuid.UUID, party models.Party) ([]dto.CounterpartyStatisticResponse, error) {
	if !party.Valid() {
		return nil, fmt.Errorf("%w: party %q", ErrInvalidInput, party)
	}
	key := dashboardCachePrefix(tenantID) + string(party)

	var cached []dto.CounterpartyStatisticResponse
	if s.lookup(ctx, key, &cached) {
		return cached, nil
	}

	rows, err := s.repo.CounterpartyStatistics(ctx, tenantID, party)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate %s statistics: %w", party, err)
	}

	out := make([]dto.CounterpartyStatisticResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.CounterpartyStatisticResponse{
			CounterpartyID:   r.CounterpartyID.String(),
			CounterpartyName: r.CounterpartyName,
			Currency:         r.Currency,
			Transactions:     r.Transactions,
			Due:              r.Due,
			Paid:             r.Paid,
			Outstanding:      r.Outstanding,
			Credit:           r.Credit,
		})
	}
	s.store(ctx, key, out)
	return out, nil
}

// EarningsStatistics returns daily earnings for the last days days. Out of
// range values fall back to the default or the maximum.
func (s *DashboardService) EarningsStatistics(ctx context.Context, tenantID uuid.UUID, days int) ([]dto.DailyEarningsResponse, error) {
	if days < 1 {
		days = DefaultEarningsDays
	}
	if days > MaxEarningsDays {
		days = MaxEarningsDays
	}
	key := fmt.Sprintf("%searnings:%d", dashboardCachePrefix(tenantID), days)

	var cached []dto.DailyEarningsResponse
	if s.lookup(ctx, key, &cached) {
		return cached, nil
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	since := today.AddDate(0, 0, -(days - 1))

	rows, err := s.repo.DailyEarnings(ctx, tenantID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate earnings: %w", err)
	}

	out := make([]dto.DailyEarningsResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.DailyEarningsResponse{
			Day:           r.Day.UTC().Format("2006-01-02"),
			QuoteCurrency: r.QuoteCurrency,
			Transactions:  r.Transactions,
			Profit:        r.Profit,
			Commission:    r.Commission,
			TotalEarnings: r.TotalEarnings,
		})
	}
	s.store(ctx, key, out)
	return out, nil
}

func timeKey(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.UTC().Format(time.RFC3339)
}

func (s *DashboardService) lookup(ctx context.Context, key string, dest interface{}) bool {
	found, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		s.logger.Warn("Dashboard cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	s.metrics.CacheHit("dashboard", found)
	return found
}

func (s *DashboardService) store(ctx context.Context, key string, value interface{}) {
	if err := s.cache.Set(ctx, key, value, s.cacheTTL); err != nil {
		s.logger.Warn("Dashboard cache write failed", zap.String("key", key), zap.Error(err))
	}
}
