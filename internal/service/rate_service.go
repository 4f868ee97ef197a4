package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"smart-global-hub/internal/dto"
	"smart-global-hub/internal/models"
	"smart-global-hub/internal/repository"
	"smart-global-hub/pkg/cache"
	"smart-global-hub/pkg/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RateService struct {
	repo     RateStore
	cache    cache.Cache
	cacheTTL time.Duration
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

func NewRateService(repo RateStore, c cache.Cache, cacheTTL time.Duration, m *metrics.Metrics, logger *zap.Logger) *RateService {
	return &RateService{
		repo:     repo,
		cache:    c,
		cacheTTL: cacheTTL,
		metrics:  m,
		logger:   logger,
	}
}

func ratesCachePrefix(tenantID uuid.UUID) string {
	return "rates:" + tenantID.String() + ":"
}

func (s *RateService) CreateExchangeRate(ctx context.Context, tenantID, userID uuid.UUID, req *dto.ExchangeRateRequest) (*dto.ExchangeRateResponse, error) {
	er := &models.ExchangeRate{
		ID:            uuid.New(),
		TenantID:      tenantID,
		BaseCurrency:  strings.ToUpper(req.BaseCurrency),
		QuoteCurrency: strings.ToUpper(req.QuoteCurrency),
		BuyRate:       req.BuyRate,
		SellRate:      req.SellRate,
		CreatedBy:     userID,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.CreateExchangeRate(ctx, er); err != nil {
		return nil, writeError(err, "create exchange rate")
	}
	s.invalidate(ctx, tenantID)

	s.logger.Info("Exchange rate recorded",
		zap.String("tenant_id", tenantID.String()),
		zap.String("pair", er.BaseCurrency+"/"+er.QuoteCurrency),
		zap.String("buy", er.BuyRate.String()),
		zap.String("sell", er.SellRate.String()),
	)

	resp := toExchangeRateResponse(er)
	return &resp, nil
}

func (s *RateService) ListExchangeRates(ctx context.Context, tenantID uuid.UUID, base, quote string, page dto.PageRequest) (*dto.Page[dto.ExchangeRateResponse], error) {
	items, total, err := s.repo.ListExchangeRates(ctx, tenantID, strings.ToUpper(base), strings.ToUpper(quote), uint64(page.Limit), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}

	out := &dto.Page[dto.ExchangeRateResponse]{Data: make([]dto.ExchangeRateResponse, 0, len(items)), Meta: page.Meta(total)}
	for _, er := range items {
		out.Data = append(out.Data, toExchangeRateResponse(er))
	}
	return out, nil
}

// LatestExchangeRate returns ErrRateNotFound when the pair has no rate yet.
func (s *RateService) LatestExchangeRate(ctx context.Context, tenantID uuid.UUID, base, quote string) (*dto.ExchangeRateResponse, error) {
	base, quote = strings.ToUpper(base), strings.ToUpper(quote)
	key := ratesCachePrefix(tenantID) + "fx:" + base + ":" + quote

	var cached dto.ExchangeRateResponse
	if s.lookup(ctx, key, &cached) {
		return &cached, nil
	}

	er, err := s.repo.LatestExchangeRate(ctx, tenantID, base, quote)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRateNotFound
		}
		return nil, fmt.Errorf("failed to load exchange rate: %w", err)
	}

	resp := toExchangeRateResponse(er)
	s.store(ctx, key, resp)
	return &resp, nil
}

func (s *RateService) CreateCommissionRate(ctx context.Context, tenantID, userID uuid.UUID, req *dto.CommissionRateRequest) (*dto.CommissionRateResponse, error) {
	cr := &models.CommissionRate{
		ID:        uuid.New(),
		TenantID:  tenantID,
		Rate:      req.Rate,
		CreatedBy: userID,
		CreatedAt: time.Now(),
	}

	if err := s.repo.CreateCommissionRate(ctx, cr); err != nil {
		return nil, writeError(err, "create commission rate")
	}
	s.invalidate(ctx, tenantID)

	resp := toCommissionRateResponse(cr)
	return &resp, nil
}

func (s *RateService) ListCommissionRates(ctx context.Context, tenantID uuid.UUID, page dto.PageRequest) (*dto.Page[dto.CommissionRateResponse], error) {
	items, total, err := s.repo.ListCommissionRates(ctx, tenantID, uint64(page.Limit), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list commission rates: %w", err)
	}

	out := &dto.Page[dto.CommissionRateResponse]{Data: make([]dto.CommissionRateResponse, 0, len(items)), Meta: page.Meta(total)}
	for _, cr := range items {
		out.Data = append(out.Data, toCommissionRateResponse(cr))
	}
	return out, nil
}

// LatestCommissionRate returns ErrRateNotFound when no commission rate exists.
func (s *RateService) LatestCommissionRate(ctx context.Context, tenantID uuid.UUID) (*dto.CommissionRateResponse, error) {
	key := ratesCachePrefix(tenantID) + "commission"

	var cached dto.CommissionRateResponse
	if s.lookup(ctx, key, &cached) {
		return &cached, nil
	}

	cr, err := s.repo.LatestCommissionRate(ctx, tenantID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRateNotFound
		}
		return nil, fmt.Errorf("failed to load commission rate: %w", err)
	}

	resp := toCommissionRateResponse(cr)
	s.store(ctx, key, resp)
	return &resp, nil
}

func (s *RateService) lookup(ctx context.Context, key string, dest interface{}) bool {
	found, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		s.logger.Warn("Rate cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	s.metrics.CacheHit("rates", found)
	return found
}

func (s *RateService) store(ctx context.Context, key string, value interface{}) {
	if err := s.cache.Set(ctx, key, value, s.cacheTTL); err != nil {
		s.logger.Warn("Rate cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *RateService) invalidate(ctx context.Context, tenantID uuid.UUID) {
	if err := s.cache.DeletePrefix(ctx, ratesCachePrefix(tenantID)); err != nil {
		s.logger.Warn("Rate cache invalidation failed", zap.String("tenant_id", tenantID.String()), zap.Error(err))
	}
}
