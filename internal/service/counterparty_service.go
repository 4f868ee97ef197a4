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

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CounterpartyService manages either agents or suppliers.
type CounterpartyService struct {
	party  models.Party
	repo   CounterpartyStore
	cache  cache.Cache
	logger *zap.Logger
}

// NewCounterpartyService takes the dashboard cache because per-counterparty
// statistics carry the counterparty name.
func NewCounterpartyService(party models.Party, repo CounterpartyStore, c cache.Cache, logger *zap.Logger) *CounterpartyService {
	return &CounterpartyService{
		party:  party,
		repo:   repo,
		cache:  c,
		logger: logger.With(zap.String("party", string(party))),
	}
}

func (s *CounterpartyService) Party() models.Party {
	return s.party
}

func (s *CounterpartyService) Create(ctx context.Context, tenantID uuid.UUID, req *dto.CounterpartyRequest) (*dto.CounterpartyResponse, error) {
	now := time.Now()
	cp := &models.Counterparty{
		ID:        uuid.New(),
		TenantID:  tenantID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyCounterpartyRequest(cp, req)

	if err := s.repo.Create(ctx, cp); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create %s: %w", s.party, err)
	}

	invalidateDashboard(ctx, s.cache, tenantID, s.logger)
	s.logger.Info("Counterparty created", zap.String("id", cp.ID.String()), zap.String("tenant_id", tenantID.String()))
	resp := toCounterpartyResponse(cp)
	return &resp, nil
}

func (s *CounterpartyService) Get(ctx context.Context, tenantID, id uuid.UUID) (*dto.CounterpartyResponse, error) {
	cp, err := s.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, notFound(err)
	}
	resp := toCounterpartyResponse(cp)
	return &resp, nil
}

// Exists reports whether id names a counterparty of this tenant.
func (s *CounterpartyService) Exists(ctx context.Context, tenantID, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, tenantID, id); err != nil {
		return notFound(err)
	}
	return nil
}

func (s *CounterpartyService) List(ctx context.Context, tenantID uuid.UUID, search string, page dto.PageRequest) (*dto.Page[dto.CounterpartyResponse], error) {
	items, total, err := s.repo.List(ctx, tenantID, strings.TrimSpace(search), uint64(page.Limit), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.party.Table(), err)
	}

	out := &dto.Page[dto.CounterpartyResponse]{Data: make([]dto.CounterpartyResponse, 0, len(items)), Meta: page.Meta(total)}
	for _, cp := range items {
		out.Data = append(out.Data, toCounterpartyResponse(cp))
	}
	return out, nil
}

func (s *CounterpartyService) Update(ctx context.Context, tenantID, id uuid.UUID, req *dto.CounterpartyRequest) (*dto.CounterpartyResponse, error) {
	cp, err := s.repo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, notFound(err)
	}

	applyCounterpartyRequest(cp, req)
	cp.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, cp); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyExists
		}
		return nil, notFound(err)
	}

	invalidateDashboard(ctx, s.cache, tenantID, s.logger)
	resp := toCounterpartyResponse(cp)
	return &resp, nil
}

// Delete refuses counterparties that still have transactions, payments or
// a balance.
func (s *CounterpartyService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	inUse, err := s.repo.InUse(ctx, tenantID, id)
	if err != nil {
		return fmt.Errorf("failed to check %s usage: %w", s.party, err)
	}
	if inUse {
		return ErrInUse
	}

	if err := s.repo.Delete(ctx, tenantID, id); err != nil {
		return notFound(err)
	}

	invalidateDashboard(ctx, s.cache, tenantID, s.logger)
	s.logger.Info("Counterparty deleted", zap.String("id", id.String()), zap.String("tenant_id", tenantID.String()))
	return nil
}

func applyCounterpartyRequest(cp *models.Counterparty, req *dto.CounterpartyRequest) {
	cp.Name = strings.TrimSpace(req.Name)
	cp.Phone = strings.TrimSpace(req.Phone)
	cp.Email = strings.TrimSpace(req.Email)
	cp.Address = strings.TrimSpace(req.Address)
	cp.Note = req.Note
}

// notFound maps repository.ErrNotFound to ErrNotFound and passes other errors through.
func notFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
