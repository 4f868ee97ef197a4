package service

import (
	"context"
	"time"

	"smart-global-hub/internal/ledger"
	"smart-global-hub/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// The service layer depends on these interfaces, not on the pgx repositories.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go

type UserStore interface {
	CreateTenant(ctx context.Context, tenant *models.Tenant) error
	GetTenantByName(ctx context.Context, name string) (*models.Tenant, error)
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type CounterpartyStore interface {
	Create(ctx context.Context, cp *models.Counterparty) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Counterparty, error)
	List(ctx context.Context, tenantID uuid.UUID, search string, limit, offset uint64) ([]*models.Counterparty, int64, error)
	Update(ctx context.Context, cp *models.Counterparty) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	InUse(ctx context.Context, tenantID, id uuid.UUID) (bool, error)
}

type TransactionStore interface {
	Create(ctx context.Context, tx *models.Transaction) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Transaction, error)
	Update(ctx context.Context, tx *models.Transaction) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, f models.TransactionFilter, limit, offset uint64) ([]*models.Transaction, int64, error)
	Overview(ctx context.Context, tenantID uuid.UUID, f models.TransactionFilter) ([]*models.TransactionOverview, error)
	LockOpen(ctx context.Context, tenantID uuid.UUID, party models.Party, counterpartyID uuid.UUID, currency string, ids []uuid.UUID) ([]*models.Transaction, error)
	SetPaid(ctx context.Context, tenantID uuid.UUID, party models.Party, id uuid.UUID, paid decimal.Decimal, status ledger.Status) error
}

type PaymentStore interface {
	Create(ctx context.Context, p *models.Payment) error
	GetByID(ctx context.Context, tenantID uuid.UUID, party models.Party, id uuid.UUID) (*models.Payment, error)
	List(ctx context.Context, tenantID uuid.UUID, party models.Party, f models.PaymentFilter, limit, offset uint64) ([]*models.Payment, int64, error)
}

type BalanceStore interface {
	Credit(ctx context.Context, tenantID uuid.UUID, party models.Party, counterpartyID uuid.UUID, currency string, amount decimal.Decimal) error
	List(ctx context.Context, tenantID uuid.UUID, party models.Party, currency string, limit, offset uint64) ([]*models.Balance, int64, error)
	ListByCounterparty(ctx context.Context, tenantID uuid.UUID, party models.Party, counterpartyID uuid.UUID) ([]*models.Balance, error)
}

type RateStore interface {
	CreateExchangeRate(ctx context.Context, er *models.ExchangeRate) error
	ListExchangeRates(ctx context.Context, tenantID uuid.UUID, base, quote string, limit, offset uint64) ([]*models.ExchangeRate, int64, error)
	LatestExchangeRate(ctx context.Context, tenantID uuid.UUID, base, quote string) (*models.ExchangeRate, error)
	CreateCommissionRate(ctx context.Context, cr *models.CommissionRate) error
	ListCommissionRates(ctx context.Context, tenantID uuid.UUID, limit, offset uint64) ([]*models.CommissionRate, int64, error)
	LatestCommissionRate(ctx context.Context, tenantID uuid.UUID) (*models.CommissionRate, error)
}

type DashboardStore interface {
	CounterpartyStatistics(ctx context.Context, tenantID uuid.UUID, party models.Party) ([]*models.CounterpartyStatistic, error)
	DailyEarnings(ctx context.Context, tenantID uuid.UUID, since time.Time) ([]*models.DailyEarnings, error)
}

// Transactor runs fn in one database transaction.
type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}
