package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Payment struct {
	ID             uuid.UUID       `db:"id"`
	TenantID       uuid.UUID       `db:"tenant_id"`
	Party          Party           `db:"party"`
	CounterpartyID uuid.UUID       `db:"counterparty_id"`
	Currency       string          `db:"currency"`
	Amount         decimal.Decimal `db:"amount"`
	AppliedAmount  decimal.Decimal `db:"applied_amount"`
	CreditedAmount decimal.Decimal `db:"credited_amount"`
	Direct         bool            `db:"direct"`
	Reference      string          `db:"reference"`
	Note           string          `db:"note"`
	PaidAt         time.Time       `db:"paid_at"`
	CreatedBy      uuid.UUID       `db:"created_by"`
	CreatedAt      time.Time       `db:"created_at"`

	Allocations []PaymentAllocation `db:"-"`
}

type PaymentAllocation struct {
	PaymentID     uuid.UUID       `db:"payment_id"`
	TransactionID uuid.UUID       `db:"transaction_id"`
	Amount        decimal.Decimal `db:"amount"`
}

type PaymentFilter struct {
	CounterpartyID uuid.UUID
	Currency       string
}

// Balance is the running credit a counterparty holds in one currency.
type Balance struct {
	TenantID         uuid.UUID       `db:"tenant_id"`
	Party            Party           `db:"party"`
	CounterpartyID   uuid.UUID       `db:"counterparty_id"`
	CounterpartyName string          `db:"counterparty_name"`
	Currency         string          `db:"currency"`
	Amount           decimal.Decimal `db:"amount"`
	UpdatedAt        time.Time       `db:"updated_at"`
}
