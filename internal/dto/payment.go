package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentRequest struct {
	CounterpartyID string          `json:"counterpartyId" validate:"required,uuid"`
	Currency       string          `json:"currency" validate:"required,currency"`
	Amount         decimal.Decimal `json:"amount" validate:"gt=0"`
	TransactionIDs []string        `json:"transactionIds" validate:"omitempty,dive,uuid"`
	Reference      string          `json:"reference" validate:"max=120"`
	Note           string          `json:"note" validate:"max=1000"`
	PaidAt         *time.Time      `json:"paidAt,omitempty"`
}

type PaymentAllocationResponse struct {
	TransactionID string          `json:"transactionId"`
	Amount        decimal.Decimal `json:"amount"`
}

type PaymentResponse struct {
	ID             string                      `json:"id"`
	TenantID       string                      `json:"tenantId"`
	Party          string                      `json:"party"`
	CounterpartyID string                      `json:"counterpartyId"`
	Currency       string                      `json:"currency"`
	Amount         decimal.Decimal             `json:"amount"`
	AppliedAmount  decimal.Decimal             `json:"appliedAmount"`
	CreditedAmount decimal.Decimal             `json:"creditedAmount"`
	Direct         bool                        `json:"direct"`
	Reference      string                      `json:"reference"`
	Note           string                      `json:"note"`
	PaidAt         string                      `json:"paidAt"`
	CreatedAt      string                      `json:"createdAt"`
	Allocations    []PaymentAllocationResponse `json:"allocations,omitempty"`
}

type BalanceResponse struct {
	Party            string          `json:"party"`
	CounterpartyID   string          `json:"counterpartyId"`
	CounterpartyName string          `json:"counterpartyName,omitempty"`
	Currency         string          `json:"currency"`
	Amount           decimal.Decimal `json:"amount"`
	UpdatedAt        string          `json:"updatedAt"`
}
