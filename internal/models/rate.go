package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ExchangeRate struct {
	ID            uuid.UUID       `db:"id"`
	TenantID      uuid.UUID       `db:"tenant_id"`
	BaseCurrency  string          `db:"base_currency"`
	QuoteCurrency string          `db:"quote_currency"`
	BuyRate       decimal.Decimal `db:"buy_rate"`
	SellRate      decimal.Decimal `db:"sell_rate"`
	CreatedBy     uuid.UUID       `db:"created_by"`
	CreatedAt     time.Time       `db:"created_at"`
}

type CommissionRate struct {
	ID        uuid.UUID       `db:"id"`
	TenantID  uuid.UUID       `db:"tenant_id"`
	Rate      decimal.Decimal `db:"rate"`
	CreatedBy uuid.UUID       `db:"created_by"`
	CreatedAt time.Time       `db:"created_at"`
}
